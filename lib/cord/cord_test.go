// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import (
	"bytes"
	"testing"
)

func TestEncode_RoundTripEveryKind(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		value  Value
	}{
		{"unit", Unit(), NewUnit()},
		{"bool_false", Bool(), NewBool(false)},
		{"bool_true", Bool(), NewBool(true)},
		{"uint8", Uint(8), NewUint(255)},
		{"int8_negative", Int(8), NewInt(-128)},
		{"bytes", Bytes(), NewBytes([]byte{0x01, 0x02, 0x03})},
		{"bytes_empty", Bytes(), NewBytes(nil)},
		{"string", String(), NewString("hello, cord")},
		{"string_empty", String(), NewString("")},
		{"timestamp", Timestamp(), NewTimestampValue(Timestamp{Seconds: -3600, Nanos: 500})},
		{"optional_none", Optional(Uint(16)), NewNone()},
		{"optional_some", Optional(Uint(16)), NewSome(NewUint(12345))},
		{"tuple", Tuple(Uint(8), Bool()), NewTuple(NewUint(9), NewBool(true))},
		{"seq_empty", Seq(String()), NewSeq()},
		{"seq", Seq(Uint(8)), NewSeq(NewUint(1), NewUint(2), NewUint(3))},
		{"set_empty", SetOf(String()), NewSet()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded, err := Encode(test.schema, test.value)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(test.schema, encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			reencoded, err := Encode(test.schema, decoded)
			if err != nil {
				t.Fatalf("re-Encode: %v", err)
			}
			if !bytes.Equal(encoded, reencoded) {
				t.Fatalf("round-trip bytes differ: % X vs % X", encoded, reencoded)
			}
		})
	}
}

func TestEncode_SetDeduplicatesSilently(t *testing.T) {
	schema := SetOf(Uint(8))
	value := NewSet(NewUint(5), NewUint(5), NewUint(1))

	encoded, err := Encode(schema, value)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x02, 0x01, 0x05}
	if !bytes.Equal(encoded, want) {
		t.Fatalf("Encode = % X, want % X", encoded, want)
	}
}

func TestDecode_TrailingBytesRejected(t *testing.T) {
	schema := Uint(8)
	encoded, err := Encode(schema, NewUint(1))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err = Decode(schema, append(encoded, 0xFF))
	requireDecodeErrorKind(t, err, TrailingBytes)
}

func TestDecode_TruncatedRejected(t *testing.T) {
	schema := Struct(Field{Name: "a", Schema: Uint(8)}, Field{Name: "b", Schema: String()})
	_, err := Decode(schema, []byte{0x01})
	requireDecodeErrorKind(t, err, Truncated)
}

func TestDecode_InvalidUtf8Rejected(t *testing.T) {
	schema := String()
	_, err := Decode(schema, []byte{0x02, 0xFF, 0xFE})
	requireDecodeErrorKind(t, err, InvalidUtf8)
}

func TestDecode_EnumTagOutOfRange(t *testing.T) {
	schema := Enum(Variant{Name: "A"}, Variant{Name: "B"})
	_, err := Decode(schema, []byte{0x05})
	requireDecodeErrorKind(t, err, OutOfRange)
}

func TestEncode_StructFieldCountMismatch(t *testing.T) {
	schema := Struct(Field{Name: "a", Schema: Uint(8)}, Field{Name: "b", Schema: Uint(8)})
	value := NewStruct(NamedField("a", NewUint(1)))

	_, err := Encode(schema, value)
	if err == nil {
		t.Fatal("Encode with missing field = nil error, want SchemaMisuse")
	}
	encodeErr, ok := err.(*EncodeError)
	if !ok || encodeErr.Kind != SchemaMisuse {
		t.Fatalf("error = %v, want SchemaMisuse", err)
	}
}

func TestEncode_SchemaKindMismatch(t *testing.T) {
	_, err := Encode(Uint(32), NewString("wrong kind"))
	if err == nil {
		t.Fatal("Encode with mismatched kind = nil error, want SchemaMisuse")
	}
	encodeErr, ok := err.(*EncodeError)
	if !ok || encodeErr.Kind != SchemaMisuse {
		t.Fatalf("error = %v, want SchemaMisuse", err)
	}
}

func TestEncode_UintExceedingWidthRejected(t *testing.T) {
	// 300 does not fit an 8-bit unsigned width; encoding it must fail
	// rather than emit bytes no conforming decoder would accept.
	_, err := Encode(Uint(8), NewUint(300))
	if err == nil {
		t.Fatal("Encode(Uint(8), 300) = nil error, want SchemaMisuse")
	}
	encodeErr, ok := err.(*EncodeError)
	if !ok || encodeErr.Kind != SchemaMisuse {
		t.Fatalf("error = %v, want SchemaMisuse", err)
	}
}

func TestEncode_IntExceedingWidthRejected(t *testing.T) {
	// 200 does not fit a signed 8-bit range [-128, 127].
	_, err := Encode(Int(8), NewInt(200))
	if err == nil {
		t.Fatal("Encode(Int(8), 200) = nil error, want SchemaMisuse")
	}
	encodeErr, ok := err.(*EncodeError)
	if !ok || encodeErr.Kind != SchemaMisuse {
		t.Fatalf("error = %v, want SchemaMisuse", err)
	}
}

func TestEncoder_UnbalancedEndCallIsSchemaMisuse(t *testing.T) {
	enc := NewEncoder()
	if err := enc.EndStruct(); err == nil {
		t.Fatal("EndStruct with nothing open = nil error, want SchemaMisuse")
	}
}

func TestEncoder_FinishWithOpenFrameFails(t *testing.T) {
	enc := NewEncoder()
	if err := enc.BeginStruct(1); err != nil {
		t.Fatalf("BeginStruct: %v", err)
	}
	if _, err := enc.Finish(); err == nil {
		t.Fatal("Finish with an open frame = nil error, want SchemaMisuse")
	}
}
