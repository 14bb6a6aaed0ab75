// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

// Encode builds the canonical Cord encoding of value under schema.
// Most callers who do not need the streaming [Encoder] directly should
// use this instead.
func Encode(schema *Schema, value Value) ([]byte, error) {
	enc := NewEncoder()
	if err := encodeValue(enc, schema, value); err != nil {
		return nil, err
	}
	return enc.Finish()
}

// Decode parses data as the canonical Cord encoding of schema. It
// returns a [DecodeError] if data is truncated, non-canonical, or
// carries trailing bytes after a complete value.
func Decode(schema *Schema, data []byte) (Value, error) {
	dec := NewDecoder(data)
	value, err := decodeValue(dec, schema)
	if err != nil {
		return Value{}, err
	}
	if err := dec.Finish(); err != nil {
		return Value{}, err
	}
	return value, nil
}

func encodeValue(enc *Encoder, schema *Schema, v Value) error {
	if schema.Kind != v.kind {
		return newEncodeError(SchemaMisuse, "schema expects %s but value is %s", schema.Kind, v.kind)
	}

	switch schema.Kind {
	case KindUnit:
		return nil
	case KindBool:
		return enc.EmitBool(v.b)
	case KindUint:
		return enc.EmitUint(v.u, schema.Width)
	case KindInt:
		return enc.EmitInt(v.i, schema.Width)
	case KindBytes:
		return enc.EmitBytes(v.bytes)
	case KindString:
		return enc.EmitString(v.str)
	case KindTimestamp:
		return enc.EmitTimestamp(v.ts)

	case KindOptional:
		if err := enc.EmitOptionPresent(v.present); err != nil {
			return err
		}
		if !v.present {
			return nil
		}
		enc.BeginOption()
		if err := encodeValue(enc, schema.Elem, *v.elem); err != nil {
			return err
		}
		return enc.EndOption()

	case KindTuple:
		if len(v.elems) != len(schema.Fields) {
			return newEncodeError(SchemaMisuse, "tuple has %d elements, schema declares %d", len(v.elems), len(schema.Fields))
		}
		if err := enc.BeginTuple(len(schema.Fields)); err != nil {
			return err
		}
		for i, field := range schema.Fields {
			if err := encodeValue(enc, field.Schema, v.elems[i]); err != nil {
				return err
			}
		}
		return enc.EndTuple()

	case KindSeq:
		if err := enc.BeginSeq(len(v.elems)); err != nil {
			return err
		}
		for _, elem := range v.elems {
			if err := encodeValue(enc, schema.Elem, elem); err != nil {
				return err
			}
		}
		return enc.EndSeq()

	case KindSet:
		if err := enc.BeginSet(); err != nil {
			return err
		}
		for _, elem := range v.elems {
			if err := enc.BeginSetElement(); err != nil {
				return err
			}
			if err := encodeValue(enc, schema.Elem, elem); err != nil {
				return err
			}
			if err := enc.EndSetElement(); err != nil {
				return err
			}
		}
		return enc.EndSet()

	case KindStruct:
		if len(v.fields) != len(schema.Fields) {
			return newEncodeError(SchemaMisuse, "struct has %d fields, schema declares %d", len(v.fields), len(schema.Fields))
		}
		if err := enc.BeginStruct(len(schema.Fields)); err != nil {
			return err
		}
		for i, field := range schema.Fields {
			if v.fields[i].Name != field.Name {
				return newEncodeError(SchemaMisuse, "field %d is %q, schema declares %q", i, v.fields[i].Name, field.Name)
			}
			if err := encodeValue(enc, field.Schema, v.fields[i].Value); err != nil {
				return err
			}
		}
		return enc.EndStruct()

	case KindEnum:
		tag, variant, ok := findVariant(schema, v.variant)
		if !ok {
			return newEncodeError(SchemaMisuse, "variant %q is not declared by the enum schema", v.variant)
		}
		if err := enc.BeginVariant(tag); err != nil {
			return err
		}
		switch {
		case variant.Payload == nil && v.elem != nil:
			return newEncodeError(SchemaMisuse, "variant %q is a unit variant but a payload was supplied", v.variant)
		case variant.Payload != nil && v.elem == nil:
			return newEncodeError(SchemaMisuse, "variant %q requires a payload", v.variant)
		case variant.Payload != nil:
			if err := encodeValue(enc, variant.Payload, *v.elem); err != nil {
				return err
			}
		}
		return enc.EndVariant()

	default:
		return newEncodeError(SchemaMisuse, "schema kind %s is not supported", schema.Kind)
	}
}

func decodeValue(dec *Decoder, schema *Schema) (Value, error) {
	switch schema.Kind {
	case KindUnit:
		return NewUnit(), nil

	case KindBool:
		b, err := dec.ExpectBool()
		if err != nil {
			return Value{}, err
		}
		return NewBool(b), nil

	case KindUint:
		u, err := dec.ExpectUint(schema.Width)
		if err != nil {
			return Value{}, err
		}
		return NewUint(u), nil

	case KindInt:
		i, err := dec.ExpectInt(schema.Width)
		if err != nil {
			return Value{}, err
		}
		return NewInt(i), nil

	case KindBytes:
		b, err := dec.ExpectBytes()
		if err != nil {
			return Value{}, err
		}
		return NewBytes(b), nil

	case KindString:
		s, err := dec.ExpectString()
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil

	case KindTimestamp:
		ts, err := dec.ExpectTimestamp()
		if err != nil {
			return Value{}, err
		}
		return NewTimestampValue(ts), nil

	case KindOptional:
		present, err := dec.ExpectOptionPresent()
		if err != nil {
			return Value{}, err
		}
		if !present {
			return NewNone(), nil
		}
		dec.BeginOption()
		elem, err := decodeValue(dec, schema.Elem)
		if err != nil {
			return Value{}, err
		}
		if err := dec.EndOption(); err != nil {
			return Value{}, err
		}
		return NewSome(elem), nil

	case KindTuple:
		if err := dec.BeginTuple(len(schema.Fields)); err != nil {
			return Value{}, err
		}
		elems := make([]Value, len(schema.Fields))
		for i, field := range schema.Fields {
			elem, err := decodeValue(dec, field.Schema)
			if err != nil {
				return Value{}, err
			}
			elems[i] = elem
		}
		if err := dec.EndTuple(); err != nil {
			return Value{}, err
		}
		return NewTuple(elems...), nil

	case KindSeq:
		length, err := dec.BeginSeq()
		if err != nil {
			return Value{}, err
		}
		elems := make([]Value, length)
		for i := 0; i < length; i++ {
			elem, err := decodeValue(dec, schema.Elem)
			if err != nil {
				return Value{}, err
			}
			elems[i] = elem
		}
		if err := dec.EndSeq(); err != nil {
			return Value{}, err
		}
		return NewSeq(elems...), nil

	case KindSet:
		count, err := dec.BeginSet()
		if err != nil {
			return Value{}, err
		}
		elems := make([]Value, count)
		for i := 0; i < count; i++ {
			if err := dec.BeginSetElement(); err != nil {
				return Value{}, err
			}
			elem, err := decodeValue(dec, schema.Elem)
			if err != nil {
				return Value{}, err
			}
			if err := dec.EndSetElement(); err != nil {
				return Value{}, err
			}
			elems[i] = elem
		}
		if err := dec.EndSet(); err != nil {
			return Value{}, err
		}
		return NewSet(elems...), nil

	case KindStruct:
		if err := dec.BeginStruct(len(schema.Fields)); err != nil {
			return Value{}, err
		}
		fields := make([]FieldValue, len(schema.Fields))
		for i, field := range schema.Fields {
			elem, err := decodeValue(dec, field.Schema)
			if err != nil {
				return Value{}, err
			}
			fields[i] = NamedField(field.Name, elem)
		}
		if err := dec.EndStruct(); err != nil {
			return Value{}, err
		}
		return NewStruct(fields...), nil

	case KindEnum:
		tag, err := dec.BeginVariant()
		if err != nil {
			return Value{}, err
		}
		if tag < 0 || tag >= len(schema.Variants) {
			return Value{}, newDecodeError(OutOfRange, dec.Offset(), "enum tag %d has no matching variant", tag)
		}
		variant := schema.Variants[tag]
		var payload *Value
		if variant.Payload != nil {
			v, err := decodeValue(dec, variant.Payload)
			if err != nil {
				return Value{}, err
			}
			payload = &v
		}
		if err := dec.EndVariant(); err != nil {
			return Value{}, err
		}
		return NewEnum(variant.Name, payload), nil

	default:
		return Value{}, newDecodeError(SchemaMismatch, dec.Offset(), "schema kind %s is not supported", schema.Kind)
	}
}

func findVariant(schema *Schema, name string) (tag int, variant Variant, ok bool) {
	for i, v := range schema.Variants {
		if v.Name == name {
			return i, v, true
		}
	}
	return 0, Variant{}, false
}
