// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ToJSONValue converts a Value into a plain Go value suitable for
// encoding/json: map[string]any, []any, string, bool, int64, uint64,
// nil, or a base64 string for KindBytes. It is the CLI's bridge
// between Cord's binary wire format and JSON, which has no native
// byte-string or 128-bit integer type of its own.
//
// schema and v must describe the same shape; mismatches return an
// error rather than panicking, since this is typically driven by
// user-supplied schema and record files.
func ToJSONValue(schema *Schema, v Value) (any, error) {
	if schema.Kind != v.kind {
		return nil, fmt.Errorf("cord: schema kind %s does not match value kind %s", schema.Kind, v.kind)
	}

	switch schema.Kind {
	case KindUnit:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindUint:
		return v.u, nil
	case KindInt:
		return v.i, nil
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.bytes), nil
	case KindString:
		return v.str, nil
	case KindTimestamp:
		return map[string]any{"seconds": v.ts.Seconds, "nanos": v.ts.Nanos}, nil

	case KindOptional:
		if !v.present {
			return nil, nil
		}
		return ToJSONValue(schema.Elem, *v.elem)

	case KindTuple:
		result := make([]any, len(v.elems))
		for i, elem := range v.elems {
			converted, err := ToJSONValue(schema.Fields[i].Schema, elem)
			if err != nil {
				return nil, fmt.Errorf("tuple element %d: %w", i, err)
			}
			result[i] = converted
		}
		return result, nil

	case KindSeq, KindSet:
		result := make([]any, len(v.elems))
		for i, elem := range v.elems {
			converted, err := ToJSONValue(schema.Elem, elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			result[i] = converted
		}
		return result, nil

	case KindStruct:
		result := make(map[string]any, len(v.fields))
		for i, field := range v.fields {
			converted, err := ToJSONValue(schema.Fields[i].Schema, field.Value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.Name, err)
			}
			result[field.Name] = converted
		}
		return result, nil

	case KindEnum:
		_, variant, ok := findVariant(schema, v.variant)
		if !ok {
			return nil, fmt.Errorf("enum variant %q not found in schema", v.variant)
		}
		if variant.Payload == nil {
			return map[string]any{"variant": v.variant}, nil
		}
		payload, err := ToJSONValue(variant.Payload, *v.elem)
		if err != nil {
			return nil, fmt.Errorf("enum variant %q payload: %w", v.variant, err)
		}
		return map[string]any{"variant": v.variant, "payload": payload}, nil

	default:
		return nil, fmt.Errorf("cord: ToJSONValue does not support kind %s", schema.Kind)
	}
}

// FromJSONValue converts a plain Go value decoded from JSON (as
// produced by encoding/json.Unmarshal into an any, ideally with
// json.Decoder.UseNumber for integer precision) into a Value matching
// schema.
func FromJSONValue(schema *Schema, raw any) (Value, error) {
	switch schema.Kind {
	case KindUnit:
		if raw != nil {
			return Value{}, fmt.Errorf("cord: expected null for unit, got %T", raw)
		}
		return NewUnit(), nil

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected bool, got %T", raw)
		}
		return NewBool(b), nil

	case KindUint:
		n, err := jsonNumberToInt64(raw)
		if err != nil {
			return Value{}, err
		}
		return NewUint(uint64(n)), nil

	case KindInt:
		n, err := jsonNumberToInt64(raw)
		if err != nil {
			return Value{}, err
		}
		return NewInt(n), nil

	case KindBytes:
		s, ok := raw.(string)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected base64 string for bytes, got %T", raw)
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Value{}, fmt.Errorf("cord: decoding base64 bytes: %w", err)
		}
		return NewBytes(decoded), nil

	case KindString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected string, got %T", raw)
		}
		return NewString(s), nil

	case KindTimestamp:
		obj, ok := raw.(map[string]any)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected {seconds,nanos} object for timestamp, got %T", raw)
		}
		seconds, err := jsonNumberToInt64(obj["seconds"])
		if err != nil {
			return Value{}, fmt.Errorf("timestamp.seconds: %w", err)
		}
		nanos, err := jsonNumberToInt64(obj["nanos"])
		if err != nil {
			return Value{}, fmt.Errorf("timestamp.nanos: %w", err)
		}
		return NewTimestampValue(Timestamp{Seconds: seconds, Nanos: uint32(nanos)}), nil

	case KindOptional:
		if raw == nil {
			return NewNone(), nil
		}
		elem, err := FromJSONValue(schema.Elem, raw)
		if err != nil {
			return Value{}, err
		}
		return NewSome(elem), nil

	case KindTuple:
		items, ok := raw.([]any)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected array for tuple, got %T", raw)
		}
		if len(items) != len(schema.Fields) {
			return Value{}, fmt.Errorf("cord: tuple has %d elements, schema declares %d", len(items), len(schema.Fields))
		}
		elems := make([]Value, len(items))
		for i, item := range items {
			elem, err := FromJSONValue(schema.Fields[i].Schema, item)
			if err != nil {
				return Value{}, fmt.Errorf("tuple element %d: %w", i, err)
			}
			elems[i] = elem
		}
		return NewTuple(elems...), nil

	case KindSeq, KindSet:
		items, ok := raw.([]any)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected array, got %T", raw)
		}
		elems := make([]Value, len(items))
		for i, item := range items {
			elem, err := FromJSONValue(schema.Elem, item)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = elem
		}
		if schema.Kind == KindSeq {
			return NewSeq(elems...), nil
		}
		return NewSet(elems...), nil

	case KindStruct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected object for struct, got %T", raw)
		}
		fields := make([]FieldValue, len(schema.Fields))
		for i, field := range schema.Fields {
			raw, ok := obj[field.Name]
			if !ok {
				return Value{}, fmt.Errorf("cord: missing struct field %q", field.Name)
			}
			value, err := FromJSONValue(field.Schema, raw)
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", field.Name, err)
			}
			fields[i] = NamedField(field.Name, value)
		}
		return NewStruct(fields...), nil

	case KindEnum:
		obj, ok := raw.(map[string]any)
		if !ok {
			return Value{}, fmt.Errorf("cord: expected {variant,payload} object for enum, got %T", raw)
		}
		name, ok := obj["variant"].(string)
		if !ok {
			return Value{}, fmt.Errorf("cord: enum object missing string \"variant\"")
		}
		_, variant, ok := findVariant(schema, name)
		if !ok {
			return Value{}, fmt.Errorf("cord: unknown enum variant %q", name)
		}
		if variant.Payload == nil {
			return NewEnum(name, nil), nil
		}
		payloadRaw, ok := obj["payload"]
		if !ok {
			return Value{}, fmt.Errorf("cord: enum variant %q requires a \"payload\"", name)
		}
		payload, err := FromJSONValue(variant.Payload, payloadRaw)
		if err != nil {
			return Value{}, fmt.Errorf("enum variant %q payload: %w", name, err)
		}
		return NewEnum(name, &payload), nil

	default:
		return Value{}, fmt.Errorf("cord: FromJSONValue does not support kind %s", schema.Kind)
	}
}

// jsonNumberToInt64 accepts either a json.Number (from a decoder using
// UseNumber) or a float64 (from a plain json.Unmarshal) and returns
// its int64 representation.
func jsonNumberToInt64(raw any) (int64, error) {
	switch n := raw.(type) {
	case json.Number:
		return n.Int64()
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("cord: expected a number, got %T", raw)
	}
}
