// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"

	"github.com/cord-format/cord/lib/cord"
)

// ToCBOR converts a cord.Value into a plain Go value (map[string]any,
// []any, string, uint64, int64, []byte, bool, nil) suitable for
// Marshal, so a Cord payload can be re-expressed as CBOR for
// interoperation with callers that only speak CBOR — the cord
// diagnostic tool's "diag" view, for instance. The conversion is
// one-directional and lossy: Cord's schema-carried integer widths and
// enum tags are not recoverable from the CBOR result alone, so it is
// only ever used for read-only inspection, never as a round trip back
// into a cord.Value.
func ToCBOR(schema *cord.Schema, value cord.Value) (any, error) {
	switch schema.Kind {
	case cord.KindUnit:
		return nil, nil
	case cord.KindBool:
		return value.Bool(), nil
	case cord.KindUint:
		return value.Uint(), nil
	case cord.KindInt:
		return value.Int(), nil
	case cord.KindBytes:
		return value.Bytes(), nil
	case cord.KindString:
		return value.Str(), nil
	case cord.KindTimestamp:
		ts := value.Timestamp()
		return map[string]any{"seconds": ts.Seconds, "nanos": ts.Nanos}, nil

	case cord.KindOptional:
		if !value.Present() {
			return nil, nil
		}
		return ToCBOR(schema.Elem, *value.Elem())

	case cord.KindTuple:
		out := make([]any, len(value.Elems()))
		for i, elem := range value.Elems() {
			converted, err := ToCBOR(schema.Fields[i].Schema, elem)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case cord.KindSeq, cord.KindSet:
		out := make([]any, len(value.Elems()))
		for i, elem := range value.Elems() {
			converted, err := ToCBOR(schema.Elem, elem)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case cord.KindStruct:
		out := make(map[string]any, len(value.Fields()))
		for _, field := range value.Fields() {
			fieldSchema, ok := structFieldSchema(schema, field.Name)
			if !ok {
				return nil, fmt.Errorf("codec: field %q not declared by schema", field.Name)
			}
			converted, err := ToCBOR(fieldSchema, field.Value)
			if err != nil {
				return nil, err
			}
			out[field.Name] = converted
		}
		return out, nil

	case cord.KindEnum:
		variantSchema, ok := enumVariantSchema(schema, value.Variant())
		if !ok {
			return nil, fmt.Errorf("codec: variant %q not declared by schema", value.Variant())
		}
		if variantSchema == nil {
			return map[string]any{"variant": value.Variant()}, nil
		}
		payload, err := ToCBOR(variantSchema, *value.Elem())
		if err != nil {
			return nil, err
		}
		return map[string]any{"variant": value.Variant(), "payload": payload}, nil

	default:
		return nil, fmt.Errorf("codec: schema kind %s has no CBOR mapping", schema.Kind)
	}
}

func structFieldSchema(schema *cord.Schema, name string) (*cord.Schema, bool) {
	for _, field := range schema.Fields {
		if field.Name == name {
			return field.Schema, true
		}
	}
	return nil, false
}

func enumVariantSchema(schema *cord.Schema, name string) (*cord.Schema, bool) {
	for _, variant := range schema.Variants {
		if variant.Name == name {
			return variant.Payload, true
		}
	}
	return nil, false
}
