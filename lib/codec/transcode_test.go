// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"testing"

	"github.com/cord-format/cord/lib/cord"
)

func TestToCBOR_StructMarshalsToCBOR(t *testing.T) {
	schema := cord.Struct(
		cord.Field{Name: "id", Schema: cord.Uint(32)},
		cord.Field{Name: "name", Schema: cord.String()},
	)
	value := cord.NewStruct(
		cord.NamedField("id", cord.NewUint(7)),
		cord.NamedField("name", cord.NewString("widget")),
	)

	converted, err := ToCBOR(schema, value)
	if err != nil {
		t.Fatalf("ToCBOR: %v", err)
	}

	encoded, err := Marshal(converted)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	diagnosis, err := Diagnose(encoded)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnosis == "" {
		t.Fatal("Diagnose returned an empty string")
	}
}

func TestToCBOR_EnumUnitVariant(t *testing.T) {
	schema := cord.Enum(cord.Variant{Name: "Public"}, cord.Variant{Name: "Restricted"})
	value := cord.NewEnum("Public", nil)

	converted, err := ToCBOR(schema, value)
	if err != nil {
		t.Fatalf("ToCBOR: %v", err)
	}
	asMap, ok := converted.(map[string]any)
	if !ok || asMap["variant"] != "Public" {
		t.Fatalf("ToCBOR(unit variant) = %#v", converted)
	}
}
