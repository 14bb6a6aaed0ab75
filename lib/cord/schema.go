// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

// Kind identifies one of Cord's closed algebra of wire categories.
// Width and length metadata live on [Schema], never on the wire; Kind
// alone determines how a Schema node's bytes are shaped.
type Kind int

const (
	KindUnit Kind = iota
	KindBool
	KindUint
	KindInt
	KindBytes
	KindString
	KindTimestamp
	KindOptional
	KindTuple  // fixed-length sequence; length is schema-known, not on the wire
	KindSeq    // variable-length sequence; a length varint precedes the elements
	KindSet    // length varint + elements in strict canonical order, deduplicated
	KindStruct // concatenation of field encodings in declaration order
	KindEnum   // varint tag + the tagged variant's payload

	// KindMap is reserved: map support is unspecified until a
	// canonical key order is fixed. No Schema constructor produces
	// KindMap and the encoder/decoder reject it with
	// SchemaMisuse/SchemaMismatch if one is ever constructed by hand.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindTimestamp:
		return "timestamp"
	case KindOptional:
		return "optional"
	case KindTuple:
		return "tuple"
	case KindSeq:
		return "seq"
	case KindSet:
		return "set"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Field is one named member of a [KindStruct] schema, in declaration
// order. Tuple elements reuse the same type with Name left empty: a
// tuple has positions, not names.
type Field struct {
	Name   string
	Schema *Schema
}

// Variant is one arm of a [KindEnum] schema. Payload is nil for a unit
// variant; otherwise it is the schema of the variant's payload, of any
// kind (a [KindTuple] or [KindStruct] for multi-field variants, or a
// single schema such as a [KindSeq] directly).
type Variant struct {
	Name    string
	Payload *Schema
}

// Schema describes the shape of one Cord value: its [Kind], plus
// whatever metadata that Kind requires (integer width, element schema,
// field list, variant list). Schema values are immutable once built and
// may be shared freely across goroutines and across many encode/decode
// calls.
type Schema struct {
	Kind Kind

	// Width is the logical bit width for KindUint/KindInt: 8, 16, 32,
	// 64, or 128. Required for both kinds; zero is invalid. Values are
	// stored as Go's uint64/int64 regardless of Width, so a Width of
	// 128 only affects the wire's ceil(128/7)-byte budget on other
	// implementations — this package still truncates to 64 bits (see
	// [github.com/cord-format/cord/lib/wire]'s maxVarintLen64 note).
	Width int

	// Elem is the element schema for KindOptional, KindSeq, and
	// KindSet.
	Elem *Schema

	// Fields holds KindStruct fields (named) or KindTuple elements
	// (Name ignored), in declaration order.
	Fields []Field

	// Variants holds KindEnum arms, in declaration (tag) order — the
	// wire tag is the index into this slice.
	Variants []Variant
}

func Unit() *Schema      { return &Schema{Kind: KindUnit} }
func Bool() *Schema      { return &Schema{Kind: KindBool} }
func Bytes() *Schema     { return &Schema{Kind: KindBytes} }
func String() *Schema    { return &Schema{Kind: KindString} }
func Timestamp() *Schema { return &Schema{Kind: KindTimestamp} }

// Uint builds an unsigned integer schema of the given logical width
// (8, 16, 32, 64, or 128).
func Uint(width int) *Schema { return &Schema{Kind: KindUint, Width: width} }

// Int builds a signed integer schema of the given logical width.
func Int(width int) *Schema { return &Schema{Kind: KindInt, Width: width} }

// Optional builds an optional-of-elem schema.
func Optional(elem *Schema) *Schema { return &Schema{Kind: KindOptional, Elem: elem} }

// Seq builds a variable-length sequence-of-elem schema.
func Seq(elem *Schema) *Schema { return &Schema{Kind: KindSeq, Elem: elem} }

// SetOf builds a set-of-elem schema; elements are deduplicated and
// written in canonical byte order on encode.
func SetOf(elem *Schema) *Schema { return &Schema{Kind: KindSet, Elem: elem} }

// Tuple builds a fixed-length sequence schema from elems, in order.
func Tuple(elems ...*Schema) *Schema {
	fields := make([]Field, len(elems))
	for i, elem := range elems {
		fields[i] = Field{Schema: elem}
	}
	return &Schema{Kind: KindTuple, Fields: fields}
}

// Struct builds a struct schema from named fields, in declaration
// order.
func Struct(fields ...Field) *Schema {
	return &Schema{Kind: KindStruct, Fields: append([]Field(nil), fields...)}
}

// Enum builds a tagged-union schema from variants, in declaration
// (tag) order.
func Enum(variants ...Variant) *Schema {
	return &Schema{Kind: KindEnum, Variants: append([]Variant(nil), variants...)}
}
