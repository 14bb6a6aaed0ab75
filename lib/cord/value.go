// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

// Value is a dynamic tree shaped to match some [Schema]. It exists so
// that [Encode] and [Decode] have a generic tree to build and walk
// without every caller wiring up its own visitor over [Encoder] and
// [Decoder] directly — those two remain the lower-level streaming
// drivers a code-generator or reflection layer would target instead.
type Value struct {
	kind Kind

	b       bool
	u       uint64
	i       int64
	bytes   []byte
	str     string
	ts      Timestamp
	present bool

	elem *Value

	elems  []Value
	fields []FieldValue

	variant string
}

// FieldValue pairs a struct field's declared name with its value. Name
// is ignored when the Value is a tuple element rather than a struct
// field.
type FieldValue struct {
	Name  string
	Value Value
}

// NamedField is a small constructor so struct literals at call sites
// read as cord.NamedField("name", value) rather than a bare composite
// literal.
func NamedField(name string, value Value) FieldValue {
	return FieldValue{Name: name, Value: value}
}

func NewUnit() Value                 { return Value{kind: KindUnit} }
func NewBool(v bool) Value           { return Value{kind: KindBool, b: v} }
func NewUint(v uint64) Value         { return Value{kind: KindUint, u: v} }
func NewInt(v int64) Value           { return Value{kind: KindInt, i: v} }
func NewBytes(v []byte) Value        { return Value{kind: KindBytes, bytes: v} }
func NewString(v string) Value       { return Value{kind: KindString, str: v} }
func NewTimestampValue(v Timestamp) Value { return Value{kind: KindTimestamp, ts: v} }

// NewNone builds the absent case of an optional value.
func NewNone() Value { return Value{kind: KindOptional, present: false} }

// NewSome builds the present case of an optional value, wrapping elem.
func NewSome(elem Value) Value {
	return Value{kind: KindOptional, present: true, elem: &elem}
}

// NewTuple builds a fixed-length, positional composite value.
func NewTuple(elems ...Value) Value {
	return Value{kind: KindTuple, elems: append([]Value(nil), elems...)}
}

// NewSeq builds a variable-length sequence value.
func NewSeq(elems ...Value) Value {
	return Value{kind: KindSeq, elems: append([]Value(nil), elems...)}
}

// NewSet builds a set value. Duplicate elements (by encoded bytes) are
// dropped silently at encode time rather than rejected; see the Open
// Question decision recorded in DESIGN.md.
func NewSet(elems ...Value) Value {
	return Value{kind: KindSet, elems: append([]Value(nil), elems...)}
}

// NewStruct builds a struct value from fields in declaration order.
func NewStruct(fields ...FieldValue) Value {
	return Value{kind: KindStruct, fields: append([]FieldValue(nil), fields...)}
}

// NewEnum builds a tagged-union value naming the chosen variant.
// payload is nil for a unit variant.
func NewEnum(variant string, payload *Value) Value {
	return Value{kind: KindEnum, variant: variant, elem: payload}
}

func (v Value) Kind() Kind           { return v.kind }
func (v Value) Bool() bool           { return v.b }
func (v Value) Uint() uint64         { return v.u }
func (v Value) Int() int64           { return v.i }
func (v Value) Bytes() []byte        { return v.bytes }
func (v Value) Str() string          { return v.str }
func (v Value) Timestamp() Timestamp { return v.ts }

// Present reports whether an optional value carries an element.
func (v Value) Present() bool { return v.present }

// Elem returns the wrapped element of a present optional, or an enum
// variant's payload. It is nil otherwise.
func (v Value) Elem() *Value { return v.elem }

// Elems returns a tuple's, sequence's, or set's elements, in the order
// they were built (a set's elements are not pre-sorted here; canonical
// ordering is applied at encode time).
func (v Value) Elems() []Value { return v.elems }

// Fields returns a struct's fields, in declaration order.
func (v Value) Fields() []FieldValue { return v.fields }

// Variant returns the chosen variant name of an enum value.
func (v Value) Variant() string { return v.variant }
