// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import "github.com/cord-format/cord/lib/wire"

// encodeFrame is one entry in the Encoder's stack of open composites,
// modeled on the stack-of-frames driver pattern used by streaming
// encoders elsewhere in the ecosystem (a composite's shape is only
// fully known once its End call runs, so the driver tracks open
// composites rather than recursing through the caller's own stack).
//
// Only a set frame owns a buffer: every other kind passes writes
// straight through to whatever sink is active above it, since structs,
// tuples, sequences, and enum payloads all write their elements
// directly into the surrounding bytes with no reordering.
type encodeFrame struct {
	kind      Kind
	remaining int // fields/elements still expected; -1 means not tracked here

	owned    []byte   // set only: bytes accumulated so far for this set
	starts   []int    // set only: owned-offset each element began at
}

// Encoder is the low-level streaming driver for producing Cord bytes.
// A caller walks a value shape by pairing every BeginX with a matching
// EndX and calling the EmitX leaf methods in between, in schema order.
// [Encode] is a convenience wrapper that drives an Encoder from a
// generic [Value] tree; callers with their own reflection or
// code-generated visitor can drive an Encoder directly instead.
type Encoder struct {
	out   []byte
	stack []*encodeFrame
}

// NewEncoder returns an Encoder ready to accept Begin/Emit calls.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Finish returns the encoded bytes. It returns a SchemaMisuse error if
// any Begin call was never matched by its End call.
func (e *Encoder) Finish() ([]byte, error) {
	if len(e.stack) != 0 {
		return nil, newEncodeError(SchemaMisuse, "%d composite(s) left unclosed", len(e.stack))
	}
	return e.out, nil
}

// sink returns the buffer that the next write should append to: the
// innermost open set's accumulation buffer, or the top-level output if
// no set is open above the current position.
func (e *Encoder) sink() *[]byte {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].kind == KindSet {
			return &e.stack[i].owned
		}
	}
	return &e.out
}

// accountChild charges one child slot against the innermost
// fields/elements counter, if one is active. It is called at the start
// of every Emit/Begin so a caller supplying more children than a
// BeginStruct/BeginTuple/BeginSeq declared is caught immediately rather
// than only at the mismatched End call.
func (e *Encoder) accountChild() error {
	if len(e.stack) == 0 {
		return nil
	}
	top := e.stack[len(e.stack)-1]
	if top.remaining == 0 {
		return newEncodeError(SchemaMisuse, "more children supplied than %s declared", top.kind)
	}
	if top.remaining > 0 {
		top.remaining--
	}
	return nil
}

func (e *Encoder) EmitBool(v bool) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = appendBool(*sink, v)
	return nil
}

func (e *Encoder) EmitUint(v uint64, width int) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	if !wire.FitsUnsignedWidth(v, width) {
		return newEncodeError(SchemaMisuse, "value %d does not fit the declared %d-bit unsigned width", v, width)
	}
	sink := e.sink()
	*sink = wire.AppendUvarint(*sink, v, width)
	return nil
}

func (e *Encoder) EmitInt(v int64, width int) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	if !wire.FitsSignedWidth(v, width) {
		return newEncodeError(SchemaMisuse, "value %d does not fit the declared %d-bit signed width", v, width)
	}
	sink := e.sink()
	*sink = wire.AppendVarint(*sink, v, width)
	return nil
}

func (e *Encoder) EmitBytes(v []byte) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = appendBytes(*sink, v)
	return nil
}

func (e *Encoder) EmitString(v string) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = appendString(*sink, v)
	return nil
}

func (e *Encoder) EmitTimestamp(v Timestamp) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = appendTimestamp(*sink, v)
	return nil
}

// EmitOptionPresent writes the presence tag of an optional value,
// charging the optional itself as one child of its enclosing composite.
// When present is true, the caller must follow with BeginOption, the
// child encoding, and EndOption, so the payload is accounted against
// the optional's own frame rather than charged again against the
// parent.
func (e *Encoder) EmitOptionPresent(present bool) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = appendBool(*sink, present)
	return nil
}

// BeginOption opens a frame for a present optional's payload. Call
// only after EmitOptionPresent(true).
func (e *Encoder) BeginOption() {
	e.stack = append(e.stack, &encodeFrame{kind: KindOptional, remaining: -1})
}

// EndOption closes the frame opened by BeginOption.
func (e *Encoder) EndOption() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != KindOptional {
		return newEncodeError(SchemaMisuse, "unbalanced EndOption call")
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

func (e *Encoder) BeginStruct(fieldCount int) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	e.stack = append(e.stack, &encodeFrame{kind: KindStruct, remaining: fieldCount})
	return nil
}

func (e *Encoder) EndStruct() error {
	return e.endFixed(KindStruct)
}

func (e *Encoder) BeginTuple(elemCount int) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	e.stack = append(e.stack, &encodeFrame{kind: KindTuple, remaining: elemCount})
	return nil
}

func (e *Encoder) EndTuple() error {
	return e.endFixed(KindTuple)
}

func (e *Encoder) endFixed(kind Kind) error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != kind {
		return newEncodeError(SchemaMisuse, "unbalanced End%s call", kind)
	}
	top := e.stack[len(e.stack)-1]
	if top.remaining != 0 {
		return newEncodeError(SchemaMisuse, "%s closed with %d child(ren) still expected", kind, top.remaining)
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

// BeginSeq writes the sequence's length prefix and opens a frame
// expecting exactly length further elements.
func (e *Encoder) BeginSeq(length int) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = wire.AppendUvarint(*sink, uint64(length), 64)
	e.stack = append(e.stack, &encodeFrame{kind: KindSeq, remaining: length})
	return nil
}

func (e *Encoder) EndSeq() error {
	return e.endFixed(KindSeq)
}

// BeginSet opens a frame that accumulates each element's bytes so they
// can be canonically sorted and deduplicated once the full set is
// known.
func (e *Encoder) BeginSet() error {
	if err := e.accountChild(); err != nil {
		return err
	}
	e.stack = append(e.stack, &encodeFrame{kind: KindSet, remaining: -1})
	return nil
}

// BeginSetElement marks the start of one set element's encoding.
func (e *Encoder) BeginSetElement() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != KindSet {
		return newEncodeError(SchemaMisuse, "BeginSetElement outside an open set")
	}
	top := e.stack[len(e.stack)-1]
	top.starts = append(top.starts, len(top.owned))
	return nil
}

// EndSetElement closes the element most recently opened by
// BeginSetElement.
func (e *Encoder) EndSetElement() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != KindSet {
		return newEncodeError(SchemaMisuse, "EndSetElement outside an open set")
	}
	if top := e.stack[len(e.stack)-1]; len(top.starts) == 0 {
		return newEncodeError(SchemaMisuse, "EndSetElement with no matching BeginSetElement")
	}
	return nil
}

// EndSet sorts the accumulated elements into canonical order,
// deduplicates bit-identical elements, and writes the resulting count
// and element bytes into the enclosing sink.
func (e *Encoder) EndSet() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != KindSet {
		return newEncodeError(SchemaMisuse, "unbalanced EndSet call")
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	elements := make([][]byte, len(top.starts))
	for i, start := range top.starts {
		end := len(top.owned)
		if i+1 < len(top.starts) {
			end = top.starts[i+1]
		}
		elements[i] = append([]byte(nil), top.owned[start:end]...)
	}
	elements = wire.SortCanonical(elements)

	sink := e.sink()
	*sink = wire.AppendUvarint(*sink, uint64(len(elements)), 64)
	for _, element := range elements {
		*sink = append(*sink, element...)
	}
	return nil
}

// BeginVariant writes an enum's tag varint and opens a frame for its
// payload, if any. tag is the variant's declaration-order index.
func (e *Encoder) BeginVariant(tag int) error {
	if err := e.accountChild(); err != nil {
		return err
	}
	sink := e.sink()
	*sink = wire.AppendUvarint(*sink, uint64(tag), 64)
	e.stack = append(e.stack, &encodeFrame{kind: KindEnum, remaining: -1})
	return nil
}

func (e *Encoder) EndVariant() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != KindEnum {
		return newEncodeError(SchemaMisuse, "unbalanced EndVariant call")
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}
