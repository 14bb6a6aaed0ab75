// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import "github.com/cord-format/cord/lib/wire"

// decodeFrame mirrors encodeFrame: one open composite on the Decoder's
// stack.
type decodeFrame struct {
	kind      Kind
	remaining int // fields/elements still expected; -1 means not tracked here

	setCount     int    // set only: elements declared by the length prefix
	setSeen      int    // set only: elements consumed so far
	setLast      []byte // set only: previous element's raw bytes
	setElemStart int    // set only: offset the current element began at
}

// Decoder is the low-level streaming driver for consuming Cord bytes.
// Its Expect*/Begin*/End* methods mirror [Encoder] exactly, enforcing
// every canonicalization rule as it goes: trailing continuation bytes,
// out-of-range widths, invalid UTF-8, and out-of-order or duplicate set
// elements are all rejected at the point they are read rather than
// deferred to a final validation pass.
type Decoder struct {
	input []byte
	pos   int
	stack []*decodeFrame
}

// NewDecoder returns a Decoder reading from the front of input.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{input: input}
}

// Offset returns the decoder's current byte position, for callers that
// want to report their own errors at the same granularity as
// [DecodeError].
func (d *Decoder) Offset() int { return d.pos }

// Remaining returns the bytes not yet consumed.
func (d *Decoder) Remaining() []byte { return d.input[d.pos:] }

// Finish reports a SchemaMismatch error if any composite is still open,
// or a TrailingBytes error if bytes remain unconsumed.
func (d *Decoder) Finish() error {
	if len(d.stack) != 0 {
		return newDecodeError(SchemaMismatch, d.pos, "%d composite(s) left unclosed", len(d.stack))
	}
	if d.pos != len(d.input) {
		return newDecodeError(TrailingBytes, d.pos, "%d trailing byte(s) after decoded value", len(d.input)-d.pos)
	}
	return nil
}

func (d *Decoder) accountChild() error {
	if len(d.stack) == 0 {
		return nil
	}
	top := d.stack[len(d.stack)-1]
	if top.remaining == 0 {
		return newDecodeError(SchemaMismatch, d.pos, "more children present than %s declared", top.kind)
	}
	if top.remaining > 0 {
		top.remaining--
	}
	return nil
}

func (d *Decoder) ExpectBool() (bool, error) {
	if err := d.accountChild(); err != nil {
		return false, err
	}
	v, n, err := consumeBool(d.input[d.pos:], d.pos)
	if err != nil {
		return false, err
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) ExpectUint(width int) (uint64, error) {
	if err := d.accountChild(); err != nil {
		return 0, err
	}
	v, n, err := wire.ConsumeUvarint(d.input[d.pos:], width)
	if err != nil {
		return 0, wrapWireError(err, d.pos)
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) ExpectInt(width int) (int64, error) {
	if err := d.accountChild(); err != nil {
		return 0, err
	}
	v, n, err := wire.ConsumeVarint(d.input[d.pos:], width)
	if err != nil {
		return 0, wrapWireError(err, d.pos)
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) ExpectBytes() ([]byte, error) {
	if err := d.accountChild(); err != nil {
		return nil, err
	}
	v, n, err := consumeBytes(d.input[d.pos:], d.pos)
	if err != nil {
		return nil, err
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) ExpectString() (string, error) {
	if err := d.accountChild(); err != nil {
		return "", err
	}
	v, n, err := consumeString(d.input[d.pos:], d.pos)
	if err != nil {
		return "", err
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) ExpectTimestamp() (Timestamp, error) {
	if err := d.accountChild(); err != nil {
		return Timestamp{}, err
	}
	v, n, err := consumeTimestamp(d.input[d.pos:], d.pos)
	if err != nil {
		return Timestamp{}, err
	}
	d.pos += n
	return v, nil
}

// ExpectOptionPresent reads an optional's presence tag, charging the
// optional itself as one child of its enclosing composite. When it
// returns true, the caller must follow with BeginOption, the child
// decode, and EndOption, so the payload is accounted against the
// optional's own frame rather than charged again against the parent.
func (d *Decoder) ExpectOptionPresent() (bool, error) {
	if err := d.accountChild(); err != nil {
		return false, err
	}
	v, n, err := consumeBool(d.input[d.pos:], d.pos)
	if err != nil {
		return false, err
	}
	d.pos += n
	return v, nil
}

// BeginOption opens a frame for a present optional's payload. Call
// only after ExpectOptionPresent returns true.
func (d *Decoder) BeginOption() {
	d.stack = append(d.stack, &decodeFrame{kind: KindOptional, remaining: -1})
}

// EndOption closes the frame opened by BeginOption.
func (d *Decoder) EndOption() error {
	if len(d.stack) == 0 || d.stack[len(d.stack)-1].kind != KindOptional {
		return newDecodeError(SchemaMismatch, d.pos, "unbalanced EndOption call")
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

func (d *Decoder) BeginStruct(fieldCount int) error {
	if err := d.accountChild(); err != nil {
		return err
	}
	d.stack = append(d.stack, &decodeFrame{kind: KindStruct, remaining: fieldCount})
	return nil
}

func (d *Decoder) EndStruct() error { return d.endFixed(KindStruct) }

func (d *Decoder) BeginTuple(elemCount int) error {
	if err := d.accountChild(); err != nil {
		return err
	}
	d.stack = append(d.stack, &decodeFrame{kind: KindTuple, remaining: elemCount})
	return nil
}

func (d *Decoder) EndTuple() error { return d.endFixed(KindTuple) }

func (d *Decoder) endFixed(kind Kind) error {
	if len(d.stack) == 0 || d.stack[len(d.stack)-1].kind != kind {
		return newDecodeError(SchemaMismatch, d.pos, "unbalanced End%s call", kind)
	}
	top := d.stack[len(d.stack)-1]
	if top.remaining != 0 {
		return newDecodeError(SchemaMismatch, d.pos, "%s closed with %d child(ren) still expected", kind, top.remaining)
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// BeginSeq reads the sequence's length prefix and returns it, opening
// a frame expecting exactly that many further elements.
func (d *Decoder) BeginSeq() (int, error) {
	if err := d.accountChild(); err != nil {
		return 0, err
	}
	length, n, err := wire.ConsumeUvarint(d.input[d.pos:], 64)
	if err != nil {
		return 0, wrapWireError(err, d.pos)
	}
	d.pos += n
	d.stack = append(d.stack, &decodeFrame{kind: KindSeq, remaining: int(length)})
	return int(length), nil
}

func (d *Decoder) EndSeq() error { return d.endFixed(KindSeq) }

// BeginSet reads the set's length prefix and returns it, opening a
// frame that verifies strict ascending order and absence of duplicates
// as elements are read.
func (d *Decoder) BeginSet() (int, error) {
	if err := d.accountChild(); err != nil {
		return 0, err
	}
	count, n, err := wire.ConsumeUvarint(d.input[d.pos:], 64)
	if err != nil {
		return 0, wrapWireError(err, d.pos)
	}
	d.pos += n
	d.stack = append(d.stack, &decodeFrame{kind: KindSet, remaining: -1, setCount: int(count)})
	return int(count), nil
}

// BeginSetElement marks the start of one set element's raw bytes.
func (d *Decoder) BeginSetElement() error {
	if len(d.stack) == 0 || d.stack[len(d.stack)-1].kind != KindSet {
		return newDecodeError(SchemaMismatch, d.pos, "BeginSetElement outside an open set")
	}
	top := d.stack[len(d.stack)-1]
	if top.setSeen >= top.setCount {
		return newDecodeError(SchemaMismatch, d.pos, "more set elements present than the %d declared", top.setCount)
	}
	top.setElemStart = d.pos
	return nil
}

// EndSetElement closes the element opened by BeginSetElement, checking
// it sorts strictly after the previous element.
func (d *Decoder) EndSetElement() error {
	if len(d.stack) == 0 || d.stack[len(d.stack)-1].kind != KindSet {
		return newDecodeError(SchemaMismatch, d.pos, "EndSetElement outside an open set")
	}
	top := d.stack[len(d.stack)-1]
	raw := d.input[top.setElemStart:d.pos]
	if top.setLast != nil && wire.Compare(top.setLast, raw) >= 0 {
		return newDecodeError(NonCanonical, top.setElemStart, "set element is not strictly greater than the previous element")
	}
	top.setLast = raw
	top.setSeen++
	return nil
}

// EndSet closes the set, verifying every declared element was seen.
func (d *Decoder) EndSet() error {
	if len(d.stack) == 0 || d.stack[len(d.stack)-1].kind != KindSet {
		return newDecodeError(SchemaMismatch, d.pos, "unbalanced EndSet call")
	}
	top := d.stack[len(d.stack)-1]
	if top.setSeen != top.setCount {
		return newDecodeError(SchemaMismatch, d.pos, "set declared %d elements but %d were read", top.setCount, top.setSeen)
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// BeginVariant reads an enum's tag varint and returns it, opening a
// frame for its payload, if any.
func (d *Decoder) BeginVariant() (int, error) {
	if err := d.accountChild(); err != nil {
		return 0, err
	}
	tag, n, err := wire.ConsumeUvarint(d.input[d.pos:], 64)
	if err != nil {
		return 0, wrapWireError(err, d.pos)
	}
	d.pos += n
	d.stack = append(d.stack, &decodeFrame{kind: KindEnum, remaining: -1})
	return int(tag), nil
}

func (d *Decoder) EndVariant() error {
	if len(d.stack) == 0 || d.stack[len(d.stack)-1].kind != KindEnum {
		return newDecodeError(SchemaMismatch, d.pos, "unbalanced EndVariant call")
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}
