// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import (
	"fmt"

	"github.com/cord-format/cord/lib/wire"
)

// EncodeErrorKind classifies an [EncodeError]. Every kind here is a
// programming or domain error raised by the caller misusing the
// Encoder — never a reaction to untrusted input.
type EncodeErrorKind int

const (
	// SchemaMisuse means a declared element/field count was violated,
	// or a Begin*/End* call was mismatched.
	SchemaMisuse EncodeErrorKind = iota

	// ErrDuplicateSetElement is reserved for a strict encoding mode
	// that rejects duplicate set elements outright. [Encoder] dedupes
	// sets silently instead (see DESIGN.md), so nothing in this
	// package currently returns this kind.
	ErrDuplicateSetElement
)

func (k EncodeErrorKind) String() string {
	switch k {
	case SchemaMisuse:
		return "schema_misuse"
	case ErrDuplicateSetElement:
		return "duplicate_set_element"
	default:
		return fmt.Sprintf("EncodeErrorKind(%d)", int(k))
	}
}

// EncodeError is returned by [Encoder] methods and [Encode] when the
// caller misuses the streaming API or the schema.
type EncodeError struct {
	Kind EncodeErrorKind
	Msg  string
}

func (e *EncodeError) Error() string { return "cord: encode: " + e.Kind.String() + ": " + e.Msg }

func newEncodeError(kind EncodeErrorKind, format string, args ...any) *EncodeError {
	return &EncodeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// DecodeErrorKind classifies a [DecodeError]. Every kind here reacts
// to untrusted input, never to a caller programming error.
type DecodeErrorKind int

const (
	// Truncated means the input ended before a complete value.
	Truncated DecodeErrorKind = iota

	// TrailingBytes means bytes remained after a complete top-level
	// value was decoded.
	TrailingBytes

	// NonCanonical means the encoding technically parses but violates
	// a canonicalization rule: an over-long varint, a boolean byte
	// outside {0,1}, an out-of-order or duplicate set element, or a
	// non-minimal length.
	NonCanonical

	// Overflow means a varint exceeds the schema-declared integer
	// width.
	Overflow

	// InvalidUtf8 means a string payload is not valid UTF-8.
	InvalidUtf8

	// OutOfRange means a timestamp's nanosecond field is >= 10^9 or an
	// enum tag has no matching variant.
	OutOfRange

	// SchemaMismatch means the caller's Expect* call asked for a shape
	// the bytes, or the Schema passed to [Decode], cannot satisfy.
	SchemaMismatch
)

func (k DecodeErrorKind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case TrailingBytes:
		return "trailing_bytes"
	case NonCanonical:
		return "non_canonical"
	case Overflow:
		return "overflow"
	case InvalidUtf8:
		return "invalid_utf8"
	case OutOfRange:
		return "out_of_range"
	case SchemaMismatch:
		return "schema_mismatch"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
	}
}

// DecodeError is returned by [Decoder] methods and [Decode]. Offset is
// the byte position in the input where the violation was detected.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cord: decode: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

func newDecodeError(kind DecodeErrorKind, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// wrapWireError translates a *wire.Error (varint codec failure) into
// the matching *DecodeError, preserving the offset the caller was at
// when it called into lib/wire.
func wrapWireError(err error, offset int) error {
	wireErr, ok := err.(*wire.Error)
	if !ok {
		return err
	}
	switch wireErr.Kind {
	case wire.Truncated:
		return newDecodeError(Truncated, offset, "%s", wireErr.Msg)
	case wire.NonCanonical:
		return newDecodeError(NonCanonical, offset, "%s", wireErr.Msg)
	case wire.Overflow:
		return newDecodeError(Overflow, offset, "%s", wireErr.Msg)
	default:
		return newDecodeError(SchemaMismatch, offset, "%s", wireErr.Msg)
	}
}
