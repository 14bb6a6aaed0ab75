// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import (
	"unicode/utf8"

	"github.com/cord-format/cord/lib/wire"
)

// nanosPerSecond bounds a timestamp's Nanos field: a conforming
// timestamp never carries a fractional-second count >= 1e9.
const nanosPerSecond = 1_000_000_000

// Timestamp is a point in time expressed as a signed count of seconds
// since the Unix epoch plus a non-negative nanosecond remainder.
type Timestamp struct {
	Seconds int64
	Nanos   uint32
}

func appendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 0x01)
	}
	return append(buf, 0x00)
}

func consumeBool(b []byte, offset int) (value bool, n int, err error) {
	if len(b) == 0 {
		return false, 0, newDecodeError(Truncated, offset, "expected a bool byte")
	}
	switch b[0] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, newDecodeError(NonCanonical, offset, "bool byte %#x is neither 0x00 nor 0x01", b[0])
	}
}

// appendBytes appends a length-prefixed byte string: an unsigned
// 64-bit-width varint length, then the raw bytes.
func appendBytes(buf []byte, v []byte) []byte {
	buf = wire.AppendUvarint(buf, uint64(len(v)), 64)
	return append(buf, v...)
}

func consumeBytes(b []byte, offset int) (value []byte, n int, err error) {
	length, lenN, err := wire.ConsumeUvarint(b, 64)
	if err != nil {
		return nil, 0, wrapWireError(err, offset)
	}
	if uint64(len(b)-lenN) < length {
		return nil, 0, newDecodeError(Truncated, offset+lenN, "declared length %d exceeds remaining input", length)
	}
	value = b[lenN : lenN+int(length)]
	return value, lenN + int(length), nil
}

// appendString appends a length-prefixed UTF-8 byte string, reusing
// appendBytes: a string and a bytes value share a wire shape, differing
// only in the UTF-8 validation the decoder applies.
func appendString(buf []byte, v string) []byte {
	return appendBytes(buf, []byte(v))
}

func consumeString(b []byte, offset int) (value string, n int, err error) {
	raw, n, err := consumeBytes(b, offset)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(raw) {
		return "", 0, newDecodeError(InvalidUtf8, offset, "string payload is not valid UTF-8")
	}
	return string(raw), n, nil
}

// appendTimestamp appends a ZigZag-mapped 64-bit-width seconds varint
// followed by an unsigned 32-bit-width nanoseconds varint.
func appendTimestamp(buf []byte, v Timestamp) []byte {
	buf = wire.AppendVarint(buf, v.Seconds, 64)
	buf = wire.AppendUvarint(buf, uint64(v.Nanos), 32)
	return buf
}

func consumeTimestamp(b []byte, offset int) (value Timestamp, n int, err error) {
	seconds, secN, err := wire.ConsumeVarint(b, 64)
	if err != nil {
		return Timestamp{}, 0, wrapWireError(err, offset)
	}
	nanos, nanosN, err := wire.ConsumeUvarint(b[secN:], 32)
	if err != nil {
		return Timestamp{}, 0, wrapWireError(err, offset+secN)
	}
	if nanos >= nanosPerSecond {
		return Timestamp{}, 0, newDecodeError(OutOfRange, offset+secN, "nanosecond remainder %d is >= %d", nanos, nanosPerSecond)
	}
	return Timestamp{Seconds: seconds, Nanos: uint32(nanos)}, secN + nanosN, nil
}
