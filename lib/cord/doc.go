// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cord implements the Cord deterministic binary serialization
// format: a bijective mapping between semantic values and byte strings,
// built for signing, hashing, and cross-implementation verification
// rather than for preserving "original bytes".
//
// The format recognizes a closed algebra of wire categories — [Kind] —
// described to the package by a [Schema] value the caller builds once
// and reuses for every encode/decode of that shape. Schema never
// appears on the wire; decoding a byte string requires the same schema
// the encoder used.
//
// [Encoder] and [Decoder] are the streaming drivers: a caller with its
// own reflection or derive machinery walks a composite value by calling
// BeginStruct/EmitUint/EndStruct-style methods on an Encoder, or the
// mirrored Expect* methods on a Decoder, directly. [Encode] and
// [Decode] are convenience wrappers around a minimal dynamic [Value]
// tree for callers that would rather build one generic tree than wire
// up their own visitor.
//
// Two disjoint error taxonomies separate programming errors from
// untrusted-input errors: [EncodeError] ([SchemaMisuse],
// [ErrDuplicateSetElement]) and [DecodeError] ([Truncated],
// [TrailingBytes], [NonCanonical], [Overflow], [InvalidUtf8],
// [OutOfRange], [SchemaMismatch]).
package cord
