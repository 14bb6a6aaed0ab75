// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire provides the two leaf primitives that every Cord wire
// category is built from: a canonical LEB128 varint codec and a total
// order over encoded byte strings.
//
// [AppendUvarint] / [ConsumeUvarint] encode and decode unsigned
// integers in the shortest possible form, rejecting any input that
// could have been written shorter. [AppendVarint] / [ConsumeVarint]
// apply a ZigZag transform on top so that small-magnitude signed values
// stay short.
//
// [Compare] and [SortCanonical] implement the canonical ordering used
// to sort and verify Cord sets: plain unsigned-byte lexicographic
// comparison, with a shorter string ordering before a longer string of
// which it is a prefix.
//
// This package has no dependencies on other Cord packages; lib/cord
// builds the primitive and composite wire categories on top of it.
package wire
