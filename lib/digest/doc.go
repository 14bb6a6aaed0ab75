// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes domain-separated BLAKE3 hashes over Cord's
// canonical bytes. Because Cord guarantees a bijective value<->byte
// mapping, hashing the encoded bytes of a value is equivalent to
// hashing the value itself: semantically equal values always hash
// identically, and semantically distinct values practically never
// collide.
//
// [HashValue] addresses one encoded value. [HashChunk] addresses one
// archive chunk ([github.com/cord-format/cord/lib/archive]'s unit of
// content-addressed storage). [MerkleRoot] combines a sequence of
// hashes — chunk hashes within an archive record, or value hashes
// within a set — into a single root, so a large collection can be
// referenced and verified without transmitting every element.
package digest
