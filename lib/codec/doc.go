// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides cord's standard CBOR encoding configuration
// and the lossy transcoding bridge between cord.Value and CBOR.
//
// cord's own wire format is schema-less at the container level and
// carries no textual representation of its own. CBOR fills the gap
// for tooling that wants to inspect or reprocess a cord value with
// existing CBOR-aware infrastructure (diagnostic notation, jq-style
// filters): [ToCBOR] converts a schema-typed cord.Value into a plain
// Go value that [Marshal] can encode, using Core Deterministic
// Encoding (RFC 8949 §4.2) so the same logical data always produces
// identical bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec
