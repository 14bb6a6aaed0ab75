// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package archive frames many canonical Cord-encoded records into a
// single container: a length-prefixed, optionally compressed,
// optionally content-addressed sequence of records, analogous to how
// a tar file frames opaque payloads without describing their internal
// structure.
//
// Cord's wire format deliberately carries no self-description — a
// decoder needs the schema out of band (see
// [github.com/cord-format/cord/lib/cord]'s package doc). archive's
// framing is a thin layer above that: each record header carries only
// a varint length, a one-byte [CompressionTag], and the record's
// uncompressed size, never a schema. Callers that need to identify a
// record's shape embed that information inside the record itself (an
// enum discriminant, a leading type tag field) rather than relying on
// the container.
//
// [Pack] writes a sequence of record payloads to an io.Writer. [Unpack]
// reads them back in order. [PackWithDigest] additionally returns a
// [github.com/cord-format/cord/lib/digest.Hash] Merkle root over every
// record's chunk hash, suitable for a manifest or a signature.
package archive
