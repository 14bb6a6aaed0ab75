// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Cord is the command-line tool for working with the Cord deterministic
// binary serialization format. It encodes and decodes records against
// YAML schema descriptors, inspects records via CBOR diagnostic
// notation, validates that a record is the unique canonical encoding
// of its value, computes BLAKE3 digests, seals and unseals records for
// a set of age recipients, and packs or unpacks multi-record
// containers.
package main
