// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package diag implements "cord diag", which decodes canonical Cord
// binary against a schema and prints it as CBOR diagnostic notation
// (RFC 8949 §8) for quick visual inspection.
package diag
