// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest implements "cord digest", which prints the
// value-domain BLAKE3 digest of a record's canonical encoding.
package digest
