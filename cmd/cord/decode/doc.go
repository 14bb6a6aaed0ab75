// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package decode implements "cord decode", which reads canonical Cord
// binary and a schema descriptor and writes the record as JSON.
package decode
