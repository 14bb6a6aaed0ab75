// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package archive implements "cord archive pack", "cord archive
// unpack", and "cord archive list", wrapping lib/archive's
// multi-record container format.
package archive
