// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate implements "cord validate", which checks whether a
// binary record is the canonical Cord encoding of its schema.
package validate
