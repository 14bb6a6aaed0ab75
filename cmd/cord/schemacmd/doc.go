// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schemacmd implements "cord schema describe", which loads a
// YAML schema descriptor and prints a human-readable tree of its
// shape.
package schemacmd
