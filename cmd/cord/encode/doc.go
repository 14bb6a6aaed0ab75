// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package encode implements "cord encode", which reads a JSON record
// and a schema descriptor and writes the record's canonical Cord
// binary encoding.
package encode
