// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealcmd implements "cord seal" and "cord unseal", which
// wrap lib/seal's age encryption of a record's canonical Cord
// encoding for storage or transmission alongside unencrypted data.
package sealcmd
