// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cord-format/cord/lib/cord"
)

func writeTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	return path
}

func TestRun_ValidCanonicalRecord(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "id.yaml", []byte("kind: uint\nwidth: 64\n"))
	encoded, err := cord.Encode(cord.Uint(64), cord.NewUint(300))
	if err != nil {
		t.Fatalf("cord.Encode: %v", err)
	}
	recordPath := writeTempFile(t, dir, "record.cord", encoded)

	var out bytes.Buffer
	if err := run(&params{Schema: schemaPath}, []string{recordPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out.String()) != "valid" {
		t.Fatalf("output = %q, want \"valid\"", out.String())
	}
}

func TestRun_NonCanonicalVarintRejected(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "id.yaml", []byte("kind: uint\nwidth: 64\n"))
	// A non-canonical three-byte varint encoding of 300 (a continuation
	// bit leading to a final 0x00 byte that contributes no value).
	recordPath := writeTempFile(t, dir, "record.cord", []byte{0xAC, 0x82, 0x00})

	var out bytes.Buffer
	err := run(&params{Schema: schemaPath}, []string{recordPath}, &out)
	if err == nil {
		t.Fatal("run on a non-canonical varint succeeded, want an ExitError")
	}
	exitErr, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatalf("run error = %T, want an ExitError", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("ExitCode() = %d, want 1", exitErr.ExitCode())
	}
}

func TestRun_EmptyInputRejected(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "id.yaml", []byte("kind: bool\n"))
	recordPath := writeTempFile(t, dir, "record.cord", []byte{})

	var out bytes.Buffer
	if err := run(&params{Schema: schemaPath}, []string{recordPath}, &out); err == nil {
		t.Fatal("run on empty input succeeded, want an error")
	}
}
