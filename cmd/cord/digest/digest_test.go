// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cord-format/cord/lib/cord"
	libdigest "github.com/cord-format/cord/lib/digest"
)

func TestRun_PrintsValueDomainHash(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "flag.yaml")
	if err := os.WriteFile(schemaPath, []byte("kind: bool\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	encoded, err := cord.Encode(cord.Bool(), cord.NewBool(true))
	if err != nil {
		t.Fatalf("cord.Encode: %v", err)
	}
	recordPath := filepath.Join(dir, "record.cord")
	if err := os.WriteFile(recordPath, encoded, 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	var out bytes.Buffer
	if err := run(&params{Schema: schemaPath}, []string{recordPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := libdigest.FormatHash(libdigest.HashValue(encoded))
	if got := strings.TrimSpace(out.String()); got != want {
		t.Fatalf("digest = %q, want %q", got, want)
	}
}

func TestRun_MissingSchemaRejected(t *testing.T) {
	var out bytes.Buffer
	if err := run(&params{}, nil, &out); err == nil {
		t.Fatal("run with no --schema succeeded, want an error")
	}
}
