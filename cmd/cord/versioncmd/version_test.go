// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package versioncmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_PrintsShortInfoByDefault(t *testing.T) {
	var out bytes.Buffer
	if err := run(&params{}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "Go:") {
		t.Fatalf("short output %q should not include Go toolchain details", out.String())
	}
}

func TestRun_FullIncludesPlatform(t *testing.T) {
	var out bytes.Buffer
	if err := run(&params{Full: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Go:") {
		t.Fatalf("full output %q should include Go toolchain details", out.String())
	}
}
