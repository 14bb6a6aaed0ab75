// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ioutil

import (
	"fmt"
	"os"
)

// WriteOutput writes data to path, or to stdout when path is empty or "-".
func WriteOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
