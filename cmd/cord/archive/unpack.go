// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/archive"
)

type unpackParams struct {
	OutDir string `flag:"out-dir,d" desc:"directory to write each unpacked record into, named record-0, record-1, ..." default:"."`
}

func unpackCommand() *cli.Command {
	var p unpackParams
	return &cli.Command{
		Name:    "unpack",
		Summary: "Extract the records from a container",
		Description: "Reads a container (a file argument or stdin) and writes each\n" +
			"record to --out-dir as record-<index>, decompressing as needed.",
		Usage: "cord archive unpack [--out-dir dir] [container.cordpack]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("archive-unpack", &p)
		},
		Run: func(args []string) error {
			return runUnpack(&p, args)
		},
	}
}

func runUnpack(p *unpackParams, args []string) error {
	data, _, err := ioutil.ReadInput(args, false)
	if err != nil {
		return cli.Internal("reading input: %v", err)
	}

	records, err := archive.Unpack(bytes.NewReader(data))
	if err != nil {
		return cli.Validation("unpacking container: %v", err)
	}

	if err := os.MkdirAll(p.OutDir, 0o755); err != nil {
		return cli.Internal("creating %s: %v", p.OutDir, err)
	}

	for i, record := range records {
		path := filepath.Join(p.OutDir, fmt.Sprintf("record-%d", i))
		if err := os.WriteFile(path, record, 0o644); err != nil {
			return cli.Internal("writing %s: %v", path, err)
		}
	}
	return nil
}
