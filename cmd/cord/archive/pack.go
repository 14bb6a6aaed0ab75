// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/lib/archive"
	"github.com/cord-format/cord/lib/digest"
)

type packParams struct {
	Out string `flag:"out,o" desc:"output container file (default: stdout)" default:""`
}

func packCommand() *cli.Command {
	var p packParams
	return &cli.Command{
		Name:    "pack",
		Summary: "Frame one or more record files into a container",
		Description: "Reads each file argument as one opaque record, compresses it\n" +
			"when that shrinks it, and writes a single framed container to\n" +
			"--out (or stdout). Prints a byte-count summary per record to\n" +
			"stderr so progress is visible even when stdout is redirected.",
		Usage: "cord archive pack [--out container.cordpack] record1 [record2 ...]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("archive-pack", &p)
		},
		Run: func(args []string) error {
			return runPack(&p, args, os.Stderr)
		},
	}
}

func runPack(p *packParams, args []string, statusOut io.Writer) error {
	if len(args) == 0 {
		return cli.Validation("pack requires at least one record file argument")
	}

	records := make([][]byte, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return cli.NotFound("reading record %s: %v", path, err)
		}
		records[i] = data
	}

	var buf bytes.Buffer
	root, err := archive.PackWithDigest(&buf, records)
	if err != nil {
		return cli.Internal("packing: %v", err)
	}

	for i, path := range args {
		fmt.Fprintf(statusOut, "%s: %s\n", path, humanize.Bytes(uint64(len(records[i]))))
	}
	fmt.Fprintf(statusOut, "container: %s (%d records, digest %s)\n",
		humanize.Bytes(uint64(buf.Len())), len(records), digest.FormatHash(root))

	if p.Out == "" || p.Out == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(p.Out, buf.Bytes(), 0o644); err != nil {
		return cli.Internal("writing %s: %v", p.Out, err)
	}
	return nil
}
