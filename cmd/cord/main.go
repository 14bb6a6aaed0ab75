// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/cord-format/cord/cmd/cord/archive"
	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/decode"
	"github.com/cord-format/cord/cmd/cord/diag"
	"github.com/cord-format/cord/cmd/cord/digest"
	"github.com/cord-format/cord/cmd/cord/encode"
	"github.com/cord-format/cord/cmd/cord/schemacmd"
	"github.com/cord-format/cord/cmd/cord/sealcmd"
	"github.com/cord-format/cord/cmd/cord/validate"
	"github.com/cord-format/cord/cmd/cord/versioncmd"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like validate) return an
		// cli.ExitError with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "cord",
		Summary: "Encode, decode, and inspect Cord records",
		Description: `Cord is a deterministic binary serialization format: every value has
exactly one valid encoding, so byte-identical records are the norm,
not an aspiration.

Most subcommands take a --schema flag pointing at a YAML schema
descriptor and a trailing file argument (or stdin) for the record
itself.`,
		Subcommands: []*cli.Command{
			encode.Command(),
			decode.Command(),
			diag.Command(),
			validate.Command(),
			digest.Command(),
			sealcmd.SealCommand(),
			sealcmd.UnsealCommand(),
			archive.Command(),
			schemacmd.Command(),
			versioncmd.Command(),
		},
		Examples: []cli.Example{
			{
				Description: "Encode JSON to a canonical Cord record",
				Command:     "echo '{\"id\":1}' | cord encode --schema widget.yaml",
			},
			{
				Description: "Decode a Cord record to JSON",
				Command:     "cord decode --schema widget.yaml record.cord",
			},
			{
				Description: "Check that a record is canonical",
				Command:     "cord validate --schema widget.yaml record.cord",
			},
		},
	}
}
