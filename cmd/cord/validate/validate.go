// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
)

type params struct {
	Schema string `flag:"schema,s" desc:"path to a YAML schema descriptor" default:""`
	Hex    bool   `flag:"hex" desc:"treat input as hex-encoded binary" default:"false"`
}

// Command returns the "cord validate" command.
func Command() *cli.Command {
	var p params
	return &cli.Command{
		Name:    "validate",
		Summary: "Check whether a record is canonical Cord binary",
		Description: "Decodes a record against a schema descriptor (--schema) and\n" +
			"re-encodes it, comparing bytes. Prints \"valid\" and exits 0 when\n" +
			"the input is the unique canonical encoding; otherwise prints a\n" +
			"diagnostic and exits 1.",
		Usage: "cord validate --schema <file> [record.cord]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("validate", &p)
		},
		Run: func(args []string) error {
			return run(&p, args, os.Stdout)
		},
	}
}

func run(p *params, args []string, w io.Writer) error {
	if p.Schema == "" {
		return cli.Validation("missing --schema").WithHint("pass the path to a YAML schema descriptor")
	}
	schema, err := cord.LoadSchemaFile(p.Schema)
	if err != nil {
		return cli.NotFound("loading schema: %v", err)
	}

	data, _, err := ioutil.ReadInput(args, p.Hex)
	if err != nil {
		return cli.Internal("reading input: %v", err)
	}
	if len(data) == 0 {
		return cli.Validation("empty input: expected Cord binary")
	}

	value, err := cord.Decode(schema, data)
	if err != nil {
		fmt.Fprintf(w, "not valid: %v\n", err)
		return &cli.ExitError{Code: 1}
	}

	reencoded, err := cord.Encode(schema, value)
	if err != nil {
		return cli.Internal("re-encoding for comparison: %v", err)
	}

	if bytes.Equal(data, reencoded) {
		fmt.Fprintln(w, "valid")
		return nil
	}

	fmt.Fprintln(w, describeMismatch(data, reencoded))
	return &cli.ExitError{Code: 1}
}

func describeMismatch(original, reencoded []byte) string {
	offset := 0
	minLength := min(len(reencoded), len(original))
	for offset < minLength && original[offset] == reencoded[offset] {
		offset++
	}
	return fmt.Sprintf("not valid: first difference at byte %d (input %d bytes, canonical re-encoding %d bytes)",
		offset, len(original), len(reencoded))
}
