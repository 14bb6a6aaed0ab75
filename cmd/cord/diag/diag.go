// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
	"github.com/cord-format/cord/lib/codec"
)

type params struct {
	Schema string `flag:"schema,s" desc:"path to a YAML schema descriptor" default:""`
	Hex    bool   `flag:"hex" desc:"treat input as hex-encoded binary" default:"false"`
}

// Command returns the "cord diag" command.
func Command() *cli.Command {
	var p params
	return &cli.Command{
		Name:    "diag",
		Summary: "Print a Cord record as CBOR diagnostic notation",
		Description: "Decodes canonical Cord binary (a file argument or stdin) against\n" +
			"a schema descriptor (--schema) and prints the result as CBOR\n" +
			"diagnostic notation (RFC 8949 §8), transcoding through lib/codec.",
		Usage: "cord diag --schema <file> [record.cord]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("diag", &p)
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

	value, err := cord.Decode(schema, data)
	if err != nil {
		return cli.Validation("decoding record against schema %q: %v", p.Schema, err)
	}

	asCBORValue, err := codec.ToCBOR(schema, value)
	if err != nil {
		return cli.Internal("converting to CBOR: %v", err)
	}

	cborData, err := codec.Marshal(asCBORValue)
	if err != nil {
		return cli.Internal("marshaling CBOR: %v", err)
	}

	diagnosis, err := codec.Diagnose(cborData)
	if err != nil {
		return cli.Internal("diagnosing CBOR: %v", err)
	}

	fmt.Fprintln(w, diagnosis)
	return nil
}
