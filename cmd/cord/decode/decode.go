// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
)

type params struct {
	Schema  string `flag:"schema,s" desc:"path to a YAML schema descriptor" default:""`
	Hex     bool   `flag:"hex" desc:"treat input as hex-encoded binary" default:"false"`
	Compact bool   `flag:"compact,c" desc:"emit compact single-line JSON" default:"false"`
}

// Command returns the "cord decode" command.
func Command() *cli.Command {
	var p params
	return &cli.Command{
		Name:    "decode",
		Summary: "Decode canonical Cord binary into JSON",
		Description: "Reads canonical Cord binary (a file argument or stdin) and a\n" +
			"schema descriptor (--schema), and writes the record as JSON.",
		Usage: "cord decode --schema <file> [record.cord]",
		Examples: []cli.Example{
			{Description: "decode a record described by widget.yaml", Command: "cord decode --schema widget.yaml record.cord"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &p)
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

	asJSON, err := cord.ToJSONValue(schema, value)
	if err != nil {
		return cli.Internal("converting to JSON: %v", err)
	}

	encoder := json.NewEncoder(w)
	if !p.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(asJSON); err != nil {
		return cli.Internal("writing JSON output: %v", err)
	}
	return nil
}
