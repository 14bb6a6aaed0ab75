// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package encode

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
)

type params struct {
	Schema string `flag:"schema,s" desc:"path to a YAML schema descriptor" default:""`
	Out    string `flag:"out,o" desc:"output file for the binary encoding (default: stdout)" default:""`
	Hex    bool   `flag:"hex" desc:"print hex instead of raw binary" default:"false"`
}

// Command returns the "cord encode" command.
func Command() *cli.Command {
	var p params
	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a JSON record into canonical Cord binary",
		Description: "Reads a JSON value (a file argument or stdin) and a schema\n" +
			"descriptor (--schema), and writes the record's canonical Cord\n" +
			"binary encoding.",
		Usage: "cord encode --schema <file> [input.json]",
		Examples: []cli.Example{
			{Description: "encode a record described by widget.yaml", Command: "cord encode --schema widget.yaml record.json > record.cord"},
			{Description: "encode from stdin, print hex", Command: "echo '{\"id\":1}' | cord encode --schema widget.yaml --hex"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("encode", &p)
		},
		Run: func(args []string) error {
			return run(&p, args)
		},
	}
}

func run(p *params, args []string) error {
	if p.Schema == "" {
		return cli.Validation("missing --schema").WithHint("pass the path to a YAML schema descriptor")
	}
	schema, err := cord.LoadSchemaFile(p.Schema)
	if err != nil {
		return cli.NotFound("loading schema: %v", err)
	}

	data, _, err := ioutil.ReadInput(args, false)
	if err != nil {
		return cli.Internal("reading input: %v", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return cli.Validation("parsing JSON input: %v", err)
	}

	value, err := cord.FromJSONValue(schema, raw)
	if err != nil {
		return cli.Validation("converting JSON to schema %q: %v", p.Schema, err)
	}

	encoded, err := cord.Encode(schema, value)
	if err != nil {
		return cli.Internal("encoding: %v", err)
	}

	if p.Hex {
		encoded = []byte(hex.EncodeToString(encoded) + "\n")
	}
	if err := ioutil.WriteOutput(p.Out, encoded); err != nil {
		return cli.Internal("writing output: %v", err)
	}
	return nil
}
