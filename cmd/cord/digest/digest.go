// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
	libdigest "github.com/cord-format/cord/lib/digest"
)

type params struct {
	Schema string `flag:"schema,s" desc:"path to a YAML schema descriptor" default:""`
	Hex    bool   `flag:"hex" desc:"treat input as hex-encoded binary" default:"false"`
}

// Command returns the "cord digest" command.
func Command() *cli.Command {
	var p params
	return &cli.Command{
		Name:    "digest",
		Summary: "Print the BLAKE3 digest of a record's canonical encoding",
		Description: "Decodes a record against a schema descriptor (--schema), then\n" +
			"prints the value-domain BLAKE3 digest of its canonical Cord\n" +
			"encoding. Decoding first (rather than hashing raw input bytes)\n" +
			"guarantees the digest always covers a canonical encoding.",
		Usage: "cord digest --schema <file> [record.cord]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("digest", &p)
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

	canonical, err := cord.Encode(schema, value)
	if err != nil {
		return cli.Internal("re-encoding: %v", err)
	}

	hash := libdigest.HashValue(canonical)
	fmt.Fprintln(w, libdigest.FormatHash(hash))
	return nil
}
