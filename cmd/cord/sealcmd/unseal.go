// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealcmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
	"github.com/cord-format/cord/lib/secret"
	"github.com/cord-format/cord/lib/seal"
)

type unsealParams struct {
	Key     string `flag:"key,k" desc:"path to the age private key file" default:""`
	Schema  string `flag:"schema,s" desc:"path to a YAML schema to decode the decrypted record as JSON" default:""`
	Compact bool   `flag:"compact,c" desc:"emit compact single-line JSON (with --schema)" default:"false"`
}

// UnsealCommand returns the "cord unseal" command.
func UnsealCommand() *cli.Command {
	var p unsealParams
	return &cli.Command{
		Name:    "unseal",
		Summary: "Decrypt a sealed record, optionally decoding it against a schema",
		Description: "Decrypts base64 ciphertext (a file argument or stdin) produced\n" +
			"by \"cord seal\" using the private key at --key. With --schema, the\n" +
			"decrypted canonical Cord bytes are decoded and printed as JSON;\n" +
			"without it, the raw decrypted bytes are written to stdout.",
		Usage: "cord unseal --key <file> [--schema <file>] [sealed.txt]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("unseal", &p)
		},
		Run: func(args []string) error {
			return runUnseal(&p, args, os.Stdout)
		},
	}
}

func runUnseal(p *unsealParams, args []string, w io.Writer) error {
	if p.Key == "" {
		return cli.Validation("missing --key").WithHint("pass the path to an age private key file")
	}

	privateKey, err := secret.ReadFromPath(p.Key)
	if err != nil {
		return cli.NotFound("reading private key %s: %v", p.Key, err)
	}
	defer privateKey.Close()

	ciphertext, _, err := ioutil.ReadInput(args, false)
	if err != nil {
		return cli.Internal("reading input: %v", err)
	}

	plaintext, err := seal.Decrypt(strings.TrimSpace(string(ciphertext)), privateKey)
	if err != nil {
		return cli.Validation("unsealing: %v", err)
	}
	defer plaintext.Close()

	if p.Schema == "" {
		_, err := w.Write(plaintext.Bytes())
		return err
	}

	schema, err := cord.LoadSchemaFile(p.Schema)
	if err != nil {
		return cli.NotFound("loading schema: %v", err)
	}
	value, err := cord.Decode(schema, plaintext.Bytes())
	if err != nil {
		return cli.Validation("decoding decrypted record against schema %q: %v", p.Schema, err)
	}
	asJSON, err := cord.ToJSONValue(schema, value)
	if err != nil {
		return cli.Internal("converting to JSON: %v", err)
	}

	encoder := json.NewEncoder(w)
	if !p.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(asJSON)
}
