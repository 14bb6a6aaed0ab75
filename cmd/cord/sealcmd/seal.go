// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealcmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/cord"
	"github.com/cord-format/cord/lib/seal"
)

type sealParams struct {
	Schema      string   `flag:"schema,s" desc:"path to a YAML schema descriptor" default:""`
	Recipients  []string `flag:"recipient,r" desc:"age public key of a recipient (repeatable)" default:""`
	GenerateKey string   `flag:"generate-key" desc:"write a new age keypair's private key to this path, print the public key, and exit" default:""`
}

// SealCommand returns the "cord seal" command.
func SealCommand() *cli.Command {
	var p sealParams
	return &cli.Command{
		Name:    "seal",
		Summary: "Encrypt a record's canonical Cord encoding for one or more recipients",
		Description: "Encodes a record against a schema descriptor (--schema) and\n" +
			"encrypts the canonical Cord bytes to one or more age recipients\n" +
			"(--recipient), writing base64 ciphertext to stdout.\n\n" +
			"With --generate-key, writes a new age keypair instead: the\n" +
			"private key to the given path and the public key to stdout.",
		Usage: "cord seal --schema <file> --recipient <age1...> [record.json]",
		Examples: []cli.Example{
			{Description: "generate a keypair", Command: "cord seal --generate-key mykey.txt"},
			{Description: "seal a record to one recipient", Command: "cord seal --schema widget.yaml --recipient age1... record.json"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("seal", &p)
		},
		Run: func(args []string) error {
			return runSeal(&p, args, os.Stdout)
		},
	}
}

func runSeal(p *sealParams, args []string, w io.Writer) error {
	if p.GenerateKey != "" {
		return generateKey(p.GenerateKey, w)
	}

	if p.Schema == "" {
		return cli.Validation("missing --schema").WithHint("pass the path to a YAML schema descriptor")
	}
	if len(p.Recipients) == 0 {
		return cli.Validation("missing --recipient").WithHint("pass at least one age public key with --recipient")
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

	ciphertext, err := seal.Encrypt(encoded, p.Recipients)
	if err != nil {
		return cli.Validation("sealing: %v", err)
	}

	fmt.Fprintln(w, ciphertext)
	return nil
}

func generateKey(path string, w io.Writer) error {
	keypair, err := seal.GenerateKeypair()
	if err != nil {
		return cli.Internal("generating keypair: %v", err)
	}
	defer keypair.Close()

	if err := os.WriteFile(path, keypair.PrivateKey.Bytes(), 0o600); err != nil {
		return cli.Internal("writing private key to %s: %v", path, err)
	}

	fmt.Fprintln(w, keypair.PublicKey)
	return nil
}
