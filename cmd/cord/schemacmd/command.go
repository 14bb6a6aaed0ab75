// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schemacmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/lib/cord"
)

// Command returns the "cord schema" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "schema",
		Summary: "Inspect YAML schema descriptors",
		Subcommands: []*cli.Command{
			describeCommand(),
		},
	}
}

func describeCommand() *cli.Command {
	return &cli.Command{
		Name:    "describe",
		Summary: "Print a schema descriptor as a human-readable tree",
		Usage:   "cord schema describe <schema.yaml>",
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("describe takes exactly one schema file argument")
			}
			return runDescribe(args[0], os.Stdout)
		},
	}
}

func runDescribe(path string, w io.Writer) error {
	schema, err := cord.LoadSchemaFile(path)
	if err != nil {
		return cli.NotFound("loading schema: %v", err)
	}
	describe(w, schema, "", 0)
	return nil
}

func describe(w io.Writer, schema *cord.Schema, label string, depth int) {
	indent := strings.Repeat("  ", depth)
	prefix := ""
	if label != "" {
		prefix = label + ": "
	}

	switch schema.Kind {
	case cord.KindUint, cord.KindInt:
		fmt.Fprintf(w, "%s%s%s(%d)\n", indent, prefix, schema.Kind, schema.Width)
	case cord.KindOptional, cord.KindSeq, cord.KindSet:
		fmt.Fprintf(w, "%s%s%s\n", indent, prefix, schema.Kind)
		describe(w, schema.Elem, "", depth+1)
	case cord.KindTuple:
		fmt.Fprintf(w, "%s%stuple\n", indent, prefix)
		for i, field := range schema.Fields {
			describe(w, field.Schema, fmt.Sprintf("%d", i), depth+1)
		}
	case cord.KindStruct:
		fmt.Fprintf(w, "%s%sstruct\n", indent, prefix)
		for _, field := range schema.Fields {
			describe(w, field.Schema, field.Name, depth+1)
		}
	case cord.KindEnum:
		fmt.Fprintf(w, "%s%senum\n", indent, prefix)
		for _, variant := range schema.Variants {
			if variant.Payload == nil {
				fmt.Fprintf(w, "%s  %s\n", indent, variant.Name)
				continue
			}
			describe(w, variant.Payload, variant.Name, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%s%s\n", indent, prefix, schema.Kind)
	}
}
