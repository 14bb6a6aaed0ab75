// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"github.com/cord-format/cord/cmd/cord/cli"
)

// Command returns the "cord archive" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:        "archive",
		Summary:     "Pack and unpack multi-record Cord containers",
		Description: "Frames one or more records into a single compressed, digest-backed container, or unpacks one back into its records.",
		Subcommands: []*cli.Command{
			packCommand(),
			unpackCommand(),
			listCommand(),
		},
	}
}
