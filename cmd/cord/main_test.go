// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/cord-format/cord/cmd/cord/cli"
)

// TestCommandTreeHasSummaries walks the full command tree and checks
// that every command, leaf or group, documents itself with a summary.
// A command with neither Run nor Subcommands is dead weight in the
// tree and would never be reachable from Execute.
func TestCommandTreeHasSummaries(t *testing.T) {
	root := rootCommand()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		if command.Summary == "" {
			t.Errorf("%s: missing Summary", strings.Join(path, " "))
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: has neither Run nor Subcommands", strings.Join(path, " "))
		}
	})
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
