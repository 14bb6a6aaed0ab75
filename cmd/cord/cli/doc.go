// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the cord binary.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory built
// from a tagged parameter struct (see [FlagsFromParams]), and a Run
// function. Commands are assembled into a tree in cmd/cord/main.go and
// dispatched via [Command.Execute], which handles flag parsing, subcommand
// routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match.
//
// Command handlers return [*ToolError] for expected failure modes
// (malformed input, schema mismatches) so that main.go can format a
// consistent "error: ..." line without a stack trace, while unexpected
// errors still propagate with their full chain intact.
package cli
