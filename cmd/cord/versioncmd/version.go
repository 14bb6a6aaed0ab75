// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package versioncmd implements "cord version".
package versioncmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/lib/version"
)

type params struct {
	Full bool `flag:"full" desc:"print Go toolchain and platform details as well" default:"false"`
}

// Command returns the "cord version" command.
func Command() *cli.Command {
	var p params
	return &cli.Command{
		Name:    "version",
		Summary: "Print cord's build version",
		Usage:   "cord version [--full]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &p)
		},
		Run: func(args []string) error {
			return run(&p, os.Stdout)
		},
	}
}

func run(p *params, w io.Writer) error {
	if p.Full {
		fmt.Fprintln(w, version.Full())
		return nil
	}
	fmt.Fprintln(w, version.Info())
	return nil
}
