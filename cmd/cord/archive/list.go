// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/cord-format/cord/cmd/cord/cli"
	"github.com/cord-format/cord/cmd/cord/internal/ioutil"
	"github.com/cord-format/cord/lib/archive"
	"github.com/cord-format/cord/lib/digest"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Summary: "List the records in a container with sizes and a combined digest",
		Description: "Reads a container (a file argument or stdin) and prints one\n" +
			"line per record with its decompressed size, plus the\n" +
			"container-wide Merkle digest over all records.",
		Usage: "cord archive list [container.cordpack]",
		Run: func(args []string) error {
			return runList(args, os.Stdout)
		},
	}
}

func runList(args []string, w io.Writer) error {
	data, _, err := ioutil.ReadInput(args, false)
	if err != nil {
		return cli.Internal("reading input: %v", err)
	}

	records, err := archive.Unpack(bytes.NewReader(data))
	if err != nil {
		return cli.Validation("unpacking container: %v", err)
	}

	for i, record := range records {
		fmt.Fprintf(w, "record-%d: %s\n", i, humanize.Bytes(uint64(len(record))))
	}
	fmt.Fprintf(w, "digest: %s\n", digest.FormatHash(archive.RecordsDigest(records)))
	return nil
}
