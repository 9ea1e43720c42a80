// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Command hname computes the hnames of entry point, contract, and interface
// names. With --go, it emits the hnames as Go constants to be checked into
// a contract's source tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "hname",
		Usage:     "compute the hnames of the given names",
		ArgsUsage: "name...",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			GoFlag,
			PackageFlag,
			OutputFlag,
		},
		Action: doHname,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func doHname(context *cli.Context) error {
	names := context.Args().Slice()
	if len(names) == 0 {
		return fmt.Errorf("no names given")
	}

	write := func(out io.Writer) error {
		return writeListing(out, names)
	}
	if GoFlag.Fetch(context) {
		pkg, err := PackageFlag.Fetch(context)
		if err != nil {
			return err
		}
		write = func(out io.Writer) error {
			return writeGo(out, pkg, names)
		}
	}

	filename := OutputFlag.Fetch(context)
	if filename == "" {
		return write(os.Stdout)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	return writeAndClose(file, write)
}

// writeAndClose runs write on the given output and closes it, reporting
// the first error encountered.
func writeAndClose(out io.WriteCloser, write func(io.Writer) error) error {
	err := write(out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("could not close output file: %w", closeErr)
	}
	return err
}
