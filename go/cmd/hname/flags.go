// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"go/token"

	"github.com/urfave/cli/v2"
)

type goFlagType struct {
	cli.BoolFlag
}

var GoFlag = &goFlagType{
	cli.BoolFlag{
		Name:  "go",
		Usage: "emit Go constant declarations instead of a plain listing",
	},
}

func (f *goFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type packageFlagType struct {
	cli.StringFlag
}

var PackageFlag = &packageFlagType{
	cli.StringFlag{
		Name:    "package",
		Aliases: []string{"p"},
		Usage:   "package name of the emitted Go file",
		Value:   "main",
	},
}

func (f *packageFlagType) Fetch(context *cli.Context) (string, error) {
	name := context.String(f.Name)
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("invalid package name %q", name)
	}
	return name, nil
}

type outputFlagType struct {
	cli.StringFlag
}

var OutputFlag = &outputFlagType{
	cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Usage:     "write to the provided filename instead of stdout",
		TakesFile: true,
	},
}

func (f *outputFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}
