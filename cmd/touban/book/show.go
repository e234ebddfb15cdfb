// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/tobansho/touban/cmd/touban/cli"
	"github.com/tobansho/touban/lib/config"
	"github.com/tobansho/touban/lib/token"
)

type showParams struct {
	cli.JSONOutput
	Book string `flag:"book,b" desc:"ledger token"`
}

// ShowCommand returns the "show" command, a read-only decode of a
// ledger token.
func ShowCommand() *cli.Command {
	var params showParams
	return &cli.Command{
		Name:    "show",
		Summary: "Decode a ledger token and print its contents",
		Description: `Decode a ledger token and print its parameters and members.

Show never re-encodes: the token you passed in stays the current one.`,
		Usage: "touban show --book TOKEN",
		Examples: []cli.Example{
			{Command: "touban show --book ぃすかてらか…"},
			{Description: "Machine-readable form for scripts", Command: "touban show --book ぃすかてらか… --json"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("show", &params) },
		Run: func(args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyColorMode(cfg.Output.Color)
			return runShow(os.Stdout, &params)
		},
	}
}

func runShow(w io.Writer, params *showParams) error {
	if params.Book == "" {
		return fmt.Errorf("--book is required")
	}
	book, err := token.Decode(params.Book)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(newBookReport(book, "")); done {
		return err
	}

	fmt.Fprintln(w, headingStyle.Render("Duty ledger"))
	writeBook(w, book)
	return nil
}
