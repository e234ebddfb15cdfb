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
	"github.com/tobansho/touban/lib/rotation"
	"github.com/tobansho/touban/lib/token"
)

type addParams struct {
	cli.JSONOutput
	Book   string `flag:"book,b" desc:"ledger token"`
	Member string `flag:"member,m" desc:"name of the member to add"`
}

// AddMemberCommand returns the "add-member" command.
func AddMemberCommand() *cli.Command {
	var params addParams
	return &cli.Command{
		Name:    "add-member",
		Summary: "Add a member and print the updated token",
		Description: `Add a member to the ledger.

The newcomer starts at the rounded mean of the existing counts, so
they are neither first in line for every round nor exempt until the
next reset. On any error the old token remains valid.`,
		Usage: "touban add-member --book TOKEN --member NAME",
		Examples: []cli.Example{
			{Command: "touban add-member --book ぃすかてらか… --member erika"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("add-member", &params) },
		Run: func(args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyColorMode(cfg.Output.Color)
			return runAddMember(os.Stdout, &params)
		},
	}
}

func runAddMember(w io.Writer, params *addParams) error {
	if params.Book == "" {
		return fmt.Errorf("--book is required")
	}
	if params.Member == "" {
		return fmt.Errorf("--member is required")
	}

	book, err := token.Decode(params.Book)
	if err != nil {
		return err
	}
	if err := rotation.AddMember(book, params.Member); err != nil {
		return err
	}
	encoded, err := token.Encode(book)
	if err != nil {
		return err
	}

	added := book.Members[len(book.Members)-1]
	cli.NewCommandLogger().Info("member added",
		"command", "add-member", "member", added.Name, "count", added.Count)

	if done, err := params.EmitJSON(newBookReport(book, encoded)); done {
		return err
	}

	fmt.Fprintf(w, "Added %s with a starting count of %d.\n\n",
		nameStyle.Render(added.Name), added.Count)
	writeToken(w, "Updated ledger token:", encoded)
	return nil
}
