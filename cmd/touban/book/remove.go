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

type removeParams struct {
	cli.JSONOutput
	Book   string `flag:"book,b" desc:"ledger token"`
	Member string `flag:"member,m" desc:"name of the member to remove"`
}

// RemoveMemberCommand returns the "remove-member" command.
func RemoveMemberCommand() *cli.Command {
	var params removeParams
	return &cli.Command{
		Name:    "remove-member",
		Summary: "Remove a member and print the updated token",
		Description: `Remove a member from the ledger.

Name matching is exact. Removing the last member leaves an empty but
valid ledger; assign will refuse it until someone is added back.`,
		Usage: "touban remove-member --book TOKEN --member NAME",
		Examples: []cli.Example{
			{Command: "touban remove-member --book ぃすかてらか… --member ben"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("remove-member", &params) },
		Run: func(args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyColorMode(cfg.Output.Color)
			return runRemoveMember(os.Stdout, &params)
		},
	}
}

func runRemoveMember(w io.Writer, params *removeParams) error {
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
	if err := rotation.RemoveMember(book, params.Member); err != nil {
		return err
	}
	encoded, err := token.Encode(book)
	if err != nil {
		return err
	}

	cli.NewCommandLogger().Info("member removed",
		"command", "remove-member", "member", params.Member, "remaining", len(book.Members))

	if done, err := params.EmitJSON(newBookReport(book, encoded)); done {
		return err
	}

	fmt.Fprintf(w, "Removed %s.\n\n", nameStyle.Render(params.Member))
	writeToken(w, "Updated ledger token:", encoded)
	return nil
}
