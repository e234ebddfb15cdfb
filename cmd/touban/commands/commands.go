// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete touban CLI command tree.
package commands

import (
	"fmt"

	"github.com/tobansho/touban/cmd/touban/book"
	"github.com/tobansho/touban/cmd/touban/cli"
	"github.com/tobansho/touban/lib/version"
)

// Root builds and returns the touban command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "touban",
		Description: `Touban: a duty rotation ledger that lives in a token.

All state travels inside a single string of kana that you paste back
into the next invocation. There are no files, no databases, and no
accounts: whoever holds the token holds the rotation.`,
		Subcommands: []*cli.Command{
			book.CreateCommand(),
			book.ShowCommand(),
			book.AssignCommand(),
			book.AddMemberCommand(),
			book.RemoveMemberCommand(),
			book.InspectCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("touban %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Start a rotation with two people on duty per round",
				Command:     `touban create --people 2 --members "akari,ben,chiyo,dmitri"`,
			},
			{
				Description: "See who has served how often",
				Command:     "touban show --book TOKEN",
			},
			{
				Description: "Run the next round and get the new token",
				Command:     "touban assign --book TOKEN",
			},
			{
				Description: "Grow the rotation without skewing it",
				Command:     "touban add-member --book TOKEN --member erika",
			},
		},
	}
}
