// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tobansho/touban/cmd/touban/cli"
	"github.com/tobansho/touban/lib/config"
	"github.com/tobansho/touban/lib/ledger"
	"github.com/tobansho/touban/lib/token"
)

type createParams struct {
	cli.JSONOutput
	People   int    `flag:"people,p" desc:"members drawn each round (0 = config default)"`
	Interval int    `flag:"interval,i" desc:"advisory days between rounds" default:"-1"`
	Members  string `flag:"members,m" desc:"comma-separated member names"`
}

// CreateCommand returns the "create" command, which mints a fresh
// ledger token from nothing but flags.
func CreateCommand() *cli.Command {
	var params createParams
	return &cli.Command{
		Name:    "create",
		Summary: "Create a new duty ledger and print its token",
		Description: `Create a new duty ledger.

The ledger is returned as a kana token on stdout; there is no other
storage. Members all start with a duty count of zero. --people and
--interval fall back to the configured defaults when omitted.`,
		Usage: "touban create [--people N] [--interval DAYS] [--members NAMES]",
		Examples: []cli.Example{
			{
				Description: "Two on duty per round, rotating among four members",
				Command:     `touban create --people 2 --members "akari,ben,chiyo,dmitri"`,
			},
			{
				Description: "An empty ledger to populate with add-member later",
				Command:     "touban create --people 1",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("create", &params) },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("create takes no positional arguments (got %q)", args[0])
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyColorMode(cfg.Output.Color)
			return runCreate(os.Stdout, cfg, &params)
		},
	}
}

func runCreate(w io.Writer, cfg *config.Config, params *createParams) error {
	people := params.People
	if people == 0 {
		people = cfg.Defaults.People
	}
	interval := params.Interval
	if interval < 0 {
		interval = cfg.Defaults.Interval
	}

	book, err := ledger.New(people, interval, splitMembers(params.Members))
	if err != nil {
		return err
	}
	encoded, err := token.Encode(book)
	if err != nil {
		return err
	}

	cli.NewCommandLogger().Info("ledger created",
		"command", "create", "people", book.People, "members", len(book.Members))

	if done, err := params.EmitJSON(newBookReport(book, encoded)); done {
		return err
	}

	fmt.Fprintln(w, headingStyle.Render("New duty ledger"))
	writeBook(w, book)
	fmt.Fprintln(w)
	writeToken(w, "Ledger token:", encoded)
	return nil
}

// splitMembers parses the --members value: comma-separated names,
// surrounding whitespace trimmed, empty entries dropped. Duplicate
// detection is left to ledger.New.
func splitMembers(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
