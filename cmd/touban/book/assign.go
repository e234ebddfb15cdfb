// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/tobansho/touban/cmd/touban/cli"
	"github.com/tobansho/touban/lib/config"
	"github.com/tobansho/touban/lib/rotation"
	"github.com/tobansho/touban/lib/shuffle"
	"github.com/tobansho/touban/lib/token"
)

type assignParams struct {
	cli.JSONOutput
	Book string `flag:"book,b" desc:"ledger token"`
	Seed string `flag:"seed,s" desc:"deterministic shuffle seed (unsigned integer)"`
}

// AssignCommand returns the "assign" command, the one that actually
// runs a duty round.
func AssignCommand() *cli.Command {
	var params assignParams
	return &cli.Command{
		Name:    "assign",
		Summary: "Pick the next duty group and print the updated token",
		Description: `Run one duty round: pick up to the configured number of people from
the members who have served the fewest rounds, ties broken at random,
and print the updated ledger token.

With --seed the shuffle is deterministic: the same token and seed
always produce the same selection. Without it each run draws fresh
randomness.`,
		Usage: "touban assign --book TOKEN [--seed N]",
		Examples: []cli.Example{
			{Command: "touban assign --book ぃすかてらか…"},
			{Description: "Reproducible draw for a scheduled job", Command: "touban assign --book ぃすかてらか… --seed 20260823"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("assign", &params) },
		Run: func(args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyColorMode(cfg.Output.Color)
			return runAssign(os.Stdout, &params)
		},
	}
}

func runAssign(w io.Writer, params *assignParams) error {
	if params.Book == "" {
		return fmt.Errorf("--book is required")
	}
	shuffler, err := shufflerFor(params.Seed)
	if err != nil {
		return err
	}

	book, err := token.Decode(params.Book)
	if err != nil {
		return err
	}
	assignment, err := rotation.Assign(book, shuffler)
	if err != nil {
		return err
	}
	encoded, err := token.Encode(book)
	if err != nil {
		return err
	}

	cli.NewCommandLogger().Info("round assigned",
		"command", "assign", "selected", len(assignment.Selected), "reset", assignment.Reset)

	if done, err := params.EmitJSON(assignReport{
		Reset:    assignment.Reset,
		Selected: memberReports(assignment.Selected),
		Token:    encoded,
	}); done {
		return err
	}

	if assignment.Reset {
		fmt.Fprintln(w, noticeStyle.Render("Full cycle complete; all counts reset to zero."))
	}
	fmt.Fprintln(w, headingStyle.Render("On duty this round:"))
	for _, member := range assignment.Selected {
		fmt.Fprintf(w, "  - %s (%d served)\n", nameStyle.Render(member.Name), member.Count)
	}
	fmt.Fprintln(w)
	writeToken(w, "Updated ledger token:", encoded)
	return nil
}

// shufflerFor maps the --seed flag to a shuffler: empty means fresh
// entropy, anything else must be an unsigned 64-bit integer.
func shufflerFor(seed string) (shuffle.Shuffler, error) {
	if seed == "" {
		return shuffle.Random(), nil
	}
	value, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --seed %q: must be an unsigned integer", seed)
	}
	return shuffle.Seeded(value), nil
}
