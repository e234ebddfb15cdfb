// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/tobansho/touban/cmd/touban/cli"
	"github.com/tobansho/touban/lib/codec"
	"github.com/tobansho/touban/lib/config"
	"github.com/tobansho/touban/lib/token"
)

type inspectParams struct {
	cli.JSONOutput
	Book string `flag:"book,b" desc:"ledger token"`
}

// InspectCommand returns the "inspect" command, a debugging aid that
// peels the kana and base64 layers and prints the raw CBOR payload in
// diagnostic notation. Unlike show it does not require the payload to
// match the current ledger schema.
func InspectCommand() *cli.Command {
	var params inspectParams
	return &cli.Command{
		Name:    "inspect",
		Summary: "Show a token's raw payload in CBOR diagnostic notation",
		Description: `Decode only the outer token layers and print the payload as CBOR
diagnostic notation (RFC 8949). Useful for debugging tokens that show
rejects, such as ones written by a different schema version.`,
		Usage: "touban inspect --book TOKEN",
		Examples: []cli.Example{
			{Command: "touban inspect --book ぃすかてらか…"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("inspect", &params) },
		Run: func(args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyColorMode(cfg.Output.Color)
			return runInspect(os.Stdout, &params)
		},
	}
}

type inspectReport struct {
	Diagnostic   string `json:"diagnostic"`
	PayloadBytes int    `json:"payload_bytes"`
	TokenRunes   int    `json:"token_runes"`
}

func runInspect(w io.Writer, params *inspectParams) error {
	if params.Book == "" {
		return fmt.Errorf("--book is required")
	}
	payload, err := token.Payload(params.Book)
	if err != nil {
		return err
	}
	notation, err := codec.Diagnose(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", token.ErrMalformed, err)
	}

	report := inspectReport{
		Diagnostic:   notation,
		PayloadBytes: len(payload),
		TokenRunes:   utf8.RuneCountInString(params.Book),
	}
	if done, err := params.EmitJSON(report); done {
		return err
	}

	fmt.Fprintf(w, "%s %d runes, %d payload bytes\n",
		labelStyle.Render("token:"), report.TokenRunes, report.PayloadBytes)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("cbor: "), notation)
	return nil
}
