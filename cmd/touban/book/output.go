// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tobansho/touban/lib/config"
	"github.com/tobansho/touban/lib/ledger"
)

// Report styles. The profile set by applyColorMode decides whether
// these actually emit escape sequences.
var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// applyColorMode pins the lipgloss color profile according to the
// output.color config value. Auto mode keeps color for interactive
// terminals and drops it for pipes and NO_COLOR environments, so
// tokens stay copy-pasteable from scripts.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if termenv.EnvNoColor() || !term.IsTerminal(int(os.Stdout.Fd())) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// writeBook renders the ledger summary: parameters first, then the
// member list in book order.
func writeBook(w io.Writer, b *ledger.Book) {
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("people:  "), b.People)
	fmt.Fprintf(w, "  %s %d days\n", labelStyle.Render("interval:"), b.Interval)
	if len(b.Members) == 0 {
		fmt.Fprintf(w, "  %s none\n", labelStyle.Render("members: "))
		return
	}
	fmt.Fprintf(w, "  %s\n", labelStyle.Render("members:"))
	for _, member := range b.Members {
		fmt.Fprintf(w, "    - %s (%d served)\n", nameStyle.Render(member.Name), member.Count)
	}
}

// writeToken prints a heading followed by the token on its own line,
// with nothing else on it, so it can be selected with a triple-click.
func writeToken(w io.Writer, heading, encoded string) {
	fmt.Fprintf(w, "%s\n%s\n", headingStyle.Render(heading), tokenStyle.Render(encoded))
}
