// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"

	"github.com/tobansho/touban/cmd/touban/cli"
)

// TestCommandTreeShape walks the full command tree and validates that
// every command is either a runnable leaf or a group, never neither,
// and that every command except the root carries a Summary for the
// parent's help listing.
func TestCommandTreeShape(t *testing.T) {
	walkCommands(Root(), nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands", name)
		}
		if command.Run != nil && len(command.Subcommands) > 0 {
			t.Errorf("%s: both Run and Subcommands", name)
		}
		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing Summary", name)
		}
	})
}

func TestCommandTreeNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, sub := range Root().Subcommands {
		if seen[sub.Name] {
			t.Errorf("duplicate command name %q", sub.Name)
		}
		seen[sub.Name] = true
	}
	for _, want := range []string{"create", "show", "assign", "add-member", "remove-member", "inspect", "version"} {
		if !seen[want] {
			t.Errorf("command %q missing from tree", want)
		}
	}
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
