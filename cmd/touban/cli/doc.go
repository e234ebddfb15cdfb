// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the touban
// binary: a Command tree dispatched by name, pflag flag parsing with
// struct-tag binding, help rendering, and Levenshtein suggestions for
// mistyped commands and flags. Commands are assembled into a tree in
// cmd/touban/commands and executed from main.
package cli
