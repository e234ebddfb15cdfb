// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package book implements the touban subcommands that operate on a
// duty ledger: create, show, add-member, remove-member, assign, and
// inspect. Every command is a thin wrapper: decode the --book token,
// call into lib/rotation or lib/ledger, re-encode, and print a report.
// A failed command never prints a token, so the caller's previous
// token stays authoritative.
package book
