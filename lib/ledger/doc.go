// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package ledger defines the duty rotation ledger: a Book of named
// members with bounded service counts, plus the invariants every book
// must satisfy. The book is a value passed by copy through each
// command invocation — there is no storage layer, and the encoded
// token (lib/token) is the only durable form.
package ledger
