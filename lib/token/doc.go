// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package token is the bidirectional transform between a ledger book
// and its printable token form.
//
// The pipeline has three layers, each validated independently on the
// way back in:
//
//	book  ⇄  CBOR payload (lib/codec, deterministic encoding)
//	      ⇄  base64url without padding
//	      ⇄  64 consecutive hiragana starting at ぁ (U+3041)
//
// The kana layer is a pure 1:1 substitution: base64url symbol index i
// becomes code point U+3041+i. A token is therefore a single
// copy-pasteable line of hiragana with no padding characters, and any
// rune outside the 64-point block is rejected before any decoding is
// attempted.
//
// Decoding fails closed. A bad character, a malformed base64 payload,
// an unknown payload field, a version mismatch, or a book violating
// the ledger invariants each produce a distinct sentinel error; the
// token is never silently repaired.
package token
