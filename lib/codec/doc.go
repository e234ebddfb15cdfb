// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides touban's standard CBOR encoding configuration.
//
// Touban uses two serialization formats with a clear boundary:
//
//   - CBOR for the ledger token payload: the structured bytes that get
//     base64url-encoded and mapped into the kana alphabet.
//   - JSON for CLI --json output.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. Same
// logical ledger always produces identical bytes, which in turn means
// identical tokens — a property the assign command's determinism
// guarantee depends on.
//
// The decoder is strict: unknown map fields are rejected rather than
// ignored. The token is the only integrity mechanism the system has, so
// a payload that doesn't match the schema exactly must fail loudly
// instead of being silently coerced.
//
// # Struct Tag Rules
//
//   - `cbor` tag (keyasint): the type is part of the token wire schema.
//     It is never marshaled to JSON.
//   - `json` tag: the type is CLI output only. It never enters a token.
//
// Never use both tags on the same type: a type either belongs to the
// wire schema or to the presentation layer.
package codec
