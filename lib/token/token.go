// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tobansho/touban/lib/codec"
	"github.com/tobansho/touban/lib/ledger"
)

// Errors returned by Decode and Payload. Each corresponds to one
// validation layer of the decode pipeline.
var (
	ErrInvalidCharacter = errors.New("token: character outside the kana alphabet")
	ErrCorrupt          = errors.New("token: corrupt payload")
	ErrMalformed        = errors.New("token: malformed ledger data")
)

// payloadVersion is the current wire schema version. Decode rejects
// any other value rather than guessing at field meanings.
const payloadVersion = 1

// envelope is the CBOR wire form of a token: a version byte and the
// ledger body. The version lives outside the book so that a future
// schema change can restructure the body without ambiguity.
type envelope struct {
	Version uint8        `cbor:"1,keyasint"`
	Book    *ledger.Book `cbor:"2,keyasint"`
}

// Encode serializes a valid book into its kana token. It never fails
// for a book satisfying the ledger invariants; the error return
// covers programmer mistakes (an invalid book reaching this point),
// not runtime conditions.
func Encode(book *ledger.Book) (string, error) {
	if err := book.Validate(); err != nil {
		return "", fmt.Errorf("token: refusing to encode invalid book: %w", err)
	}

	payload, err := codec.Marshal(envelope{Version: payloadVersion, Book: book})
	if err != nil {
		return "", fmt.Errorf("token: encoding ledger payload: %w", err)
	}

	b64 := base64.RawURLEncoding.EncodeToString(payload)

	var out strings.Builder
	out.Grow(len(b64) * 3) // every kana is 3 bytes in UTF-8
	for i := 0; i < len(b64); i++ {
		out.WriteRune(kanaForSymbol(b64[i]))
	}
	return out.String(), nil
}

// Decode parses a kana token back into a validated book. Each pipeline
// layer fails independently: ErrInvalidCharacter for a rune outside
// the alphabet (checked first, before any decoding), ErrCorrupt for a
// payload that is not valid unpadded base64url, and ErrMalformed for
// CBOR that does not match the ledger schema or a book violating the
// ledger invariants.
func Decode(s string) (*ledger.Book, error) {
	payload, err := Payload(s)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := codec.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Version != payloadVersion {
		return nil, fmt.Errorf("%w: unsupported schema version %d", ErrMalformed, env.Version)
	}
	if env.Book == nil {
		return nil, fmt.Errorf("%w: missing ledger body", ErrMalformed)
	}
	if err := env.Book.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return env.Book, nil
}

// Payload reverses only the outer two layers — kana substitution and
// base64url — returning the raw CBOR payload without interpreting it.
// The inspect command uses this to show a token's payload even when
// the ledger schema check would fail.
func Payload(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty token", ErrCorrupt)
	}

	b64 := make([]byte, 0, utf8.RuneCountInString(s))
	for i, r := range s {
		symbol, ok := symbolForKana(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte offset %d", ErrInvalidCharacter, r, i)
		}
		b64 = append(b64, symbol)
	}

	payload, err := base64.RawURLEncoding.DecodeString(string(b64))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return payload, nil
}
