// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package token

// The token alphabet is the contiguous block of 64 hiragana starting
// at ぁ (U+3041), one code point per base64url symbol index.
const (
	alphabetStart rune = 0x3041 // ぁ
	alphabetSize  rune = 64
)

// base64Alphabet is the URL-safe base64 alphabet in index order,
// matching encoding/base64's RawURLEncoding.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// base64Index maps a base64url symbol to its index 0..63, or -1 for
// any other byte. Built once at init from base64Alphabet.
var base64Index [256]int8

func init() {
	for i := range base64Index {
		base64Index[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64Index[base64Alphabet[i]] = int8(i)
	}
}

// kanaForSymbol returns the kana code point carrying the given
// base64url symbol. The symbol must come from base64Alphabet.
func kanaForSymbol(symbol byte) rune {
	return alphabetStart + rune(base64Index[symbol])
}

// symbolForKana returns the base64url symbol carried by the given
// rune, or false if the rune lies outside the 64-point kana block.
func symbolForKana(r rune) (byte, bool) {
	if r < alphabetStart || r >= alphabetStart+alphabetSize {
		return 0, false
	}
	return base64Alphabet[r-alphabetStart], true
}
