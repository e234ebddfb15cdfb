// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package shuffle

// Fake returns a Shuffler that leaves the order unchanged. Tests use
// it when an assertion depends on selection order matching insertion
// order. Never inject it in production paths: an identity
// "permutation" defeats the fairness the shuffle exists for.
func Fake() Shuffler {
	return fakeShuffler{}
}

type fakeShuffler struct{}

func (fakeShuffler) Shuffle(int, func(i, j int)) {}
