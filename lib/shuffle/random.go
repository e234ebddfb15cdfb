// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package shuffle

import "math/rand/v2"

// Random returns a Shuffler drawing from the process-local entropy
// source. Permutations are not reproducible; this is the production
// source for interactive use.
func Random() Shuffler {
	return randomShuffler{}
}

type randomShuffler struct{}

func (randomShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
