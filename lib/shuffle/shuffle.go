// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package shuffle

// Shuffler produces an unbiased permutation of n elements through
// repeated swaps, with the contract of rand.Shuffle (Fisher-Yates).
//
// Every production function that needs randomized order should accept
// a Shuffler parameter instead of reaching for a rand package
// directly, so the caller decides between entropy-backed and seeded
// behavior.
type Shuffler interface {
	// Shuffle pseudo-randomizes the order of n elements. swap swaps
	// the elements with indexes i and j. Panics if n < 0.
	Shuffle(n int, swap func(i, j int))
}
