// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package shuffle

import (
	"encoding/binary"
	"math/rand/v2"
)

// Seeded returns a deterministic Shuffler: equal seeds always produce
// equal permutations. Each call owns its own ChaCha8 generator, so
// concurrent use of separate seeded Shufflers needs no coordination.
func Seeded(seed uint64) Shuffler {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &seededShuffler{rng: rand.New(rand.NewChaCha8(key))}
}

type seededShuffler struct {
	rng *rand.Rand
}

func (s *seededShuffler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
