// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package shuffle abstracts the random-permutation capability used by
// duty selection. Production code injects Random(); anything that
// needs reproducible selections (the --seed flag, tests) injects
// Seeded(); order-sensitive tests inject Fake(). Nothing in the
// module hard-wires a shared global generator.
package shuffle
