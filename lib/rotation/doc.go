// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

// Package rotation holds the fairness logic: selecting who serves
// next (Assign) and fairness-preserving membership changes (AddMember,
// RemoveMember). All operations mutate the book in place, but only
// after every precondition has passed — a returned error means the
// book was not touched.
package rotation
