// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package rotation

import (
	"errors"
	"fmt"
	"math"

	"github.com/tobansho/touban/lib/ledger"
)

// Errors returned by AddMember and RemoveMember. Name matching is
// exact; there is no normalization or fuzzy lookup.
var (
	ErrDuplicateMember = errors.New("rotation: member already exists")
	ErrMemberNotFound  = errors.New("rotation: member not found")
)

// AddMember appends a member whose starting count is the rounded
// arithmetic mean of the existing counts (zero for an empty book), so
// a newcomer joins neither ahead of nor behind the group.
func AddMember(book *ledger.Book, name string) error {
	if name == "" {
		return ledger.ErrEmptyName
	}
	for _, member := range book.Members {
		if member.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateMember, name)
		}
	}
	book.Members = append(book.Members, ledger.Member{
		Name:  name,
		Count: meanCount(book.Members),
	})
	return nil
}

// RemoveMember deletes the member with the given name, preserving the
// relative order of everyone else.
func RemoveMember(book *ledger.Book, name string) error {
	for i, member := range book.Members {
		if member.Name == name {
			book.Members = append(book.Members[:i], book.Members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrMemberNotFound, name)
}

// meanCount is the arithmetic mean of the counts, rounded half away
// from zero. Counts are bounded by ledger.MaxCount, so the mean is
// always a representable count itself.
func meanCount(members []ledger.Member) uint8 {
	if len(members) == 0 {
		return 0
	}
	total := 0
	for _, member := range members {
		total += int(member.Count)
	}
	return uint8(math.Round(float64(total) / float64(len(members))))
}
