// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package rotation

import (
	"errors"

	"github.com/tobansho/touban/lib/ledger"
	"github.com/tobansho/touban/lib/shuffle"
)

// ErrNoMembers is returned by Assign when the book has nobody to pick.
var ErrNoMembers = errors.New("rotation: ledger has no members")

// Assignment is the result of one selection round.
type Assignment struct {
	// Selected lists the chosen members in selection order, with
	// their post-increment counts.
	Selected []ledger.Member

	// Reset reports that every count was zeroed before selection
	// because a member had reached the count ceiling.
	Reset bool
}

// Assign picks the next duty group and updates counts in the book.
//
// The round proceeds in fixed phases: a full-cycle reset when any
// count has reached the ceiling, then selection restricted to the
// members tied at the current minimum count, shuffled by the injected
// shuffler, taking at most book.People of them. Members above the
// minimum are never picked while a minimum-tied member goes unpicked.
// When the pool is smaller than book.People the round under-fills;
// that is not an error.
//
// A selected member's count increments by one; a value that would
// pass the ceiling wraps to zero. The wrap is a separate mechanism
// from the full-cycle reset and is deliberately kept that way.
func Assign(book *ledger.Book, shuffler shuffle.Shuffler) (*Assignment, error) {
	if len(book.Members) == 0 {
		return nil, ErrNoMembers
	}

	assignment := &Assignment{}

	// Full-cycle reset: once anyone reaches the ceiling, the whole
	// rotation starts over.
	if maxCount(book.Members) >= ledger.MaxCount {
		for i := range book.Members {
			book.Members[i].Count = 0
		}
		assignment.Reset = true
	}

	// Candidate pool: indexes of members tied at the minimum count,
	// in book order.
	floor := minCount(book.Members)
	pool := make([]int, 0, len(book.Members))
	for i, member := range book.Members {
		if member.Count == floor {
			pool = append(pool, i)
		}
	}

	shuffler.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	take := min(int(book.People), len(pool))
	assignment.Selected = make([]ledger.Member, 0, take)
	for _, index := range pool[:take] {
		next := book.Members[index].Count + 1
		if next > ledger.MaxCount {
			next = 0
		}
		book.Members[index].Count = next
		assignment.Selected = append(assignment.Selected, book.Members[index])
	}

	return assignment, nil
}

func maxCount(members []ledger.Member) uint8 {
	var highest uint8
	for _, member := range members {
		if member.Count > highest {
			highest = member.Count
		}
	}
	return highest
}

func minCount(members []ledger.Member) uint8 {
	lowest := members[0].Count
	for _, member := range members[1:] {
		if member.Count < lowest {
			lowest = member.Count
		}
	}
	return lowest
}
