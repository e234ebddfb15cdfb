// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"errors"
	"fmt"
)

// MaxCount is the service count ceiling. A member whose count reaches
// it triggers a full-cycle reset on the next assignment.
const MaxCount = 5

// Errors returned by New and Validate.
var (
	ErrInvalidPeople   = errors.New("ledger: people must be at least 1")
	ErrInvalidInterval = errors.New("ledger: interval must not be negative")
	ErrDuplicateName   = errors.New("ledger: duplicate member name")
	ErrEmptyName       = errors.New("ledger: member name must not be empty")
	ErrCountRange      = errors.New("ledger: member count out of range")
)

// Member is a named participant with a bounded service counter.
// Count tracks rounds served since the last full-cycle reset and is
// always in [0, MaxCount].
type Member struct {
	Name  string `cbor:"1,keyasint"`
	Count uint8  `cbor:"2,keyasint,omitempty"`
}

// Book is the full rotation state. Members keep insertion order; the
// order survives encode/decode round trips and add/remove operations.
type Book struct {
	// People is how many members are drawn each round. Always >= 1.
	People uint `cbor:"1,keyasint"`

	// Interval is the advisory number of days between rounds. The
	// selection logic does not consume it; it rides along for the
	// humans reading the ledger.
	Interval uint `cbor:"2,keyasint,omitempty"`

	Members []Member `cbor:"3,keyasint,omitempty"`
}

// New builds a validated book with every member starting at count 0.
func New(people, interval int, names []string) (*Book, error) {
	if people < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeople, people)
	}
	if interval < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}

	book := &Book{People: uint(people), Interval: uint(interval)}
	for _, name := range names {
		book.Members = append(book.Members, Member{Name: name})
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}

// Validate checks the book's invariants: people >= 1, every count in
// [0, MaxCount], and member names non-empty and pairwise distinct.
// Token decoding calls this so that no invalid book ever reaches the
// selection logic.
func (b *Book) Validate() error {
	if b.People < 1 {
		return ErrInvalidPeople
	}

	seen := make(map[string]struct{}, len(b.Members))
	for _, member := range b.Members {
		if member.Name == "" {
			return ErrEmptyName
		}
		if member.Count > MaxCount {
			return fmt.Errorf("%w: %q has count %d", ErrCountRange, member.Name, member.Count)
		}
		if _, dup := seen[member.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, member.Name)
		}
		seen[member.Name] = struct{}{}
	}
	return nil
}
