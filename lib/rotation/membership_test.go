// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package rotation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tobansho/touban/lib/ledger"
)

func TestAddMemberRoundedMean(t *testing.T) {
	tests := []struct {
		name      string
		counts    []uint8
		wantCount uint8
	}{
		{"empty book", nil, 0},
		{"mean is whole", []uint8{2, 4}, 3},
		{"half rounds up", []uint8{1, 2}, 2}, // 1.5 rounds away from zero
		{"below half rounds down", []uint8{1, 1, 2}, 1},
		{"all at ceiling", []uint8{5, 5}, 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := &ledger.Book{People: 1}
			for i, count := range test.counts {
				b.Members = append(b.Members, ledger.Member{
					Name:  string(rune('A' + i)),
					Count: count,
				})
			}

			if err := AddMember(b, "newcomer"); err != nil {
				t.Fatalf("AddMember: %v", err)
			}

			added := b.Members[len(b.Members)-1]
			if added.Name != "newcomer" {
				t.Errorf("appended name = %q, want %q", added.Name, "newcomer")
			}
			if added.Count != test.wantCount {
				t.Errorf("appended count = %d, want %d", added.Count, test.wantCount)
			}
			if err := b.Validate(); err != nil {
				t.Errorf("book invalid after add: %v", err)
			}
		})
	}
}

func TestAddMemberDuplicate(t *testing.T) {
	b := &ledger.Book{People: 1, Members: []ledger.Member{{Name: "A", Count: 2}}}
	before := make([]ledger.Member, len(b.Members))
	copy(before, b.Members)

	err := AddMember(b, "A")
	if !errors.Is(err, ErrDuplicateMember) {
		t.Errorf("AddMember: error = %v, want ErrDuplicateMember", err)
	}
	if !reflect.DeepEqual(b.Members, before) {
		t.Errorf("failed add mutated the book: %+v", b.Members)
	}
}

func TestAddMemberEmptyName(t *testing.T) {
	b := &ledger.Book{People: 1}
	if err := AddMember(b, ""); !errors.Is(err, ledger.ErrEmptyName) {
		t.Errorf("AddMember: error = %v, want ErrEmptyName", err)
	}
}

func TestRemoveMemberPreservesOrder(t *testing.T) {
	b := &ledger.Book{People: 1, Members: []ledger.Member{
		{Name: "A", Count: 1},
		{Name: "B", Count: 2},
		{Name: "C", Count: 3},
	}}

	if err := RemoveMember(b, "B"); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}

	want := []ledger.Member{{Name: "A", Count: 1}, {Name: "C", Count: 3}}
	if !reflect.DeepEqual(b.Members, want) {
		t.Errorf("Members = %+v, want %+v", b.Members, want)
	}
}

func TestRemoveMemberNotFound(t *testing.T) {
	b := &ledger.Book{People: 1, Members: []ledger.Member{{Name: "A"}}}

	err := RemoveMember(b, "Z")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("RemoveMember: error = %v, want ErrMemberNotFound", err)
	}
	if len(b.Members) != 1 {
		t.Errorf("failed remove mutated the book: %+v", b.Members)
	}
}
