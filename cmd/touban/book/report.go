// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"github.com/tobansho/touban/lib/ledger"
)

// JSON report types for --json output. These mirror the ledger types
// but stay separate: the ledger structs carry cbor tags only, and the
// wire schema must not pick up json concerns (or vice versa).

type memberReport struct {
	Name  string `json:"name"`
	Count uint8  `json:"count"`
}

type bookReport struct {
	People   uint           `json:"people"`
	Interval uint           `json:"interval"`
	Members  []memberReport `json:"members"`
	Token    string         `json:"token,omitempty"`
}

type assignReport struct {
	Reset    bool           `json:"reset"`
	Selected []memberReport `json:"selected"`
	Token    string         `json:"token"`
}

func memberReports(members []ledger.Member) []memberReport {
	reports := make([]memberReport, 0, len(members))
	for _, member := range members {
		reports = append(reports, memberReport{Name: member.Name, Count: member.Count})
	}
	return reports
}

// newBookReport builds the JSON view of a book. Pass an empty token
// for read-only commands that did not re-encode.
func newBookReport(b *ledger.Book, encoded string) bookReport {
	return bookReport{
		People:   b.People,
		Interval: b.Interval,
		Members:  memberReports(b.Members),
		Token:    encoded,
	}
}
