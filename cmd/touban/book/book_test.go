// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/tobansho/touban/lib/config"
	"github.com/tobansho/touban/lib/ledger"
	"github.com/tobansho/touban/lib/rotation"
	"github.com/tobansho/touban/lib/token"
)

func TestMain(m *testing.M) {
	// Styles must not inject escape sequences into assertions.
	applyColorMode(config.ColorNever)
	os.Exit(m.Run())
}

// lastLine returns the final non-empty line of output, which for every
// mutating command is the token.
func lastLine(t *testing.T, output string) string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) == 0 || lines[len(lines)-1] == "" {
		t.Fatalf("no token line in output:\n%s", output)
	}
	return lines[len(lines)-1]
}

func mustEncode(t *testing.T, book *ledger.Book) string {
	t.Helper()
	encoded, err := token.Encode(book)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return encoded
}

func TestRunCreateThenShow(t *testing.T) {
	var out bytes.Buffer
	params := &createParams{
		People:   2,
		Interval: 7,
		Members:  "akari, ben ,chiyo",
	}
	if err := runCreate(&out, config.Default(), params); err != nil {
		t.Fatalf("runCreate: %v", err)
	}

	book, err := token.Decode(lastLine(t, out.String()))
	if err != nil {
		t.Fatalf("Decode of printed token: %v", err)
	}
	if book.People != 2 || book.Interval != 7 {
		t.Errorf("decoded parameters = (%d, %d), want (2, 7)", book.People, book.Interval)
	}
	names := make([]string, 0, len(book.Members))
	for _, member := range book.Members {
		if member.Count != 0 {
			t.Errorf("member %q starts at count %d, want 0", member.Name, member.Count)
		}
		names = append(names, member.Name)
	}
	if !reflect.DeepEqual(names, []string{"akari", "ben", "chiyo"}) {
		t.Errorf("member names = %v", names)
	}

	var shown bytes.Buffer
	if err := runShow(&shown, &showParams{Book: lastLine(t, out.String())}); err != nil {
		t.Fatalf("runShow: %v", err)
	}
	for _, want := range []string{"akari", "ben", "chiyo", "people:", "interval:"} {
		if !strings.Contains(shown.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, shown.String())
		}
	}
}

func TestRunCreateUsesConfigDefaults(t *testing.T) {
	var out bytes.Buffer
	params := &createParams{People: 0, Interval: -1, Members: "solo"}
	if err := runCreate(&out, config.Default(), params); err != nil {
		t.Fatalf("runCreate: %v", err)
	}
	book, err := token.Decode(lastLine(t, out.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if book.People != 1 || book.Interval != 7 {
		t.Errorf("defaults not applied: (%d, %d), want (1, 7)", book.People, book.Interval)
	}
}

func TestRunCreateFlagsWinOverConfig(t *testing.T) {
	cfg := &config.Config{
		Defaults: config.DefaultsConfig{People: 3, Interval: 10},
		Output:   config.OutputConfig{Color: config.ColorNever},
	}

	var out bytes.Buffer
	params := &createParams{People: 2, Interval: -1, Members: "akari,ben"}
	if err := runCreate(&out, cfg, params); err != nil {
		t.Fatalf("runCreate: %v", err)
	}
	book, err := token.Decode(lastLine(t, out.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if book.People != 2 {
		t.Errorf("People = %d, want the flag value 2 over the config value 3", book.People)
	}
	if book.Interval != 10 {
		t.Errorf("Interval = %d, want the config value 10", book.Interval)
	}
}

func TestRunCreateRejectsDuplicateMembers(t *testing.T) {
	var out bytes.Buffer
	params := &createParams{People: 1, Interval: 7, Members: "a,b,a"}
	err := runCreate(&out, config.Default(), params)
	if !errors.Is(err, ledger.ErrDuplicateName) {
		t.Fatalf("runCreate = %v, want ErrDuplicateName", err)
	}
	if out.Len() != 0 {
		t.Errorf("failed create still wrote output:\n%s", out.String())
	}
}

func TestRunShowRejectsBadToken(t *testing.T) {
	var out bytes.Buffer
	if err := runShow(&out, &showParams{}); err == nil {
		t.Error("runShow accepted an empty --book")
	}
	err := runShow(&out, &showParams{Book: "not kana"})
	if !errors.Is(err, token.ErrInvalidCharacter) {
		t.Errorf("runShow = %v, want ErrInvalidCharacter", err)
	}
}

func TestRunAddMemberStartsAtMeanCount(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{
		People:   1,
		Interval: 7,
		Members: []ledger.Member{
			{Name: "akari", Count: 4},
			{Name: "ben", Count: 3},
		},
	})

	var out bytes.Buffer
	params := &addParams{Book: encoded, Member: "chiyo"}
	if err := runAddMember(&out, params); err != nil {
		t.Fatalf("runAddMember: %v", err)
	}

	book, err := token.Decode(lastLine(t, out.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(book.Members) != 3 {
		t.Fatalf("member count = %d, want 3", len(book.Members))
	}
	// mean(4, 3) = 3.5, rounded half away from zero.
	if got := book.Members[2]; got.Name != "chiyo" || got.Count != 4 {
		t.Errorf("new member = %+v, want chiyo at count 4", got)
	}
}

func TestRunAddMemberDuplicateWritesNothing(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{
		People:   1,
		Interval: 7,
		Members:  []ledger.Member{{Name: "akari"}},
	})

	var out bytes.Buffer
	err := runAddMember(&out, &addParams{Book: encoded, Member: "akari"})
	if !errors.Is(err, rotation.ErrDuplicateMember) {
		t.Fatalf("runAddMember = %v, want ErrDuplicateMember", err)
	}
	if out.Len() != 0 {
		t.Errorf("failed add still wrote output:\n%s", out.String())
	}
}

func TestRunRemoveMember(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{
		People:   1,
		Interval: 7,
		Members: []ledger.Member{
			{Name: "akari", Count: 1},
			{Name: "ben", Count: 2},
			{Name: "chiyo", Count: 3},
		},
	})

	var out bytes.Buffer
	if err := runRemoveMember(&out, &removeParams{Book: encoded, Member: "ben"}); err != nil {
		t.Fatalf("runRemoveMember: %v", err)
	}

	book, err := token.Decode(lastLine(t, out.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(book.Members) != 2 || book.Members[0].Name != "akari" || book.Members[1].Name != "chiyo" {
		t.Errorf("members after removal = %+v", book.Members)
	}

	err = runRemoveMember(&out, &removeParams{Book: encoded, Member: "nobody"})
	if !errors.Is(err, rotation.ErrMemberNotFound) {
		t.Errorf("runRemoveMember(nobody) = %v, want ErrMemberNotFound", err)
	}
}

func TestRunAssignPicksUniqueMinimum(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{
		People:   1,
		Interval: 7,
		Members: []ledger.Member{
			{Name: "akari", Count: 2},
			{Name: "ben", Count: 0},
			{Name: "chiyo", Count: 1},
		},
	})

	var out bytes.Buffer
	if err := runAssign(&out, &assignParams{Book: encoded}); err != nil {
		t.Fatalf("runAssign: %v", err)
	}
	if !strings.Contains(out.String(), "ben") {
		t.Errorf("unique-minimum member not selected:\n%s", out.String())
	}

	book, err := token.Decode(lastLine(t, out.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if book.Members[1].Count != 1 {
		t.Errorf("ben's count = %d, want 1", book.Members[1].Count)
	}
}

func TestRunAssignSeededIsDeterministic(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{
		People:   2,
		Interval: 7,
		Members: []ledger.Member{
			{Name: "akari"}, {Name: "ben"}, {Name: "chiyo"}, {Name: "dmitri"},
		},
	})

	run := func() string {
		var out bytes.Buffer
		if err := runAssign(&out, &assignParams{Book: encoded, Seed: "42"}); err != nil {
			t.Fatalf("runAssign: %v", err)
		}
		return out.String()
	}

	first := run()
	for i := 0; i < 3; i++ {
		if again := run(); again != first {
			t.Fatalf("seeded assign diverged:\n%s\nvs\n%s", first, again)
		}
	}
}

func TestRunAssignEmptyLedger(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{People: 1, Interval: 7})

	var out bytes.Buffer
	err := runAssign(&out, &assignParams{Book: encoded})
	if !errors.Is(err, rotation.ErrNoMembers) {
		t.Errorf("runAssign = %v, want ErrNoMembers", err)
	}
}

func TestShufflerForRejectsBadSeeds(t *testing.T) {
	for _, seed := range []string{"abc", "-1", "1.5", "0x10"} {
		if _, err := shufflerFor(seed); err == nil {
			t.Errorf("shufflerFor(%q) accepted a bad seed", seed)
		}
	}
	if _, err := shufflerFor("18446744073709551615"); err != nil {
		t.Errorf("shufflerFor(max uint64) = %v", err)
	}
}

func TestRunInspectShowsPayload(t *testing.T) {
	encoded := mustEncode(t, &ledger.Book{
		People:   1,
		Interval: 7,
		Members:  []ledger.Member{{Name: "akari", Count: 2}},
	})

	var out bytes.Buffer
	if err := runInspect(&out, &inspectParams{Book: encoded}); err != nil {
		t.Fatalf("runInspect: %v", err)
	}
	for _, want := range []string{"payload bytes", "akari"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("inspect output missing %q:\n%s", want, out.String())
		}
	}

	if err := runInspect(&out, &inspectParams{Book: "ぁぁぁぁぁ"}); err == nil {
		t.Error("runInspect accepted a corrupt token")
	}
}

func TestSplitMembers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
	}

	for _, test := range tests {
		if got := splitMembers(test.input); !reflect.DeepEqual(got, test.want) {
			t.Errorf("splitMembers(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}
