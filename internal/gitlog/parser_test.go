package gitlog

import (
	"errors"
	"testing"
	"time"
)

func parseKind(t *testing.T, text string) ErrorKind {
	t.Helper()
	_, err := Parse(text)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	return pe.Kind
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantID     string
		wantAuthor string
		wantKind   ErrorKind // zero means success expected
	}{
		{name: "Quoted", line: "'abc123--2023-01-01--Alice'", wantID: "abc123", wantAuthor: "Alice"},
		{name: "LeadingSeparator", line: "'--abc123--2023-01-01--Alice'", wantID: "abc123", wantAuthor: "Alice"},
		{name: "Unquoted", line: "abc123--2023-01-01--Alice", wantID: "abc123", wantAuthor: "Alice"},
		{name: "AuthorWithSpaces", line: "'abc123--2023-01-01--Alice B. Toklas'", wantID: "abc123", wantAuthor: "Alice B. Toklas"},
		{name: "TwoFields", line: "'abc123--2023-01-01'", wantKind: KindMalformedHeader},
		{name: "FourFields", line: "'abc123--2023-01-01--Alice--extra'", wantKind: KindMalformedHeader},
		{name: "EmptyFragmentsOnly", line: "'----'", wantKind: KindMalformedHeader},
		{name: "BadDate", line: "'abc123--bad-date--Alice'", wantKind: KindInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := parseHeader(tt.line)
			if tt.wantKind != 0 {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if pe.Kind != tt.wantKind {
					t.Fatalf("kind = %v, expected %v", pe.Kind, tt.wantKind)
				}
				if pe.Line != tt.line {
					t.Errorf("error line = %q, expected the raw line %q", pe.Line, tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.id != tt.wantID {
				t.Errorf("id = %q, expected %q", h.id, tt.wantID)
			}
			if h.author != tt.wantAuthor {
				t.Errorf("author = %q, expected %q", h.author, tt.wantAuthor)
			}
		})
	}
}

func TestParseHeader_InvalidTimestampCause(t *testing.T) {
	_, err := parseHeader("'abc123--bad-date--Alice'")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Err == nil {
		t.Fatal("expected wrapped timestamp cause, got nil")
	}
}

func TestParseChange(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantPath string
		wantErr  bool
	}{
		{name: "Concrete", line: "3\t1\tfoo.txt", wantPath: "foo.txt"},
		{name: "Binary", line: "-\t-\tbin.dat", wantPath: "bin.dat"},
		{name: "PathWithSpaces", line: "1\t2\tdocs/read me.md", wantPath: "docs/read me.md"},
		{name: "TwoFields", line: "5\tfoo.txt", wantErr: true},
		{name: "FourFields", line: "1\t2\t3\tfoo.txt", wantErr: true},
		{name: "SpaceSeparated", line: "3 1 foo.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChange(tt.line)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Kind != KindMalformedChange {
					t.Fatalf("expected malformed change error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Path != tt.wantPath {
				t.Errorf("path = %q, expected %q", got.Path, tt.wantPath)
			}
		})
	}
}

func TestParse_TwoBlocks(t *testing.T) {
	text := "'abc123--2023-01-01--Alice'\n" +
		"\n" +
		"'def456--2023-01-02--Bob'\n" +
		"3\t1\tfoo.txt\n" +
		"-\t-\tbin.dat"

	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, expected 2", len(entries))
	}

	first := entries[0]
	if first.ID != "abc123" || first.Author != "Alice" || len(first.Changes) != 0 {
		t.Errorf("first entry = %+v, expected abc123/Alice with no changes", first)
	}
	if !first.Timestamp.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first timestamp = %v", first.Timestamp)
	}

	second := entries[1]
	if second.ID != "def456" || second.Author != "Bob" {
		t.Errorf("second entry = %+v, expected def456/Bob", second)
	}
	if len(second.Changes) != 2 {
		t.Fatalf("second changes = %d, expected 2", len(second.Changes))
	}
	if c := second.Changes[0]; !c.Added.Applicable() || c.Added.Count() != 3 ||
		!c.Removed.Applicable() || c.Removed.Count() != 1 || c.Path != "foo.txt" {
		t.Errorf("change[0] = %+v, expected 3/1 foo.txt", c)
	}
	if c := second.Changes[1]; c.Added.Applicable() || c.Removed.Applicable() || c.Path != "bin.dat" {
		t.Errorf("change[1] = %+v, expected -/- bin.dat", c)
	}
}

func TestParse_ErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ErrorKind
	}{
		{name: "MalformedHeader", text: "'abc123--2023-01-01'", want: KindMalformedHeader},
		{name: "InvalidTimestamp", text: "'abc123--bad-date--Alice'", want: KindInvalidTimestamp},
		{name: "MalformedChange", text: "'abc123--2023-01-01--Alice'\n5\tfoo.txt", want: KindMalformedChange},
		{name: "BareGarbageLine", text: "not a log at all", want: KindMalformedChange},
		{name: "SecondBlockFails", text: "'a--2023-01-01--A'\n\n'b--2023-01-02'", want: KindMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseKind(t, tt.text); got != tt.want {
				t.Fatalf("kind = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestParse_HeaderErrorBeforeChangeError(t *testing.T) {
	// Both the header and a change line are malformed; the header comes
	// first in line order, so its error wins.
	text := "'abc123--2023-01-01'\nnot\ta-change"
	if got := parseKind(t, text); got != KindMalformedHeader {
		t.Fatalf("kind = %v, expected %v", got, KindMalformedHeader)
	}
}

func TestParse_ChangeErrorSurvivesValidHeaders(t *testing.T) {
	text := "'abc123--2023-01-01--Alice'\nbroken line"
	if got := parseKind(t, text); got != KindMalformedChange {
		t.Fatalf("kind = %v, expected %v", got, KindMalformedChange)
	}
}

func TestParse_MultipleHeadersShareChanges(t *testing.T) {
	text := "'abc123--2023-01-01--Alice'\n" +
		"'def456--2023-01-02--Bob'\n" +
		"3\t1\tfoo.txt"

	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, expected 2", len(entries))
	}
	for i, e := range entries {
		if len(e.Changes) != 1 || e.Changes[0].Path != "foo.txt" {
			t.Errorf("entry %d changes = %+v, expected shared foo.txt change", i, e.Changes)
		}
	}
	// Entries own their change slices independently.
	entries[0].Changes[0].Path = "mutated"
	if entries[1].Changes[0].Path != "foo.txt" {
		t.Error("entries share one change slice; each should own a copy")
	}
}

func TestParse_EmptyAndBlankInput(t *testing.T) {
	for _, text := range []string{"", "\n", "\n\n", "\n\n\n\n"} {
		entries, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", text, err)
		}
		if len(entries) != 0 {
			t.Fatalf("Parse(%q) = %d entries, expected 0", text, len(entries))
		}
	}
}

func TestParse_TrailingNewline(t *testing.T) {
	entries, err := Parse("'abc123--2023-01-01--Alice'\n3\t1\tfoo.txt\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Changes) != 1 {
		t.Fatalf("entries = %+v, expected one entry with one change", entries)
	}
}

func TestParse_AllOrNothing(t *testing.T) {
	// A failure in the last block must not leak entries from earlier ones.
	text := "'abc123--2023-01-01--Alice'\n\nbroken"
	entries, err := Parse(text)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if entries != nil {
		t.Fatalf("expected nil entries on failure, got %d", len(entries))
	}
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "'abc123--2023-01-01--Alice'", want: true},
		{line: "'--abc123--2023-01-01--Alice'", want: true},
		{line: "3\t1\tfoo.txt", want: false},
		{line: "-\t-\tbin.dat", want: false},
		{line: "abc123--2023-01-01--Alice", want: false},
		{line: "'quoted but no separator'", want: false},
		{line: "", want: false},
	}

	for _, tt := range tests {
		if got := isHeaderLine(tt.line); got != tt.want {
			t.Errorf("isHeaderLine(%q) = %v, expected %v", tt.line, got, tt.want)
		}
	}
}
