package gitlog

import (
	"testing"
	"time"
)

func TestPathFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		path    string
		want    bool
	}{
		{name: "NoPatterns", path: "src/main.go", want: true},
		{name: "IncludeMatch", include: []string{"**/*.go"}, path: "src/main.go", want: true},
		{name: "IncludeMiss", include: []string{"**/*.go"}, path: "docs/readme.md", want: false},
		{name: "ExcludeMatch", exclude: []string{"vendor/**"}, path: "vendor/lib/a.go", want: false},
		{name: "ExcludeWinsOverInclude", include: []string{"**/*.go"}, exclude: []string{"vendor/**"}, path: "vendor/a.go", want: false},
		{name: "WindowsSeparators", include: []string{"src/**"}, path: "src\\pkg\\main.go", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewPathFilter(tt.include, tt.exclude)
			if got := f.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, expected %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_Apply(t *testing.T) {
	when := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := []LogEntry{
		{
			ID: "a1", Timestamp: when, Author: "Alice",
			Changes: []ChangeRecord{
				{Added: CountOf(1), Removed: CountOf(0), Path: "src/main.go"},
				{Added: CountOf(2), Removed: CountOf(1), Path: "docs/readme.md"},
			},
		},
		{
			ID: "b2", Timestamp: when, Author: "Bob",
			Changes: []ChangeRecord{
				{Added: CountOf(3), Removed: CountOf(3), Path: "docs/guide.md"},
			},
		},
	}

	filtered := NewPathFilter([]string{"src/**"}, nil).Apply(entries)

	if len(filtered) != 2 {
		t.Fatalf("entries = %d, expected 2 (commits are never dropped)", len(filtered))
	}
	if len(filtered[0].Changes) != 1 || filtered[0].Changes[0].Path != "src/main.go" {
		t.Errorf("first entry changes = %+v, expected only src/main.go", filtered[0].Changes)
	}
	if len(filtered[1].Changes) != 0 {
		t.Errorf("second entry changes = %+v, expected none", filtered[1].Changes)
	}

	// Original entries are untouched.
	if len(entries[0].Changes) != 2 {
		t.Error("Apply mutated its input")
	}
}

func TestPathFilter_ApplyEmptyFilterReturnsInput(t *testing.T) {
	entries := []LogEntry{{ID: "a1"}}
	if got := NewPathFilter(nil, nil).Apply(entries); len(got) != 1 {
		t.Fatalf("entries = %d, expected 1", len(got))
	}
}
