package gitlog

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter selects change records by glob patterns. Exclude wins over
// include; an empty include list accepts every path.
type PathFilter struct {
	include []string
	exclude []string
}

// NewPathFilter creates a filter from include/exclude doublestar patterns.
func NewPathFilter(include, exclude []string) *PathFilter {
	return &PathFilter{include: include, exclude: exclude}
}

// Empty reports whether the filter has no patterns at all.
func (f *PathFilter) Empty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

// Match reports whether a path passes the filter.
func (f *PathFilter) Match(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range f.exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}
	for _, pattern := range f.include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

// Apply returns entries with non-matching change records removed. Entries
// themselves are never dropped: a commit whose files are all filtered out
// still counts as a commit.
func (f *PathFilter) Apply(entries []LogEntry) []LogEntry {
	if f.Empty() {
		return entries
	}

	out := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		kept := make([]ChangeRecord, 0, len(e.Changes))
		for _, c := range e.Changes {
			if f.Match(c.Path) {
				kept = append(kept, c)
			}
		}
		e.Changes = kept
		out = append(out, e)
	}
	return out
}
