// Package aggregation derives aggregate statistics from parsed log entries.
package aggregation

import "github.com/mgrim/logstat/internal/gitlog"

// Summary holds the aggregate counts over a full parsed history.
type Summary struct {
	Authors       int // distinct author names, exact string match
	Commits       int // total entries
	DistinctFiles int // distinct paths across all change records
	ChangedFiles  int // total change records; a file touched twice counts twice
}

// Summarize computes the Summary for a collection of entries. It is a pure
// function of the collection: order-independent and repeatable.
func Summarize(entries []gitlog.LogEntry) Summary {
	authors := make(map[string]struct{})
	files := make(map[string]struct{})
	changed := 0

	for _, e := range entries {
		authors[e.Author] = struct{}{}
		for _, c := range e.Changes {
			files[c.Path] = struct{}{}
			changed++
		}
	}

	return Summary{
		Authors:       len(authors),
		Commits:       len(entries),
		DistinctFiles: len(files),
		ChangedFiles:  changed,
	}
}
