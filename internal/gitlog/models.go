package gitlog

import "time"

// LogEntry represents one fully parsed commit record.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Author    string
	Changes   []ChangeRecord
}

// ChangeRecord represents one file touched by a commit.
type ChangeRecord struct {
	Added   LineDelta
	Removed LineDelta
	Path    string
}

// Churn returns total lines changed (added + removed).
// Not-applicable deltas contribute zero.
func (c ChangeRecord) Churn() int {
	return c.Added.Count() + c.Removed.Count()
}
