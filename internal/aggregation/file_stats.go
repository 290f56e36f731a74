package aggregation

import (
	"sort"
	"time"

	"github.com/mgrim/logstat/internal/gitlog"
)

// FileStats holds the per-file rollup across all entries.
type FileStats struct {
	Path         string
	Commits      int
	LinesAdded   int
	LinesRemoved int
	LastTouched  time.Time
	Authors      map[string]struct{}
}

// AuthorCount returns the number of distinct authors that touched the file.
func (f *FileStats) AuthorCount() int {
	return len(f.Authors)
}

// Churn returns total lines changed (added + removed).
func (f *FileStats) Churn() int {
	return f.LinesAdded + f.LinesRemoved
}

func newFileStats(path string) *FileStats {
	return &FileStats{
		Path:    path,
		Authors: make(map[string]struct{}),
	}
}

func (f *FileStats) addChange(entry gitlog.LogEntry, change gitlog.ChangeRecord) {
	f.Commits++
	f.LinesAdded += change.Added.Count()
	f.LinesRemoved += change.Removed.Count()
	if entry.Timestamp.After(f.LastTouched) {
		f.LastTouched = entry.Timestamp
	}
	f.Authors[entry.Author] = struct{}{}
}

// CollectFileStats aggregates per-file stats over all entries, sorted by
// commit count descending, then path ascending for a stable order.
func CollectFileStats(entries []gitlog.LogEntry) []*FileStats {
	byPath := make(map[string]*FileStats)
	for _, e := range entries {
		for _, c := range e.Changes {
			fs, ok := byPath[c.Path]
			if !ok {
				fs = newFileStats(c.Path)
				byPath[c.Path] = fs
			}
			fs.addChange(e, c)
		}
	}

	stats := make([]*FileStats, 0, len(byPath))
	for _, fs := range byPath {
		stats = append(stats, fs)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Commits != stats[j].Commits {
			return stats[i].Commits > stats[j].Commits
		}
		return stats[i].Path < stats[j].Path
	})
	return stats
}
