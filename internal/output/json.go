package output

import (
	"encoding/json"
	"time"
)

// JSONSummaryWriter writes summary reports as JSON.
type JSONSummaryWriter struct{}

// JSONSummaryReport is the JSON output structure for the summary.
type JSONSummaryReport struct {
	Source        string `json:"source"`
	GeneratedAt   string `json:"generatedAt"`
	Commits       int    `json:"commits"`
	Authors       int    `json:"authors"`
	DistinctFiles int    `json:"distinctFiles"`
	ChangedFiles  int    `json:"changedFiles"`
}

// Write outputs the summary report as JSON.
func (w *JSONSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	return writeJSON(JSONSummaryReport{
		Source:        report.Source,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
		Commits:       report.Summary.Commits,
		Authors:       report.Summary.Authors,
		DistinctFiles: report.Summary.DistinctFiles,
		ChangedFiles:  report.Summary.ChangedFiles,
	}, options.OutputPath)
}

// JSONCommitWriter writes parsed commit lists as JSON.
type JSONCommitWriter struct{}

// JSONCommitReport is the JSON output structure for the commit list.
type JSONCommitReport struct {
	Source       string       `json:"source"`
	GeneratedAt  string       `json:"generatedAt"`
	TotalCommits int          `json:"totalCommits"`
	Commits      []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	ID      string       `json:"id"`
	Date    string       `json:"date"`
	Author  string       `json:"author"`
	Changes []JSONChange `json:"changes"`
}

// JSONChange is the JSON output structure for a single file change. Added
// and removed are null when the underlying numstat field was non-numeric.
type JSONChange struct {
	Path    string `json:"path"`
	Added   *int   `json:"added"`
	Removed *int   `json:"removed"`
}

// Write outputs the commit list as JSON.
func (w *JSONCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	commits := make([]JSONCommit, len(entries))
	for i, e := range entries {
		changes := make([]JSONChange, len(e.Changes))
		for j, c := range e.Changes {
			changes[j] = JSONChange{
				Path:    c.Path,
				Added:   deltaPtr(c.Added.Count(), c.Added.Applicable()),
				Removed: deltaPtr(c.Removed.Count(), c.Removed.Applicable()),
			}
		}
		commits[i] = JSONCommit{
			ID:      e.ID,
			Date:    e.Timestamp.Format(reportDateLayout),
			Author:  e.Author,
			Changes: changes,
		}
	}

	return writeJSON(JSONCommitReport{
		Source:       report.Source,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Entries),
		Commits:      commits,
	}, options.OutputPath)
}

// JSONFileStatsWriter writes per-file stats as JSON.
type JSONFileStatsWriter struct{}

// JSONFileStatsReport is the JSON output structure for file stats.
type JSONFileStatsReport struct {
	Source      string         `json:"source"`
	GeneratedAt string         `json:"generatedAt"`
	TotalFiles  int            `json:"totalFiles"`
	Files       []JSONFileItem `json:"files"`
}

// JSONFileItem is the JSON output structure for a single file.
type JSONFileItem struct {
	Path         string `json:"path"`
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"linesAdded"`
	LinesRemoved int    `json:"linesRemoved"`
	Authors      int    `json:"authors"`
	LastTouched  string `json:"lastTouched"`
}

// Write outputs the file stats report as JSON.
func (w *JSONFileStatsWriter) Write(report *FileStatsReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	files := make([]JSONFileItem, len(items))
	for i, fs := range items {
		files[i] = JSONFileItem{
			Path:         fs.Path,
			Commits:      fs.Commits,
			LinesAdded:   fs.LinesAdded,
			LinesRemoved: fs.LinesRemoved,
			Authors:      fs.AuthorCount(),
			LastTouched:  fs.LastTouched.Format(reportDateLayout),
		}
	}

	return writeJSON(JSONFileStatsReport{
		Source:      report.Source,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		TotalFiles:  len(report.Items),
		Files:       files,
	}, options.OutputPath)
}

func deltaPtr(n int, applicable bool) *int {
	if !applicable {
		return nil
	}
	return &n
}

func writeJSON(v any, outputPath string) error {
	out, file, err := createWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
