// Package output renders parsed history reports in several formats.
package output

import (
	"time"

	"github.com/mgrim/logstat/internal/aggregation"
	"github.com/mgrim/logstat/internal/gitlog"
)

// Compile-time interface conformance checks.
var (
	_ SummaryWriter = (*ConsoleSummaryWriter)(nil)
	_ SummaryWriter = (*JSONSummaryWriter)(nil)
	_ SummaryWriter = (*CSVSummaryWriter)(nil)
	_ SummaryWriter = (*MarkdownSummaryWriter)(nil)

	_ CommitWriter = (*ConsoleCommitWriter)(nil)
	_ CommitWriter = (*JSONCommitWriter)(nil)
	_ CommitWriter = (*CSVCommitWriter)(nil)
	_ CommitWriter = (*MarkdownCommitWriter)(nil)

	_ FileStatsWriter = (*ConsoleFileStatsWriter)(nil)
	_ FileStatsWriter = (*JSONFileStatsWriter)(nil)
	_ FileStatsWriter = (*CSVFileStatsWriter)(nil)
	_ FileStatsWriter = (*MarkdownFileStatsWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// SummaryReport holds the aggregate result of one parsed log.
type SummaryReport struct {
	Source      string // log file path or repository path
	GeneratedAt time.Time
	Summary     aggregation.Summary
}

// CommitReport holds the full parsed entry list.
type CommitReport struct {
	Source      string
	GeneratedAt time.Time
	Entries     []gitlog.LogEntry
}

// FileStatsReport holds the per-file rollup.
type FileStatsReport struct {
	Source      string
	GeneratedAt time.Time
	Items       []*aggregation.FileStats
}

// SummaryWriter writes summary reports.
type SummaryWriter interface {
	Write(report *SummaryReport, options OutputOptions) error
}

// CommitWriter writes parsed commit lists.
type CommitWriter interface {
	Write(report *CommitReport, options OutputOptions) error
}

// FileStatsWriter writes per-file stats reports.
type FileStatsWriter interface {
	Write(report *FileStatsReport, options OutputOptions) error
}

// NewSummaryWriter creates a summary writer for the specified format.
func NewSummaryWriter(format OutputFormat) SummaryWriter {
	switch format {
	case FormatJSON:
		return &JSONSummaryWriter{}
	case FormatCSV:
		return &CSVSummaryWriter{}
	case FormatMarkdown:
		return &MarkdownSummaryWriter{}
	default:
		return &ConsoleSummaryWriter{}
	}
}

// NewCommitWriter creates a commit list writer for the specified format.
func NewCommitWriter(format OutputFormat) CommitWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitWriter{}
	case FormatCSV:
		return &CSVCommitWriter{}
	case FormatMarkdown:
		return &MarkdownCommitWriter{}
	default:
		return &ConsoleCommitWriter{}
	}
}

// NewFileStatsWriter creates a file stats writer for the specified format.
func NewFileStatsWriter(format OutputFormat) FileStatsWriter {
	switch format {
	case FormatJSON:
		return &JSONFileStatsWriter{}
	case FormatCSV:
		return &CSVFileStatsWriter{}
	case FormatMarkdown:
		return &MarkdownFileStatsWriter{}
	default:
		return &ConsoleFileStatsWriter{}
	}
}
