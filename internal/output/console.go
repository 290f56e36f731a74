package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleSummaryWriter writes summary reports to the console.
type ConsoleSummaryWriter struct{}

// Write outputs the summary report to the console.
func (w *ConsoleSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	color.Green("Repository History Summary")
	fmt.Printf("Source: %s\n\n", report.Source)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Commits\t%d\n", report.Summary.Commits)
	fmt.Fprintf(tw, "Authors\t%d\n", report.Summary.Authors)
	fmt.Fprintf(tw, "Distinct files\t%d\n", report.Summary.DistinctFiles)
	fmt.Fprintf(tw, "Changed files\t%d\n", report.Summary.ChangedFiles)
	return tw.Flush()
}

// ConsoleCommitWriter writes parsed commit lists to the console.
type ConsoleCommitWriter struct{}

// Write outputs the commit list to the console.
func (w *ConsoleCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	color.Green("Parsed Commits")
	fmt.Printf("Source: %s\n", report.Source)
	fmt.Printf("Total commits: %d\n\n", len(report.Entries))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tDate\tAuthor\tFiles\tAdded\tRemoved")
	for i, e := range entries {
		added, removed := 0, 0
		for _, c := range e.Changes {
			added += c.Added.Count()
			removed += c.Removed.Count()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\n",
			i+1,
			e.ID,
			e.Timestamp.Format(reportDateLayout),
			e.Author,
			len(e.Changes),
			added,
			removed,
		)
	}
	return tw.Flush()
}

// ConsoleFileStatsWriter writes per-file stats to the console.
type ConsoleFileStatsWriter struct{}

// Write outputs the file stats report to the console.
func (w *ConsoleFileStatsWriter) Write(report *FileStatsReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	color.Green("File Activity")
	fmt.Printf("Source: %s\n", report.Source)
	fmt.Printf("Total files: %d\n\n", len(report.Items))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPath\tCommits\tAdded\tRemoved\tAuthors\tLast touched")
	for i, fs := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
			i+1,
			fs.Path,
			fs.Commits,
			fs.LinesAdded,
			fs.LinesRemoved,
			fs.AuthorCount(),
			fs.LastTouched.Format(reportDateLayout),
		)
	}
	return tw.Flush()
}
