package output

import "fmt"

// MarkdownSummaryWriter writes summary reports as Markdown.
type MarkdownSummaryWriter struct{}

// Write outputs the summary report as Markdown.
func (w *MarkdownSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Repository History Summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", report.Source)
	fmt.Fprintln(out, "| Metric | Value |")
	fmt.Fprintln(out, "|--------|-------|")
	fmt.Fprintf(out, "| Commits | %d |\n", report.Summary.Commits)
	fmt.Fprintf(out, "| Authors | %d |\n", report.Summary.Authors)
	fmt.Fprintf(out, "| Distinct files | %d |\n", report.Summary.DistinctFiles)
	fmt.Fprintf(out, "| Changed files | %d |\n", report.Summary.ChangedFiles)
	return nil
}

// MarkdownCommitWriter writes parsed commit lists as Markdown.
type MarkdownCommitWriter struct{}

// Write outputs the commit list as Markdown.
func (w *MarkdownCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Parsed Commits")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", report.Source)
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", len(report.Entries))

	fmt.Fprintln(out, "| # | ID | Date | Author | Files | Added | Removed |")
	fmt.Fprintln(out, "|---|----|------|--------|-------|-------|---------|")
	for i, e := range entries {
		added, removed := 0, 0
		for _, c := range e.Changes {
			added += c.Added.Count()
			removed += c.Removed.Count()
		}
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %d | %d | %d |\n",
			i+1, e.ID, e.Timestamp.Format(reportDateLayout), e.Author,
			len(e.Changes), added, removed)
	}
	return nil
}

// MarkdownFileStatsWriter writes per-file stats as Markdown.
type MarkdownFileStatsWriter struct{}

// Write outputs the file stats report as Markdown.
func (w *MarkdownFileStatsWriter) Write(report *FileStatsReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# File Activity")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", report.Source)
	fmt.Fprintf(out, "**Total Files:** %d\n\n", len(report.Items))

	fmt.Fprintln(out, "| # | Path | Commits | Added | Removed | Authors | Last touched |")
	fmt.Fprintln(out, "|---|------|---------|-------|---------|---------|--------------|")
	for i, fs := range items {
		fmt.Fprintf(out, "| %d | `%s` | %d | %d | %d | %d | %s |\n",
			i+1, fs.Path, fs.Commits, fs.LinesAdded, fs.LinesRemoved,
			fs.AuthorCount(), fs.LastTouched.Format(reportDateLayout))
	}
	return nil
}
