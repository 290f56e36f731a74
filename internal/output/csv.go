package output

import "strconv"

// CSVSummaryWriter writes summary reports as CSV.
type CSVSummaryWriter struct{}

// Write outputs the summary report as a single CSV row.
func (w *CSVSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Source", "Commits", "Authors", "DistinctFiles", "ChangedFiles"}); err != nil {
		return err
	}
	if err := writer.Write([]string{
		report.Source,
		strconv.Itoa(report.Summary.Commits),
		strconv.Itoa(report.Summary.Authors),
		strconv.Itoa(report.Summary.DistinctFiles),
		strconv.Itoa(report.Summary.ChangedFiles),
	}); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

// CSVCommitWriter writes parsed commit lists as CSV, one row per change.
type CSVCommitWriter struct{}

// Write outputs the commit list as CSV.
func (w *CSVCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"ID", "Date", "Author", "Path", "Added", "Removed"}); err != nil {
		return err
	}

	for _, e := range entries {
		if len(e.Changes) == 0 {
			row := []string{e.ID, e.Timestamp.Format(reportDateLayout), e.Author, "", "", ""}
			if err := writer.Write(row); err != nil {
				return err
			}
			continue
		}
		for _, c := range e.Changes {
			row := []string{
				e.ID,
				e.Timestamp.Format(reportDateLayout),
				e.Author,
				c.Path,
				c.Added.String(),
				c.Removed.String(),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVFileStatsWriter writes per-file stats as CSV.
type CSVFileStatsWriter struct{}

// Write outputs the file stats report as CSV.
func (w *CSVFileStatsWriter) Write(report *FileStatsReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Path", "Commits", "LinesAdded", "LinesRemoved", "Authors", "LastTouched"}); err != nil {
		return err
	}

	for _, fs := range items {
		row := []string{
			fs.Path,
			strconv.Itoa(fs.Commits),
			strconv.Itoa(fs.LinesAdded),
			strconv.Itoa(fs.LinesRemoved),
			strconv.Itoa(fs.AuthorCount()),
			fs.LastTouched.Format(reportDateLayout),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
