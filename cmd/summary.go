package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mgrim/logstat/internal/aggregation"
	"github.com/mgrim/logstat/internal/gitlog"
	"github.com/mgrim/logstat/internal/output"
)

// SummaryCmd returns the summary command.
func SummaryCmd() *cli.Command {
	return &cli.Command{
		Name:    "summary",
		Aliases: []string{"s"},
		Usage:   "Parse the history log and print aggregate statistics",
		Flags:   commonFlags(),
		Action:  summaryAction,
	}
}

func summaryAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	report := &output.SummaryReport{
		Source:      ctx.Source,
		GeneratedAt: time.Now(),
		Summary:     aggregation.Summarize(ctx.Entries),
	}

	writer := output.NewSummaryWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, OutputOptions(c))
}

// summarizeLogFile parses a pre-exported log file and prints its summary
// with default output options. Used by the bare-argument invocation.
func summarizeLogFile(c *cli.Context, path string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	entries, err := parseLogFile(path)
	if err != nil {
		return err
	}
	entries = gitlog.NewPathFilter(cfg.Filters.Include, cfg.Filters.Exclude).Apply(entries)

	report := &output.SummaryReport{
		Source:      path,
		GeneratedAt: time.Now(),
		Summary:     aggregation.Summarize(entries),
	}

	writer := output.NewSummaryWriter(getOutputFormat(cfg.Output.Format))
	return writer.Write(report, output.OutputOptions{Top: cfg.Output.Top})
}
