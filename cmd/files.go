package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mgrim/logstat/internal/aggregation"
	"github.com/mgrim/logstat/internal/output"
)

// FilesCmd returns the files command.
func FilesCmd() *cli.Command {
	return &cli.Command{
		Name:    "files",
		Aliases: []string{"f"},
		Usage:   "Show per-file activity across the parsed history",
		Flags:   commonFlags(),
		Action:  filesAction,
	}
}

func filesAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasEntries() {
		ctx.PrintNoEntriesMessage()
		return nil
	}

	report := &output.FileStatsReport{
		Source:      ctx.Source,
		GeneratedAt: time.Now(),
		Items:       aggregation.CollectFileStats(ctx.Entries),
	}

	writer := output.NewFileStatsWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, OutputOptions(c))
}
