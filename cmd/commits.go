package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mgrim/logstat/internal/output"
)

// CommitsCmd returns the commits command.
func CommitsCmd() *cli.Command {
	return &cli.Command{
		Name:    "commits",
		Aliases: []string{"c"},
		Usage:   "List the parsed commit entries",
		Flags:   commonFlags(),
		Action:  commitsAction,
	}
}

func commitsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasEntries() {
		ctx.PrintNoEntriesMessage()
		return nil
	}

	report := &output.CommitReport{
		Source:      ctx.Source,
		GeneratedAt: time.Now(),
		Entries:     ctx.Entries,
	}

	writer := output.NewCommitWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, OutputOptions(c))
}
