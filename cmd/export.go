package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mgrim/logstat/internal/git"
)

// ExportCmd returns the export command, which dumps the raw log text in
// the format the parser consumes. Useful for pre-exporting once and
// re-running analyses against the file.
func ExportCmd() *cli.Command {
	return &cli.Command{
		Name:   "export",
		Usage:  "Export the raw history log text from a repository",
		Flags:  commonFlags(),
		Action: exportAction,
	}
}

func exportAction(c *cli.Context) error {
	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return fmt.Errorf("invalid until date: %w", err)
	}

	text, err := git.ExportLog(context.Background(), git.ExportOptions{
		RepoPath: c.String("repo"),
		Branch:   c.String("branch"),
		Since:    since,
		Until:    until,
		MaxCount: c.Int("max-count"),
	})
	if err != nil {
		return err
	}

	if path := c.String("output"); path != "" {
		return os.WriteFile(path, []byte(text), 0644)
	}
	fmt.Print(text)
	return nil
}
