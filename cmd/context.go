package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mgrim/logstat/config"
	"github.com/mgrim/logstat/internal/git"
	"github.com/mgrim/logstat/internal/gitlog"
	"github.com/mgrim/logstat/internal/output"
)

// CommandContext holds common state for command execution: the loaded
// configuration, where the entries came from, and the parsed (and filtered)
// entries themselves.
type CommandContext struct {
	Config  *config.Config
	Source  string
	Entries []gitlog.LogEntry
}

// NewCommandContext creates a context from CLI flags. It loads the
// configuration, acquires the raw history (log file, git CLI export, or
// go-git), parses it, and applies the path filters.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	source, entries, err := loadEntries(c, cfg)
	if err != nil {
		return nil, err
	}

	filter := gitlog.NewPathFilter(cfg.Filters.Include, cfg.Filters.Exclude)
	entries = filter.Apply(entries)

	return &CommandContext{
		Config:  cfg,
		Source:  source,
		Entries: entries,
	}, nil
}

func loadEntries(c *cli.Context, cfg *config.Config) (string, []gitlog.LogEntry, error) {
	if logPath := c.String("log"); logPath != "" {
		entries, err := parseLogFile(logPath)
		return logPath, entries, err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return "", nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return "", nil, fmt.Errorf("invalid until date: %w", err)
	}

	repoPath := c.String("repo")
	branch := c.String("branch")
	if branch == "" {
		branch = cfg.Export.Branch
	}
	maxCount := c.Int("max-count")
	if maxCount == 0 {
		maxCount = cfg.Export.MaxCount
	}

	if c.Bool("native") {
		reader, err := git.NewHistoryReader(git.ReadOptions{
			RepoPath: repoPath,
			Branch:   branch,
			Since:    since,
			Until:    until,
			MaxCount: maxCount,
		})
		if err != nil {
			return "", nil, fmt.Errorf("failed to open repository: %w", err)
		}
		entries, err := reader.ReadEntries()
		if err != nil {
			return "", nil, fmt.Errorf("failed to read history: %w", err)
		}
		return repoPath, entries, nil
	}

	text, err := git.ExportLog(context.Background(), git.ExportOptions{
		RepoPath: repoPath,
		Branch:   branch,
		Since:    since,
		Until:    until,
		MaxCount: maxCount,
	})
	if err != nil {
		return "", nil, err
	}

	entries, err := gitlog.Parse(text)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse log: %w", err)
	}
	return repoPath, entries, nil
}

func parseLogFile(path string) ([]gitlog.LogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	entries, err := gitlog.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

// HasEntries returns true if any commits were parsed.
func (ctx *CommandContext) HasEntries() bool {
	return len(ctx.Entries) > 0
}

// PrintNoEntriesMessage prints a message when no commits are found.
func (ctx *CommandContext) PrintNoEntriesMessage() {
	fmt.Println("No commits found.")
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}
