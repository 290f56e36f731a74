// Package git produces log entries from a repository, either by exporting
// the textual log that internal/gitlog parses, or by reading history
// directly through go-git.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// prettyFormat is the header convention the parser expects. The quotes are
// part of the format string: git receives them verbatim (no shell expansion
// through exec.Command), so every header line comes out quote-wrapped.
const prettyFormat = "'%h--%as--%an'"

// ExportOptions configures a log export.
type ExportOptions struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time
	MaxCount int
}

// ExportLog runs git log and returns the raw text in the format consumed
// by gitlog.Parse.
func ExportLog(ctx context.Context, opts ExportOptions) (string, error) {
	args := buildLogArgs(opts)

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

func buildLogArgs(opts ExportOptions) []string {
	args := []string{
		"-C", opts.RepoPath,
		"log",
		"--no-color",
		"--pretty=format:" + prettyFormat,
		"--numstat",
		"--date=short",
	}

	if opts.Since != nil {
		args = append(args, fmt.Sprintf("--since=@%d", opts.Since.Unix()))
	}
	if opts.Until != nil {
		args = append(args, fmt.Sprintf("--until=@%d", opts.Until.Unix()))
	}
	if opts.MaxCount > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", opts.MaxCount))
	}

	rev := strings.TrimSpace(opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	return args
}
