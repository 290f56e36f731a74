package git

import (
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/mgrim/logstat/internal/gitlog"
)

// ReadOptions configures the go-git history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time
	MaxCount int
}

// HistoryReader reads commit history straight from the repository objects,
// producing the same entries the text pipeline yields without the
// export/parse round-trip.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewHistoryReader opens the repository at opts.RepoPath.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ReadEntries walks the history and returns one entry per commit, newest
// first, matching git log order.
func (r *HistoryReader) ReadEntries() ([]gitlog.LogEntry, error) {
	from, err := r.startHash()
	if err != nil {
		return nil, err
	}

	logOpts := &git.LogOptions{From: from}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	var entries []gitlog.LogEntry

	err = cIter.ForEach(func(c *object.Commit) error {
		if r.opts.MaxCount > 0 && len(entries) >= r.opts.MaxCount {
			return storer.ErrStop
		}

		changes, err := commitChanges(c)
		if err != nil {
			return err
		}

		entries = append(entries, gitlog.LogEntry{
			ID:        c.Hash.String()[:7],
			Timestamp: dateOnly(c.Author.When),
			Author:    c.Author.Name,
			Changes:   changes,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *HistoryReader) startHash() (plumbing.Hash, error) {
	rev := r.opts.Branch
	if rev == "" {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}

// dateOnly drops the time of day, matching the %as date the text export
// carries.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// commitChanges converts a commit's diff stats into change records. Merge
// commits with no diff yield an empty change list, which is a legal entry.
func commitChanges(c *object.Commit) ([]gitlog.ChangeRecord, error) {
	stats, err := c.Stats()
	if err != nil {
		return nil, err
	}

	changes := make([]gitlog.ChangeRecord, 0, len(stats))
	for _, st := range stats {
		changes = append(changes, gitlog.ChangeRecord{
			Added:   gitlog.CountOf(st.Addition),
			Removed: gitlog.CountOf(st.Deletion),
			Path:    st.Name,
		})
	}
	return changes, nil
}
