// Package gitlog parses exported git history logs into validated commit
// entries. The expected format is the output of
//
//	git log --pretty=format:'%h--%as--%an' --numstat --date=short
//
// with the single quotes preserved verbatim: blocks are blank-line
// separated, each block leading with one quoted, double-dash-separated
// header line followed by tab-separated numstat rows. A blank line inside
// one commit's change list is indistinguishable from a block boundary and
// is not handled.
package gitlog

import (
	"slices"
	"strings"
	"time"
)

const (
	blockSep = "\n\n"
	fieldSep = "--"
	quote    = "'"
)

// Parse converts the full raw log text into commit entries. Parsing is
// all-or-nothing: the first malformed line fails the whole parse and no
// partial entry list is returned.
func Parse(text string) ([]LogEntry, error) {
	blocks := strings.Split(text, blockSep)

	entries := make([]LogEntry, 0, len(blocks))
	for _, block := range blocks {
		blockEntries, err := parseBlock(block)
		if err != nil {
			return nil, err
		}
		entries = append(entries, blockEntries...)
	}
	return entries, nil
}

// parseBlock parses one blank-line-delimited chunk. A block's leading run
// of header-like lines produces one entry each, every header sharing the
// block's fully parsed change rows. Headers and changes must all parse for
// the block to produce anything.
func parseBlock(block string) ([]LogEntry, error) {
	lines := blockLines(block)
	if len(lines) == 0 {
		return nil, nil
	}

	split := 0
	for split < len(lines) && isHeaderLine(lines[split]) {
		split++
	}

	headers, err := parseEach(lines[:split], parseHeader)
	if err != nil {
		return nil, err
	}
	changes, err := parseEach(lines[split:], parseChange)
	if err != nil {
		return nil, err
	}

	entries := make([]LogEntry, 0, len(headers))
	for _, h := range headers {
		entries = append(entries, LogEntry{
			ID:        h.id,
			Timestamp: h.when,
			Author:    h.author,
			Changes:   slices.Clone(changes),
		})
	}
	return entries, nil
}

// blockLines splits a block into lines. A single trailing newline is line
// termination, not an empty trailing line.
func blockLines(block string) []string {
	block = strings.TrimSuffix(block, "\n")
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}

// isHeaderLine reports whether a line looks like a commit header rather
// than a numstat row: quoted, with the double-dash field separator.
func isHeaderLine(line string) bool {
	return strings.HasPrefix(line, quote) && strings.Contains(line, fieldSep)
}

type header struct {
	id     string
	when   time.Time
	author string
}

// parseHeader parses one quoted header line: strip the quotes, split on
// the field separator, drop empty fragments (leading or trailing
// separators produce them), and require exactly id, date, author.
func parseHeader(line string) (header, error) {
	stripped := strings.ReplaceAll(line, quote, "")

	fields := make([]string, 0, 3)
	for _, f := range strings.Split(stripped, fieldSep) {
		if f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) != 3 {
		return header{}, &ParseError{Kind: KindMalformedHeader, Line: line}
	}

	when, err := ParseTimestamp(fields[1])
	if err != nil {
		return header{}, &ParseError{Kind: KindInvalidTimestamp, Line: line, Err: err}
	}

	return header{id: fields[0], when: when, author: fields[2]}, nil
}

// parseChange parses one tab-separated numstat row: added, removed, path.
func parseChange(line string) (ChangeRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return ChangeRecord{}, &ParseError{Kind: KindMalformedChange, Line: line}
	}
	return ChangeRecord{
		Added:   ParseLineDelta(fields[0]),
		Removed: ParseLineDelta(fields[1]),
		Path:    fields[2],
	}, nil
}

// parseEach parses every line, stopping at the first failure.
func parseEach[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
