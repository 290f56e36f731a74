package gitlog

import (
	"strconv"
	"time"
)

// TimestampLayout is the date format emitted by the log export
// (git log --date=short / %as).
const TimestampLayout = "2006-01-02"

// LineDelta is an added or removed line count for one change. A numstat
// field that is not a number (a binary file or a rename without a
// line-level diff prints "-") maps to the not-applicable zero value.
type LineDelta struct {
	count      int
	applicable bool
}

// CountOf returns a concrete line count.
func CountOf(n int) LineDelta {
	return LineDelta{count: n, applicable: true}
}

// ParseLineDelta converts a raw numstat field into a LineDelta. Any input
// that does not parse as a small base-10 integer yields the not-applicable
// value; this never fails.
func ParseLineDelta(raw string) LineDelta {
	// 16 bits is a numeric-ness probe, not a size contract: no sane diff
	// line count overflows it, and anything else is the "-" sentinel or
	// garbage that the sentinel absorbs.
	n, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		return LineDelta{}
	}
	return LineDelta{count: int(n), applicable: true}
}

// Applicable reports whether the delta carries a concrete count.
func (d LineDelta) Applicable() bool {
	return d.applicable
}

// Count returns the concrete count, or zero when not applicable.
func (d LineDelta) Count() int {
	if !d.applicable {
		return 0
	}
	return d.count
}

// String renders the delta the way numstat prints it.
func (d LineDelta) String() string {
	if !d.applicable {
		return "-"
	}
	return strconv.Itoa(d.count)
}

// ParseTimestamp parses the date field of a commit header.
func ParseTimestamp(raw string) (time.Time, error) {
	return time.Parse(TimestampLayout, raw)
}
