package gitlog

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	KindMalformedHeader ErrorKind = iota + 1
	KindInvalidTimestamp
	KindMalformedChange
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedHeader:
		return "malformed header"
	case KindInvalidTimestamp:
		return "invalid timestamp"
	case KindMalformedChange:
		return "malformed change"
	default:
		return "unknown"
	}
}

// ParseError is the single failure type of the parser. It carries the
// offending raw line and, for timestamp failures, the underlying cause.
type ParseError struct {
	Kind ErrorKind
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
