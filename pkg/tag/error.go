package tag

import (
	"fmt"

	"github.com/yaklabco/tuimarkup/pkg/markup"
)

// ErrorKind classifies a conversion failure.
type ErrorKind uint8

const (
	// ErrorKindInvalidTag is a tag that is neither a known builtin nor an accepted custom tag.
	ErrorKindInvalidTag ErrorKind = iota + 1
)

// String returns the human-readable reason.
func (k ErrorKind) String() string {
	if k == ErrorKindInvalidTag {
		return "invalid tag"
	}
	return "unknown error"
}

// Error reports a tag that could not be converted.
type Error struct {
	Kind ErrorKind
	Span markup.Span
}

var _ markup.LocatedError = (*Error)(nil)

func (e *Error) Error() string {
	line, column := e.Location()
	return fmt.Sprintf("%s near %d:%d", e.Reason(), line, column)
}

// Reason describes the error without its location.
func (e *Error) Reason() string {
	return fmt.Sprintf("%s %q", e.Kind, e.Span.Fragment())
}

// Location implements markup.LocatedError.
func (e *Error) Location() (int, int) {
	return e.Span.Line(), e.Span.Column()
}
