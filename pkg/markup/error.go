package markup

import (
	"fmt"
)

// LocatedError is an error with a source location.
// Errors from every compile stage implement it, so callers can report a
// position regardless of which stage failed.
type LocatedError interface {
	error

	// Location returns the 1-based line and column of the error.
	Location() (line, column int)
}

// ErrorKind classifies a parse failure.
type ErrorKind uint8

// Parse error kinds. errorKindUnset marks an error whose kind has not been attached yet.
const (
	errorKindUnset ErrorKind = iota

	// ErrorKindUnescapedChar is a bare '<', '>' or trailing '\'.
	ErrorKindUnescapedChar

	// ErrorKindUnescapableChar is a '\' followed by a character that cannot be escaped.
	ErrorKindUnescapableChar

	// ErrorKindElementNotClose is an element that reaches the end of the line without '>'.
	ErrorKindElementNotClose
)

// String returns the human-readable reason.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnescapedChar:
		return "unescaped character"
	case ErrorKindUnescapableChar:
		return "unescapable character"
	case ErrorKindElementNotClose:
		return "expect '>' to close element for element starter"
	default:
		return "unknown error"
	}
}

// Error is a parse error with the span it refers to.
// Error values are comparable.
type Error struct {
	Kind ErrorKind
	Span Span
}

var _ LocatedError = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	line, column := e.Location()
	return fmt.Sprintf("%s near %d:%d", e.Reason(), line, column)
}

// Reason describes the error without its location.
func (e *Error) Reason() string {
	if r, ok := e.Span.FirstRune(); ok {
		return fmt.Sprintf("%s '%c'", e.Kind, r)
	}
	return e.Kind.String()
}

// Location implements LocatedError.
func (e *Error) Location() (int, int) {
	return e.Span.Line(), e.Span.Column()
}

// attach sets the kind if none has been set yet.
func (e *Error) attach(kind ErrorKind) *Error {
	if e.Kind == errorKindUnset {
		e.Kind = kind
	}
	return e
}
