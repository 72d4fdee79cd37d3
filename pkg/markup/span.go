package markup

import (
	"unicode/utf8"
)

// Span is an immutable view into one source line.
// It records the fragment's byte offset inside the line and the 1-based line number,
// so any sub-span can report its own location without rescanning the source.
type Span struct {
	line   string
	offset int
	length int
	lineNo int
}

// NewSpan returns a span covering the whole line.
// lineNo is 1-based.
func NewSpan(line string, lineNo int) Span {
	return Span{line: line, offset: 0, length: len(line), lineNo: lineNo}
}

// Fragment returns the text covered by the span.
func (s Span) Fragment() string {
	return s.line[s.offset : s.offset+s.length]
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return s.Fragment()
}

// Offset returns the byte offset of the span within its line.
func (s Span) Offset() int {
	return s.offset
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.length
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.length == 0
}

// Line returns the 1-based line number.
func (s Span) Line() int {
	return s.lineNo
}

// Column returns the 1-based column of the span start, counted in runes.
func (s Span) Column() int {
	return utf8.RuneCountInString(s.line[:s.offset]) + 1
}

// Take splits the first n bytes off the span.
// n is clamped to [0, Len()].
func (s Span) Take(n int) (Span, Span) {
	n = min(max(n, 0), s.length)
	head := Span{line: s.line, offset: s.offset, length: n, lineNo: s.lineNo}
	rest := Span{line: s.line, offset: s.offset + n, length: s.length - n, lineNo: s.lineNo}
	return head, rest
}

// Slice returns the sub-span [start, end) relative to the fragment.
// Bounds are clamped to the fragment.
func (s Span) Slice(start, end int) Span {
	start = min(max(start, 0), s.length)
	end = min(max(end, start), s.length)
	return Span{line: s.line, offset: s.offset + start, length: end - start, lineNo: s.lineNo}
}

// FirstRune returns the first rune of the span.
func (s Span) FirstRune() (rune, bool) {
	if s.length == 0 {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(s.Fragment())
	return r, true
}

// LastRune returns the span of the final rune.
// An empty span is returned unchanged.
func (s Span) LastRune() Span {
	if s.length == 0 {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.Fragment())
	return s.Slice(s.length-size, s.length)
}

// HasPrefixRune reports whether the span starts with any of the given runes.
func (s Span) HasPrefixRune(runes ...rune) bool {
	first, ok := s.FirstRune()
	if !ok {
		return false
	}
	for _, r := range runes {
		if first == r {
			return true
		}
	}
	return false
}
