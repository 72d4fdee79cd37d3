package markup

import (
	"strings"
	"unicode/utf8"
)

// Delimiters of the markup grammar.
const (
	elementOpen  = '<'
	elementClose = '>'
	escapeChar   = '\\'
	tagSeparator = ','
	headerEnd    = ' '
)

// outcome is the three-way result of a grammar rule.
type outcome uint8

const (
	// matched means the rule consumed input and produced a value.
	matched outcome = iota

	// noMatch is a soft failure: the caller may try another rule at the same position.
	noMatch

	// fatal is a hard failure that must propagate to the top of the line.
	fatal
)

// result carries the value and remaining input of a rule, or the failure.
type result[T any] struct {
	value T
	rest  Span
	state outcome
	err   *Error
}

func ok[T any](value T, rest Span) result[T] {
	return result[T]{value: value, rest: rest, state: matched}
}

func soft[T any](input Span, err *Error) result[T] {
	return result[T]{rest: input, state: noMatch, err: err}
}

func hard[T any](input Span, err *Error) result[T] {
	return result[T]{rest: input, state: fatal, err: err}
}

// commit escalates a failure inside an element body to a fatal ElementNotClose
// anchored at the element's opening bracket.
func commit[T any](res result[T], opener Span) result[T] {
	if res.state == matched {
		return res
	}

	err := res.err
	if err == nil {
		err = &Error{Span: opener}
	}
	err.attach(ErrorKindElementNotClose)
	if err.Kind == ErrorKindElementNotClose {
		err.Span = opener
	}

	return hard[T](res.rest, err)
}

// Parse parses markup source into one item list per line.
//
// The source is split on '\n' only; '\r' is an ordinary character. An empty source
// yields a single empty line. Parsing stops at the first line that fails, and the
// returned error is a *Error.
func Parse(source string) ([][]Item, error) {
	lines := strings.Split(source, "\n")
	ast := make([][]Item, 0, len(lines))

	for idx, line := range lines {
		items, err := ParseLine(line, idx+1)
		if err != nil {
			return nil, err
		}
		ast = append(ast, items)
	}

	return ast, nil
}

// ParseLine parses a single line. lineNo is 1-based and is recorded in every span.
// The line must not contain '\n'.
func ParseLine(line string, lineNo int) ([]Item, error) {
	items, err := parseLine(NewSpan(line, lineNo))
	if err != nil {
		return nil, err
	}
	return items, nil
}

// parseLine consumes items until the end of input.
func parseLine(input Span) ([]Item, *Error) {
	items := []Item{}

	for !input.IsEmpty() {
		res := parseItem(input)
		if res.state != matched {
			return nil, res.err.attach(ErrorKindUnescapedChar)
		}
		items = append(items, res.value)
		input = res.rest
	}

	return items, nil
}

// parseItems consumes items until one fails softly.
// A fatal failure is returned as is.
func parseItems(input Span) result[[]Item] {
	items := []Item{}

	for {
		res := parseItem(input)
		switch res.state {
		case matched:
			items = append(items, res.value)
			input = res.rest
		case noMatch:
			return ok(items, input)
		default:
			return hard[[]Item](res.rest, res.err)
		}
	}
}

// parseItem tries an element first, then falls back to plain text.
func parseItem(input Span) result[Item] {
	elem := parseElement(input)
	if elem.state != noMatch {
		return elem
	}

	text := parsePlainText(input)
	if text.state != matched {
		return soft[Item](input, text.err)
	}

	return ok(PlainText(text.value), text.rest)
}

// parseElement parses '<' tag_list ' ' item* '>'.
// Failing before the header is complete is a soft failure; after it, a hard one.
func parseElement(input Span) result[Item] {
	if !input.HasPrefixRune(elementOpen) {
		return soft[Item](input, nil)
	}
	opener, rest := input.Take(1)

	tags := parseTagList(rest)
	if tags.state != matched {
		return soft[Item](input, nil)
	}
	rest = tags.rest

	if !rest.HasPrefixRune(headerEnd) {
		return soft[Item](input, nil)
	}
	_, rest = rest.Take(1)

	children := commit(parseItems(rest), opener)
	if children.state != matched {
		return hard[Item](input, children.err)
	}
	rest = children.rest

	if !rest.HasPrefixRune(elementClose) {
		return commit(soft[Item](rest, nil), opener)
	}
	_, rest = rest.Take(1)

	return ok(Element(tags.value, children.value), rest)
}

// parseTagList parses tag_name (',' tag_name)*.
// A trailing separator not followed by a tag name is left unconsumed.
func parseTagList(input Span) result[[]Span] {
	first := parseTagName(input)
	if first.state != matched {
		return soft[[]Span](input, nil)
	}

	tags := []Span{first.value}
	rest := first.rest

	for rest.HasPrefixRune(tagSeparator) {
		_, afterSep := rest.Take(1)
		next := parseTagName(afterSep)
		if next.state != matched {
			break
		}
		tags = append(tags, next.value)
		rest = next.rest
	}

	return ok(tags, rest)
}

// parseTagName consumes one or more tag characters.
func parseTagName(input Span) result[Span] {
	fragment := input.Fragment()

	n := 0
	for n < len(fragment) && isTagChar(fragment[n]) {
		n++
	}
	if n == 0 {
		return soft[Span](input, nil)
	}

	name, rest := input.Take(n)
	return ok(name, rest)
}

// isTagChar reports whether c may appear in a tag name.
func isTagChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ':' || c == '+' || c == '-':
		return true
	default:
		return false
	}
}

// isEscapable reports whether r may follow an escape character.
func isEscapable(r rune) bool {
	return r == elementOpen || r == elementClose || r == escapeChar
}

// parsePlainText consumes a non-empty run of normal characters and escape pairs.
// All failures are soft; the error describes the offending character.
func parsePlainText(input Span) result[Span] {
	fragment := input.Fragment()

	idx := 0
	for idx < len(fragment) {
		r, size := utf8.DecodeRuneInString(fragment[idx:])

		switch r {
		case elementOpen, elementClose:
			if idx == 0 {
				return soft[Span](input, &Error{
					Kind: ErrorKindUnescapedChar,
					Span: input.Slice(0, size),
				})
			}
			text, rest := input.Take(idx)
			return ok(text, rest)

		case escapeChar:
			if idx+size >= len(fragment) {
				// A trailing escape has nothing to escape. A run that began
				// with an escape is reported at its start.
				span := input.LastRune()
				if input.HasPrefixRune(escapeChar) {
					span = input.Slice(0, 1)
				}
				return soft[Span](input, &Error{
					Kind: ErrorKindUnescapedChar,
					Span: span,
				})
			}

			next, nextSize := utf8.DecodeRuneInString(fragment[idx+size:])
			if !isEscapable(next) {
				return soft[Span](input, &Error{
					Kind: ErrorKindUnescapableChar,
					Span: input.Slice(idx+size, idx+size+nextSize),
				})
			}
			idx += size + nextSize

		default:
			idx += size
		}
	}

	if idx == 0 {
		return soft[Span](input, &Error{Span: input})
	}

	text, rest := input.Take(idx)
	return ok(text, rest)
}
