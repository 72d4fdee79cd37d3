package markup

import "strings"

// Unescape converts an escaped plain-text run into its unescaped pieces.
//
// Each escape character starts a new piece and is dropped; the character it escapes
// begins that piece. Empty pieces are never produced.
//
//	Unescape(`\>`)     // [">"]
//	Unescape(`1\<2`)   // ["1", "<2"]
//	Unescape(`a\\b`)   // ["a", "\b"]
func Unescape(escaped string) []string {
	var pieces []string

	cursor := 0
	lastIsEscape := false

	for idx, r := range escaped {
		if !lastIsEscape && r == escapeChar {
			lastIsEscape = true
			if idx > cursor {
				pieces = append(pieces, escaped[cursor:idx])
			}
			cursor = idx + 1
			continue
		}
		lastIsEscape = false
	}

	if len(escaped) > cursor {
		pieces = append(pieces, escaped[cursor:])
	}

	return pieces
}

// UnescapeString returns the fully unescaped text of an escaped run.
func UnescapeString(escaped string) string {
	return strings.Join(Unescape(escaped), "")
}
