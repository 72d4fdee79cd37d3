// Package generator turns converted markup into styled output.
//
// Backends share the same shape: every element folds its tags into the style
// inherited from its parent, and every plain-text run becomes one or more
// segments carrying that style. Flatten implements the fold once; backends
// supply how a tag becomes a style and how two styles combine.
package generator

import (
	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Segment is a run of unescaped text with a single style.
// Styled is false for text outside of any element.
type Segment[S any] struct {
	Text   string
	Style  S
	Styled bool
}

// Flatten folds a converted line into styled segments.
//
// base is the style an outermost element starts from. Inside an element the
// style is base patched by every enclosing tag in source order, so later and
// deeper tags override earlier ones. Escaped plain text is split into one
// segment per unescaped piece.
func Flatten[T, S any](line []tag.Item[T], base S, styleOf func(T) S, patch func(S, S) S) []Segment[S] {
	var segments []Segment[S]
	flatten(&segments, line, base, false, styleOf, patch)
	return segments
}

func flatten[T, S any](
	segments *[]Segment[S],
	items []tag.Item[T],
	style S,
	styled bool,
	styleOf func(T) S,
	patch func(S, S) S,
) {
	for _, item := range items {
		switch item.Kind {
		case markup.ItemPlainText:
			for _, piece := range markup.Unescape(item.Text.Fragment()) {
				*segments = append(*segments, Segment[S]{Text: piece, Style: style, Styled: styled})
			}

		case markup.ItemElement:
			inner := style
			for _, t := range item.Tags {
				inner = patch(inner, styleOf(t))
			}
			flatten(segments, item.Children, inner, true, styleOf, patch)
		}
	}
}

// FlattenAST flattens every line of a converted document.
func FlattenAST[T, S any](ast [][]tag.Item[T], base S, styleOf func(T) S, patch func(S, S) S) [][]Segment[S] {
	lines := make([][]Segment[S], len(ast))
	for i, line := range ast {
		lines[i] = Flatten(line, base, styleOf, patch)
	}
	return lines
}

// Text concatenates the text of segments without any styling.
func Text[S any](segments []Segment[S]) string {
	n := 0
	for _, seg := range segments {
		n += len(seg.Text)
	}

	buf := make([]byte, 0, n)
	for _, seg := range segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}
