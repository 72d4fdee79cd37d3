// Package tag converts the raw tag names of parsed markup into typed tags.
//
// A tag is either builtin (foreground colour, background colour, modifier) or
// custom. Backends supply a Convertor that knows their own colour, modifier and
// custom style types; this package provides the shared resolution rules and a
// backend-neutral vocabulary (Color, Modifier, Style) that most backends can reuse.
package tag

import (
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/markup"
)

// Kind identifies what a converted tag does.
type Kind uint8

// Tag kinds.
const (
	KindForeground Kind = iota
	KindBackground
	KindModifier
	KindCustom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindForeground:
		return "fg"
	case KindBackground:
		return "bg"
	case KindModifier:
		return "mod"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Builtin tag prefixes.
const (
	PrefixForeground = "fg"
	PrefixBackground = "bg"
	PrefixModifier   = "mod"
)

// Tag is a converted element tag.
// Only the field matching Kind is meaningful.
type Tag[C, M, S any] struct {
	Kind     Kind
	Color    C
	Modifier M
	Custom   S

	// Source is the raw tag span the tag was converted from.
	Source markup.Span
}

// Convertor parses the parts of a tag into backend types.
type Convertor[C, M, S any] interface {
	// ParseColor parses a colour value such as "green" or "66ccff".
	ParseColor(s string) (C, bool)

	// ParseModifier parses a modifier value such as "b" or "u".
	ParseModifier(s string) (M, bool)

	// ParseCustom parses a whole tag string as a custom tag.
	// It is consulted before builtin resolution, so custom tags can shadow builtin ones.
	ParseCustom(s string) (S, bool)
}

// ParseBuiltin resolves a builtin tag from its prefix and value.
//
// "fg" and "bg" take a colour, "mod" takes a modifier. An empty prefix takes a
// colour as foreground first and falls back to a modifier.
func ParseBuiltin[C, M, S any](conv Convertor[C, M, S], prefix, value string) (Tag[C, M, S], bool) {
	var tag Tag[C, M, S]

	switch prefix {
	case PrefixForeground, PrefixBackground:
		color, ok := conv.ParseColor(value)
		if !ok {
			return tag, false
		}
		tag.Kind = KindForeground
		if prefix == PrefixBackground {
			tag.Kind = KindBackground
		}
		tag.Color = color

	case PrefixModifier:
		modifier, ok := conv.ParseModifier(value)
		if !ok {
			return tag, false
		}
		tag.Kind = KindModifier
		tag.Modifier = modifier

	case "":
		if color, ok := conv.ParseColor(value); ok {
			tag.Kind = KindForeground
			tag.Color = color
		} else if modifier, ok := conv.ParseModifier(value); ok {
			tag.Kind = KindModifier
			tag.Modifier = modifier
		} else {
			return tag, false
		}

	default:
		return tag, false
	}

	return tag, true
}

// Convert turns a raw tag span into a Tag.
//
// A tag with more than one ':' can only be custom. Otherwise the whole tag is
// offered to ParseCustom first, then resolved as a builtin "prefix:value" or bare value.
func Convert[C, M, S any](conv Convertor[C, M, S], span markup.Span) (Tag[C, M, S], bool) {
	raw := span.Fragment()

	if strings.Count(raw, ":") > 1 {
		return custom(conv, span)
	}

	if tag, ok := custom(conv, span); ok {
		return tag, true
	}

	prefix, value, found := strings.Cut(raw, ":")
	if !found {
		prefix, value = "", raw
	}

	tag, ok := ParseBuiltin(conv, prefix, value)
	if !ok {
		return tag, false
	}
	tag.Source = span

	return tag, true
}

func custom[C, M, S any](conv Convertor[C, M, S], span markup.Span) (Tag[C, M, S], bool) {
	var tag Tag[C, M, S]

	style, ok := conv.ParseCustom(span.Fragment())
	if !ok {
		return tag, false
	}
	tag.Kind = KindCustom
	tag.Custom = style
	tag.Source = span

	return tag, true
}

// ConvertFunc adapts a Convertor to the function form used by ConvertLine and ConvertAST.
func ConvertFunc[C, M, S any](conv Convertor[C, M, S]) func(markup.Span) (Tag[C, M, S], bool) {
	return func(span markup.Span) (Tag[C, M, S], bool) {
		return Convert(conv, span)
	}
}
