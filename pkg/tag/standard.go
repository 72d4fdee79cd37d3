package tag

import "github.com/yaklabco/tuimarkup/pkg/markup"

// Standard is a tag converted with the neutral vocabulary.
type Standard = Tag[Color, Modifier, Style]

// CustomFunc resolves a custom tag name to a style.
type CustomFunc func(name string) (Style, bool)

// StandardConvertor converts tags to the neutral Color, Modifier and Style types.
// The zero value accepts builtin tags only.
type StandardConvertor struct {
	// Custom resolves custom tags. May be nil.
	Custom CustomFunc
}

var _ Convertor[Color, Modifier, Style] = StandardConvertor{}

// NewStandardConvertor returns a convertor that resolves custom tags from styles.
func NewStandardConvertor(styles map[string]Style) StandardConvertor {
	if len(styles) == 0 {
		return StandardConvertor{}
	}
	return StandardConvertor{Custom: func(name string) (Style, bool) {
		style, ok := styles[name]
		return style, ok
	}}
}

// ParseColor implements Convertor.
func (StandardConvertor) ParseColor(s string) (Color, bool) {
	return LookupColor(s)
}

// ParseModifier implements Convertor.
func (StandardConvertor) ParseModifier(s string) (Modifier, bool) {
	return LookupModifier(s)
}

// ParseCustom implements Convertor.
func (c StandardConvertor) ParseCustom(s string) (Style, bool) {
	if c.Custom == nil {
		return Style{}, false
	}
	return c.Custom(s)
}

// Convert converts a raw tag span.
func (c StandardConvertor) Convert(span markup.Span) (Standard, bool) {
	return Convert[Color, Modifier, Style](c, span)
}
