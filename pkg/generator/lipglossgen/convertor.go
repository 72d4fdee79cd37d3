package lipglossgen

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Convertor converts raw tags into lipgloss colours and styles.
type Convertor struct {
	renderer *lipgloss.Renderer
	custom   CustomFunc
}

var _ tag.Convertor[lipgloss.TerminalColor, tag.Modifier, lipgloss.Style] = Convertor{}

// ParseColor implements tag.Convertor.
func (Convertor) ParseColor(s string) (lipgloss.TerminalColor, bool) {
	color, ok := tag.LookupColor(s)
	if !ok {
		return nil, false
	}
	return lipgloss.Color(color.String()), true
}

// ParseModifier implements tag.Convertor.
func (Convertor) ParseModifier(s string) (tag.Modifier, bool) {
	return tag.LookupModifier(s)
}

// ParseCustom implements tag.Convertor.
func (c Convertor) ParseCustom(s string) (lipgloss.Style, bool) {
	if c.custom == nil {
		return lipgloss.Style{}, false
	}
	return c.custom(s)
}

// Convert converts a raw tag span.
func (c Convertor) Convert(span markup.Span) (Tag, bool) {
	return tag.Convert[lipgloss.TerminalColor, tag.Modifier, lipgloss.Style](c, span)
}

// StyleOf returns the style a converted tag applies.
func (c Convertor) StyleOf(t Tag) lipgloss.Style {
	switch t.Kind {
	case tag.KindForeground:
		return c.renderer.NewStyle().Foreground(t.Color)
	case tag.KindBackground:
		return c.renderer.NewStyle().Background(t.Color)
	case tag.KindModifier:
		return withModifiers(c.renderer.NewStyle(), t.Modifier)
	default:
		return t.Custom
	}
}

// StyleFrom converts a neutral style into a lipgloss style bound to renderer.
func StyleFrom(renderer *lipgloss.Renderer, s tag.Style) lipgloss.Style {
	style := renderer.NewStyle()
	if s.Foreground != nil {
		style = style.Foreground(lipgloss.Color(s.Foreground.String()))
	}
	if s.Background != nil {
		style = style.Background(lipgloss.Color(s.Background.String()))
	}
	return withModifiers(style, s.Modifiers)
}

func withModifiers(style lipgloss.Style, mod tag.Modifier) lipgloss.Style {
	if mod.Has(tag.ModBold) {
		style = style.Bold(true)
	}
	if mod.Has(tag.ModDim) {
		style = style.Faint(true)
	}
	if mod.Has(tag.ModItalic) {
		style = style.Italic(true)
	}
	if mod.Has(tag.ModUnderline) {
		style = style.Underline(true)
	}
	if mod.Has(tag.ModReverse) {
		style = style.Reverse(true)
	}
	if mod.Has(tag.ModBlink) {
		style = style.Blink(true)
	}
	if mod.Has(tag.ModStrikethrough) {
		style = style.Strikethrough(true)
	}
	return style
}
