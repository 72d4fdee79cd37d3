// Package termenvgen renders markup through a termenv colour profile.
//
// Unlike lipglossgen, the compiled Text keeps neutral styles, so the same result
// can be rendered for several profiles, or as plain text.
package termenvgen

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/generator"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Span is a run of text with a neutral style.
type Span = generator.Segment[tag.Style]

// Text is compiled markup: one list of spans per source line.
type Text struct {
	Lines [][]Span
}

// Options configures a Generator.
type Options struct {
	// Styles maps custom tag names to styles.
	Styles map[string]tag.Style

	// Custom resolves custom tags before Styles is consulted. May be nil.
	Custom tag.CustomFunc
}

// Generator compiles markup into Text.
type Generator struct {
	conv tag.StandardConvertor
}

// New creates a Generator.
func New(opts Options) *Generator {
	conv := tag.NewStandardConvertor(opts.Styles)
	if opts.Custom != nil {
		fallback := conv.Custom
		conv.Custom = func(name string) (tag.Style, bool) {
			if style, ok := opts.Custom(name); ok {
				return style, true
			}
			if fallback == nil {
				return tag.Style{}, false
			}
			return fallback(name)
		}
	}
	return &Generator{conv: conv}
}

// Convertor returns the tag convertor of the generator.
func (g *Generator) Convertor() tag.StandardConvertor {
	return g.conv
}

// Compile compiles source into Text.
func (g *Generator) Compile(source string) (Text, error) {
	return compiler.Compile(source, g.conv.Convert, g.Generate)
}

// Generate builds Text from a converted document. It never fails.
func (g *Generator) Generate(ast [][]tag.Item[tag.Standard]) (Text, error) {
	return Text{Lines: generator.FlattenAST(ast, tag.Style{}, tag.StyleOf, tag.Style.Patch)}, nil
}

// Plain returns the text without any styling.
func (t Text) Plain() string {
	lines := make([]string, len(t.Lines))
	for i, line := range t.Lines {
		lines[i] = generator.Text(line)
	}
	return strings.Join(lines, "\n")
}

// Render returns the text with escape sequences for profile.
// Colours the profile cannot show are degraded to the closest supported colour.
func (t Text) Render(profile termenv.Profile) string {
	var builder strings.Builder
	for i, line := range t.Lines {
		if i > 0 {
			builder.WriteByte('\n')
		}
		for _, span := range line {
			builder.WriteString(RenderSpan(profile, span))
		}
	}
	return builder.String()
}

// RenderSpan renders a single span for profile.
func RenderSpan(profile termenv.Profile, span Span) string {
	if !span.Styled || span.Style.IsZero() {
		return span.Text
	}

	style := span.Style
	out := profile.String(span.Text)

	if style.Foreground != nil {
		out = out.Foreground(profile.Color(style.Foreground.String()))
	}
	if style.Background != nil {
		out = out.Background(profile.Color(style.Background.String()))
	}

	mods := style.Modifiers
	if mods.Has(tag.ModBold) {
		out = out.Bold()
	}
	if mods.Has(tag.ModDim) {
		out = out.Faint()
	}
	if mods.Has(tag.ModItalic) {
		out = out.Italic()
	}
	if mods.Has(tag.ModUnderline) {
		out = out.Underline()
	}
	if mods.Has(tag.ModReverse) {
		out = out.Reverse()
	}
	if mods.Has(tag.ModBlink) {
		out = out.Blink()
	}
	if mods.Has(tag.ModStrikethrough) {
		out = out.CrossOut()
	}

	return out.String()
}
