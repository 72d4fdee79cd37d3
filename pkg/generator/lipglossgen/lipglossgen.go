// Package lipglossgen renders markup to ANSI strings with lipgloss styles.
package lipglossgen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/generator"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Tag is a tag converted for the lipgloss backend.
type Tag = tag.Tag[lipgloss.TerminalColor, tag.Modifier, lipgloss.Style]

// CustomFunc resolves a custom tag name to a lipgloss style.
type CustomFunc func(name string) (lipgloss.Style, bool)

// Options configures a Generator.
type Options struct {
	// Renderer owns the colour profile. Defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer

	// Styles maps custom tag names to neutral styles.
	Styles map[string]tag.Style

	// Custom resolves custom tags before Styles is consulted. May be nil.
	Custom CustomFunc
}

// Generator compiles markup into a string of lipgloss-rendered segments.
type Generator struct {
	renderer *lipgloss.Renderer
	conv     Convertor
}

// New creates a Generator.
func New(opts Options) *Generator {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	styles := make(map[string]lipgloss.Style, len(opts.Styles))
	for name, style := range opts.Styles {
		styles[name] = StyleFrom(renderer, style)
	}

	return &Generator{
		renderer: renderer,
		conv: Convertor{
			renderer: renderer,
			custom: func(name string) (lipgloss.Style, bool) {
				if opts.Custom != nil {
					if style, ok := opts.Custom(name); ok {
						return style, true
					}
				}
				style, ok := styles[name]
				return style, ok
			},
		},
	}
}

// Convertor returns the tag convertor of the generator.
func (g *Generator) Convertor() Convertor {
	return g.conv
}

// Compile renders source. Lines are joined with '\n'.
func (g *Generator) Compile(source string) (string, error) {
	return compiler.Compile(source, g.conv.Convert, g.Generate)
}

// Generate renders a converted document. It never fails.
func (g *Generator) Generate(ast [][]tag.Item[Tag]) (string, error) {
	return strings.Join(g.Lines(ast), "\n"), nil
}

// Lines renders a converted document into one string per line.
func (g *Generator) Lines(ast [][]tag.Item[Tag]) []string {
	lines := make([]string, 0, len(ast))

	base := g.renderer.NewStyle()
	for _, line := range generator.FlattenAST(ast, base, g.conv.StyleOf, patch) {
		var builder strings.Builder
		for _, seg := range line {
			builder.WriteString(render(seg))
		}
		lines = append(lines, builder.String())
	}

	return lines
}

func render(seg generator.Segment[lipgloss.Style]) string {
	if !seg.Styled {
		return seg.Text
	}
	return seg.Style.TabWidth(lipgloss.NoTabConversion).Render(seg.Text)
}

// patch overlays over onto base: properties set in over win.
func patch(base, over lipgloss.Style) lipgloss.Style {
	return over.Inherit(base)
}
