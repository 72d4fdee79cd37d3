package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
)

// FormatDiagnostic formats a single diagnostic for terminal output:
//
//	path:line:col  error  message  (stage)
//
// followed by the source line and a caret when showContext is set.
func (s *Styles) FormatDiagnostic(diag compiler.Diagnostic, showContext bool) string {
	var builder strings.Builder

	location := s.FilePath.Render(diag.Path)
	if diag.Line > 0 {
		location += s.Location.Render(fmt.Sprintf(":%d:%d", diag.Line, diag.Column))
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s",
		location,
		s.Error.Render("error"),
		s.Message.Render(diag.Message),
	))
	if diag.Stage != "" {
		builder.WriteString("  " + s.Stage.Render("("+string(diag.Stage)+")"))
	}
	builder.WriteString("\n")

	if showContext && diag.Line > 0 {
		builder.WriteString(s.FormatSourceContext(diag.SourceLine, diag.Column))
	}

	return builder.String()
}

// sourceTabWidth is the number of spaces lipgloss renders a tab as by default.
const sourceTabWidth = 4

// FormatSourceContext formats the source line with a caret under column.
// Columns count runes; a tab before the column counts as sourceTabWidth spaces.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		builder.WriteString(indent + caretPadding(line, column) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

func caretPadding(line string, column int) string {
	var padding strings.Builder
	for _, r := range line {
		if column <= 1 {
			break
		}
		if r == '\t' {
			padding.WriteString(strings.Repeat(" ", sourceTabWidth))
		} else {
			padding.WriteRune(' ')
		}
		column--
	}
	padding.WriteString(strings.Repeat(" ", column-1))
	return padding.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	if errorCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", errorCount, plural(errorCount, "error", "errors")))
	}
	return header
}

// FormatWarning formats a non-fatal message such as a configuration warning.
func (s *Styles) FormatWarning(message string) string {
	return s.Warning.Render("warning") + "  " + s.Message.Render(message) + "\n"
}
