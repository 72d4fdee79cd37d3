package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding   = 2
	heavySeparator = "="
	lightSeparator = "-"
)

// TableRow is one row of cells. A nil row renders as a light separator.
type TableRow []string

// TableFormatter lays out rows in aligned columns.
// Cells may already be styled; widths are measured with lipgloss.Width.
type TableFormatter struct {
	styles *Styles
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles) *TableFormatter {
	return &TableFormatter{styles: styles}
}

// FormatTable formats headers and rows as a table framed by heavy separators.
func (t *TableFormatter) FormatTable(headers []string, rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.columnWidths(headers, rows)
	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(t.formatRow(headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for _, row := range rows {
		if row == nil {
			builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
		} else {
			builder.WriteString(t.formatRow(row, widths))
		}
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	return builder.String()
}

func (t *TableFormatter) columnWidths(headers []string, rows []TableRow) []int {
	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

func (t *TableFormatter) formatRow(cells []string, widths []int) string {
	var builder strings.Builder
	builder.WriteString(" ")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		builder.WriteString(cell)
		if i < len(widths)-1 {
			builder.WriteString(strings.Repeat(" ", width-lipgloss.Width(cell)+tablePadding))
		}
	}
	return strings.TrimRight(builder.String(), " ")
}
