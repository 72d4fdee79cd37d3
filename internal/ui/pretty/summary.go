package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 errors (1 parse, 1 generate) in 2 files, 5 files checked".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	failed := stats.FilesWithErrors + stats.FilesErrored
	if failed == 0 {
		return s.Success.Render("No errors found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesChecked, plural(stats.FilesChecked, "file", "files"))) +
			"\n"
	}

	var parts []string

	if stats.FilesWithErrors > 0 {
		var stageParts []string
		for _, stage := range []compiler.Stage{compiler.StageParse, compiler.StageGenerate} {
			if n := stats.ErrorsByStage[stage]; n > 0 {
				stageParts = append(stageParts, fmt.Sprintf("%d %s", n, stage))
			}
		}
		count := s.Error.Render(fmt.Sprintf("%d %s", stats.FilesWithErrors, plural(stats.FilesWithErrors, "error", "errors")))
		if len(stageParts) > 0 {
			count += " (" + strings.Join(stageParts, ", ") + ")"
		}
		parts = append(parts, count)
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s unreadable",
			stats.FilesErrored, plural(stats.FilesErrored, "file", "files"))))
	}

	parts = append(parts, fmt.Sprintf("%d %s checked", stats.FilesChecked, plural(stats.FilesChecked, "file", "files")))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesChecked)) + "\n")
	builder.WriteString("  Lines:             " +
		s.SummaryValue.Render(strconv.Itoa(stats.Lines)) + "\n")
	builder.WriteString("  Elements:          " +
		s.SummaryValue.Render(strconv.Itoa(stats.Elements)) + "\n")

	if stats.FilesWithErrors > 0 {
		builder.WriteString("  Files with errors: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithErrors)) + "\n")
		if n := stats.ErrorsByStage[compiler.StageParse]; n > 0 {
			builder.WriteString("    Parse:           " + s.Error.Render(strconv.Itoa(n)) + "\n")
		}
		if n := stats.ErrorsByStage[compiler.StageGenerate]; n > 0 {
			builder.WriteString("    Generate:        " + s.Error.Render(strconv.Itoa(n)) + "\n")
		}
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesWithErrors > 0 || stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Check failed"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
