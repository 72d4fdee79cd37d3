package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/tuimarkup/internal/ui/pretty"
	"github.com/yaklabco/tuimarkup/pkg/runner"
)

// tableHeaders are the columns of the table format.
var tableHeaders = []string{"FILE", "LOC", "STAGE", "MESSAGE"} //nolint:gochecknoglobals // read-only

// TableReporter formats failures as one aligned table.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	failures := countFailures(result)
	if failures == 0 {
		if r.opts.ShowSummary {
			checked := 0
			if result != nil {
				checked = result.Stats.FilesChecked
			}
			fmt.Fprintln(r.bw, r.styles.Success.Render("All files passed!"))
			fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf("%d files checked", checked)))
		}
		return 0, nil
	}

	rows := make([]pretty.TableRow, 0, failures)
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		switch {
		case file.Error != nil:
			rows = append(rows, pretty.TableRow{path, "-", "read", r.styles.Error.Render(file.Error.Error())})
		case file.Diagnostic != nil:
			diag := file.Diagnostic
			rows = append(rows, pretty.TableRow{
				path,
				fmt.Sprintf("%d:%d", diag.Line, diag.Column),
				string(diag.Stage),
				r.styles.Error.Render(diag.Message),
			})
		}
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(tableHeaders, rows))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failures, nil
}
