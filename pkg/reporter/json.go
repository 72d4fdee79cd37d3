package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/runner"
)

// jsonSchemaVersion is bumped on incompatible changes to JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string               `json:"path"`
	Lines      int                  `json:"lines"`
	Elements   int                  `json:"elements"`
	Diagnostic *compiler.Diagnostic `json:"diagnostic,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithErrors int            `json:"filesWithErrors"`
	FilesErrored    int            `json:"filesErrored"`
	Lines           int            `json:"lines"`
	Elements        int            `json:"elements"`
	ByStage         map[string]int `json:"byStage"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return countFailures(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByStage: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		fileResult := JSONFileResult{
			Path:     path,
			Lines:    file.Lines,
			Elements: file.Elements,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		if file.Diagnostic != nil {
			diag := *file.Diagnostic
			diag.Path = path
			fileResult.Diagnostic = &diag
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesChecked
	output.Summary.FilesWithErrors = stats.FilesWithErrors
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.Lines = stats.Lines
	output.Summary.Elements = stats.Elements
	for stage, n := range stats.ErrorsByStage {
		output.Summary.ByStage[string(stage)] = n
	}

	return output
}
