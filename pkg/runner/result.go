package runner

import "github.com/yaklabco/tuimarkup/pkg/compiler"

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	// Path is the file that was checked.
	Path string

	// Diagnostic describes the first compile error in the file, if any.
	// Compilation stops at the first error so there is at most one.
	Diagnostic *compiler.Diagnostic

	// Lines is the number of source lines.
	Lines int

	// Elements is the number of elements in the file, nested ones included.
	Elements int

	// Error is set if the file could not be read.
	Error error
}

// Failed reports whether the file has a compile error or could not be read.
func (o FileOutcome) Failed() bool {
	return o.Diagnostic != nil || o.Error != nil
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesChecked is the number of files read and compiled.
	FilesChecked int

	// FilesWithErrors is the number of checked files with a compile error.
	FilesWithErrors int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// ErrorsByStage counts compile errors per pipeline stage.
	ErrorsByStage map[compiler.Stage]int

	// Lines is the total number of source lines checked.
	Lines int

	// Elements is the total number of elements checked.
	Elements int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, sorted by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file failed to compile or could not be read.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesWithErrors > 0 || r.Stats.FilesErrored > 0
}

// Diagnostics returns every diagnostic in file order.
func (r *Result) Diagnostics() []compiler.Diagnostic {
	if r == nil {
		return nil
	}
	var diags []compiler.Diagnostic
	for _, outcome := range r.Files {
		if outcome.Diagnostic != nil {
			diags = append(diags, *outcome.Diagnostic)
		}
	}
	return diags
}

func newStats() Stats {
	return Stats{
		ErrorsByStage: make(map[compiler.Stage]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesChecked++
	r.Stats.Lines += outcome.Lines
	r.Stats.Elements += outcome.Elements

	if outcome.Diagnostic != nil {
		r.Stats.FilesWithErrors++
		r.Stats.ErrorsByStage[outcome.Diagnostic.Stage]++
	}
}

// NewResult aggregates outcomes produced outside Run, such as a single
// Check of standard input.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}
