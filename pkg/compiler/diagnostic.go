package compiler

import (
	"errors"
	"strings"
)

// Diagnostic is a compile error resolved against its source, ready for display.
type Diagnostic struct {
	Path       string `json:"path"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Stage      Stage  `json:"stage"`
	Message    string `json:"message"`
	SourceLine string `json:"-"`
}

// reasoner is implemented by errors that can describe themselves without a location.
type reasoner interface {
	Reason() string
}

// NewDiagnostic builds a diagnostic for err, which was produced compiling source from path.
// Errors without a location get line and column 0.
func NewDiagnostic(path, source string, err error) Diagnostic {
	diag := Diagnostic{Path: path, Message: err.Error()}

	var stageErr *Error
	if errors.As(err, &stageErr) {
		diag.Stage = stageErr.Stage
		diag.Line, diag.Column = stageErr.Location()
	}

	var withReason reasoner
	if errors.As(err, &withReason) {
		diag.Message = withReason.Reason()
	}

	if diag.Line > 0 {
		lines := strings.Split(source, "\n")
		if diag.Line <= len(lines) {
			diag.SourceLine = lines[diag.Line-1]
		}
	}

	return diag
}
