// Package compiler runs the markup pipeline: parse, convert tags, generate output.
package compiler

import (
	"errors"

	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Stage names a step of the pipeline.
type Stage string

// Pipeline stages. Tag conversion belongs to the generate stage since the set of
// valid tags depends on the backend.
const (
	StageParse    Stage = "parse"
	StageGenerate Stage = "generate"
)

// Error wraps the failure of a pipeline stage.
type Error struct {
	Stage Stage
	Err   error
}

var _ markup.LocatedError = (*Error)(nil)

func (e *Error) Error() string {
	return string(e.Stage) + " failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Location returns the location of the wrapped error, or 0, 0 if it has none.
func (e *Error) Location() (int, int) {
	var located markup.LocatedError
	if errors.As(e.Err, &located) {
		return located.Location()
	}
	return 0, 0
}

// Compile parses source, converts every element tag with convert and hands the
// converted document to generate.
//
// Errors are returned as *Error. An unknown tag is a generate-stage *tag.Error.
func Compile[T, O any](
	source string,
	convert func(markup.Span) (T, bool),
	generate func([][]tag.Item[T]) (O, error),
) (O, error) {
	var zero O

	converted, err := Convert(source, convert)
	if err != nil {
		return zero, err
	}

	out, err := generate(converted)
	if err != nil {
		return zero, &Error{Stage: StageGenerate, Err: err}
	}

	return out, nil
}

// Convert runs the parse and tag conversion steps only.
// It is what a linter needs: every error Compile would report before output is built.
func Convert[T any](source string, convert func(markup.Span) (T, bool)) ([][]tag.Item[T], error) {
	ast, err := markup.Parse(source)
	if err != nil {
		return nil, &Error{Stage: StageParse, Err: err}
	}

	converted, err := tag.ConvertAST(ast, convert)
	if err != nil {
		return nil, &Error{Stage: StageGenerate, Err: err}
	}

	return converted, nil
}
