package compiler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/generator"
	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

func plainText(ast [][]tag.Item[tag.Standard]) ([]string, error) {
	lines := make([]string, len(ast))
	for i, line := range ast {
		segments := generator.Flatten(line, tag.Style{}, tag.StyleOf, tag.Style.Patch)
		lines[i] = generator.Text(segments)
	}
	return lines, nil
}

func TestCompile(t *testing.T) {
	t.Parallel()

	conv := tag.StandardConvertor{}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		out, err := compiler.Compile("a <b b>\n<red c\\>>", conv.Convert, plainText)
		require.NoError(t, err)
		assert.Equal(t, []string{"a b", "c>"}, out)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		_, err := compiler.Compile("ok\n<b x", conv.Convert, plainText)
		require.Error(t, err)

		var stageErr *compiler.Error
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, compiler.StageParse, stageErr.Stage)
		assert.Equal(t, "parse failed: expect '>' to close element for element starter '<' near 2:1", err.Error())

		var parseErr *markup.Error
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, markup.ErrorKindElementNotClose, parseErr.Kind)

		line, column := stageErr.Location()
		assert.Equal(t, 2, line)
		assert.Equal(t, 1, column)
	})

	t.Run("invalid tag", func(t *testing.T) {
		t.Parallel()

		_, err := compiler.Compile("<b <qwerty one>>", conv.Convert, plainText)
		require.Error(t, err)
		assert.Equal(t, `generate failed: invalid tag "qwerty" near 1:5`, err.Error())

		var tagErr *tag.Error
		assert.True(t, errors.As(err, &tagErr))
	})

	t.Run("generator error", func(t *testing.T) {
		t.Parallel()

		errBackend := errors.New("backend unavailable")
		_, err := compiler.Compile("<b x>", conv.Convert, func([][]tag.Item[tag.Standard]) (string, error) {
			return "", errBackend
		})
		require.ErrorIs(t, err, errBackend)

		var stageErr *compiler.Error
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, compiler.StageGenerate, stageErr.Stage)

		line, column := stageErr.Location()
		assert.Zero(t, line)
		assert.Zero(t, column)
	})
}

func TestNewDiagnostic(t *testing.T) {
	t.Parallel()

	conv := tag.StandardConvertor{}
	source := "first\nsecond <nope x>\nthird"

	_, err := compiler.Convert(source, conv.Convert)
	require.Error(t, err)

	diag := compiler.NewDiagnostic("doc.tm", source, err)
	assert.Equal(t, compiler.Diagnostic{
		Path:       "doc.tm",
		Line:       2,
		Column:     9,
		Stage:      compiler.StageGenerate,
		Message:    `invalid tag "nope"`,
		SourceLine: "second <nope x>",
	}, diag)

	plain := compiler.NewDiagnostic("x", "", errors.New("read failed"))
	assert.Equal(t, "read failed", plain.Message)
	assert.Zero(t, plain.Line)
	assert.Empty(t, plain.SourceLine)
}
