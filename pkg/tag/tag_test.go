package tag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

func rawTag(s string) markup.Span {
	return markup.NewSpan(s, 1)
}

func TestConvert_Builtin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected tag.Style
	}{
		{"bare colour is foreground", "green", tag.Fg(tag.ANSI(2))},
		{"foreground prefix", "fg:green", tag.Fg(tag.ANSI(2))},
		{"empty prefix colour", ":white", tag.Fg(tag.ANSI(15))},
		{"background prefix", "bg:blue", tag.Bg(tag.ANSI(4))},
		{"background hex", "bg:66ccff", tag.Bg(tag.RGB(0x66, 0xcc, 0xff))},
		{"foreground palette index", "fg:208", tag.Fg(tag.ANSI(208))},
		{"light variant", "red-", tag.Fg(tag.ANSI(9))},
		{"bright gray", "gray+", tag.Fg(tag.ANSI(8))},
		{"purple alias", "purple", tag.Fg(tag.ANSI(5))},
		{"bare modifier", "b", tag.Mod(tag.ModBold)},
		{"empty prefix modifier", ":d", tag.Mod(tag.ModDim)},
		{"modifier prefix", "mod:u", tag.Mod(tag.ModUnderline)},
		{"crossed out", "x", tag.Mod(tag.ModStrikethrough)},
		{"rapid blink", "rb", tag.Mod(tag.ModBlink)},
	}

	conv := tag.StandardConvertor{}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			converted, ok := conv.Convert(rawTag(testCase.raw))
			require.True(t, ok)
			assert.Equal(t, testCase.expected, tag.StyleOf(converted))
			assert.Equal(t, testCase.raw, converted.Source.Fragment())
		})
	}
}

func TestConvert_Rejected(t *testing.T) {
	t.Parallel()

	conv := tag.StandardConvertor{}

	for _, raw := range []string{"unknown", "mod:green", "fg:b", "bg:", "xx:green", "fg:256", "a:b:c", "fg:#ff8000"} {
		_, ok := conv.Convert(rawTag(raw))
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}

func TestConvert_Custom(t *testing.T) {
	t.Parallel()

	warning := tag.Fg(tag.ANSI(3)).Patch(tag.Mod(tag.ModBold))
	conv := tag.NewStandardConvertor(map[string]tag.Style{
		"warning": warning,
		"b":       tag.Mod(tag.ModItalic),
		"a:b:c":   tag.Bg(tag.ANSI(1)),
	})

	t.Run("custom tag", func(t *testing.T) {
		t.Parallel()

		converted, ok := conv.Convert(rawTag("warning"))
		require.True(t, ok)
		assert.Equal(t, tag.KindCustom, converted.Kind)
		assert.Equal(t, warning, converted.Custom)
	})

	t.Run("custom shadows builtin", func(t *testing.T) {
		t.Parallel()

		converted, ok := conv.Convert(rawTag("b"))
		require.True(t, ok)
		assert.Equal(t, tag.KindCustom, converted.Kind)
		assert.Equal(t, tag.Mod(tag.ModItalic), tag.StyleOf(converted))
	})

	t.Run("many colons are custom only", func(t *testing.T) {
		t.Parallel()

		converted, ok := conv.Convert(rawTag("a:b:c"))
		require.True(t, ok)
		assert.Equal(t, tag.KindCustom, converted.Kind)
	})

	t.Run("builtin still resolves", func(t *testing.T) {
		t.Parallel()

		converted, ok := conv.Convert(rawTag("bg:red"))
		require.True(t, ok)
		assert.Equal(t, tag.KindBackground, converted.Kind)
	})
}

// countingConvertor records which hooks were consulted.
type countingConvertor struct {
	calls *[]string
}

func (c countingConvertor) ParseColor(s string) (string, bool) {
	*c.calls = append(*c.calls, "color:"+s)
	return s, s == "red"
}

func (c countingConvertor) ParseModifier(s string) (string, bool) {
	*c.calls = append(*c.calls, "mod:"+s)
	return s, s == "b"
}

func (c countingConvertor) ParseCustom(s string) (int, bool) {
	*c.calls = append(*c.calls, "custom:"+s)
	return 0, false
}

func TestConvert_ResolutionOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		ok       bool
		expected []string
	}{
		{"red", true, []string{"custom:red", "color:red"}},
		{"b", true, []string{"custom:b", "color:b", "mod:b"}},
		{"fg:b", false, []string{"custom:fg:b", "color:b"}},
		{"mod:red", false, []string{"custom:mod:red", "mod:red"}},
		{"a:b:c", false, []string{"custom:a:b:c"}},
		{"zz:red", false, []string{"custom:zz:red"}},
	}

	for _, testCase := range tests {
		var calls []string
		conv := countingConvertor{calls: &calls}

		_, ok := tag.Convert[string, string, int](conv, rawTag(testCase.raw))
		assert.Equal(t, testCase.ok, ok, testCase.raw)
		assert.Equal(t, testCase.expected, calls, testCase.raw)
	}
}

func TestConvertAST(t *testing.T) {
	t.Parallel()

	conv := tag.StandardConvertor{}

	t.Run("converts nested tags", func(t *testing.T) {
		t.Parallel()

		ast, err := markup.Parse("plain\n<bg:blue,b a <green b>>")
		require.NoError(t, err)

		converted, err := tag.ConvertAST(ast, conv.Convert)
		require.NoError(t, err)
		require.Len(t, converted, 2)

		assert.Equal(t, markup.ItemPlainText, converted[0][0].Kind)

		outer := converted[1][0]
		require.Len(t, outer.Tags, 2)
		assert.Equal(t, tag.KindBackground, outer.Tags[0].Kind)
		assert.Equal(t, tag.KindModifier, outer.Tags[1].Kind)

		inner := outer.Children[1]
		require.Len(t, inner.Tags, 1)
		assert.Equal(t, tag.KindForeground, inner.Tags[0].Kind)
	})

	t.Run("reports the first invalid tag", func(t *testing.T) {
		t.Parallel()

		ast, err := markup.Parse("ok\n<b <green,qwerty one>>")
		require.NoError(t, err)

		_, err = tag.ConvertAST(ast, conv.Convert)
		require.Error(t, err)

		var tagErr *tag.Error
		require.True(t, errors.As(err, &tagErr))
		assert.Equal(t, tag.ErrorKindInvalidTag, tagErr.Kind)

		line, column := tagErr.Location()
		assert.Equal(t, 2, line)
		assert.Equal(t, 11, column)
		assert.Equal(t, `invalid tag "qwerty" near 2:11`, err.Error())
	})
}
