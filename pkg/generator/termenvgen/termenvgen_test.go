package termenvgen_test

import (
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/generator/termenvgen"
	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

func TestGenerator_Compile(t *testing.T) {
	t.Parallel()

	gen := termenvgen.New(termenvgen.Options{})

	text, err := gen.Compile("I can <bg:blue combine <green them <b <i all>>>>\n\\<done\\>")
	require.NoError(t, err)
	require.Len(t, text.Lines, 2)

	first := text.Lines[0]
	require.Len(t, first, 4)
	assert.False(t, first[0].Styled)
	assert.Equal(t, "all", first[3].Text)
	assert.Equal(t, tag.ModBold|tag.ModItalic, first[3].Style.Modifiers)
	assert.Equal(t, tag.ANSI(4), *first[3].Style.Background)
	assert.Equal(t, tag.ANSI(2), *first[3].Style.Foreground)

	assert.Equal(t, "I can combine them all\n<done>", text.Plain())
	assert.Equal(t, text.Plain(), text.Render(termenv.Ascii))
}

func TestText_Render(t *testing.T) {
	t.Parallel()

	gen := termenvgen.New(termenvgen.Options{})
	profile := termenv.TrueColor

	text, err := gen.Compile("x <fg:ff8000,u y> <bg:1,s z>")
	require.NoError(t, err)

	expected := "x " +
		profile.String("y").Foreground(profile.Color("#ff8000")).Underline().String() +
		" " +
		profile.String("z").Background(profile.Color("1")).CrossOut().String()
	assert.Equal(t, expected, text.Render(profile))
}

func TestGenerator_CustomTags(t *testing.T) {
	t.Parallel()

	gen := termenvgen.New(termenvgen.Options{
		Styles: map[string]tag.Style{"title": tag.Mod(tag.ModBold)},
		Custom: func(name string) (tag.Style, bool) {
			if name == "title" {
				return tag.Mod(tag.ModUnderline), true
			}
			return tag.Style{}, false
		},
	})

	text, err := gen.Compile("<title hello>")
	require.NoError(t, err)
	assert.Equal(t, tag.ModUnderline, text.Lines[0][0].Style.Modifiers)

	conv := gen.Convertor()
	_, ok := conv.ParseCustom("title")
	assert.True(t, ok)
}

func TestGenerator_Errors(t *testing.T) {
	t.Parallel()

	gen := termenvgen.New(termenvgen.Options{})

	_, err := gen.Compile("fine\n<b\\q>")
	require.Error(t, err)

	var parseErr *markup.Error
	require.True(t, errors.As(err, &parseErr))

	_, err = gen.Compile("<title hello>")
	var stageErr *compiler.Error
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, compiler.StageGenerate, stageErr.Stage)
}
