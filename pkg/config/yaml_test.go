package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices and tags", func(t *testing.T) {
		original := config.NewConfig()
		original.Ignore = []string{"vendor/**"}
		original.Tags["warning"] = config.TagStyle{Fg: "yellow", Mod: []string{"b"}}
		original.Format = config.FormatJSON

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		clone.Ignore[0] = "changed"
		clone.Extensions[0] = ".changed"
		clone.Tags["warning"].Mod[0] = "i"
		clone.Tags["new"] = config.TagStyle{Fg: "red"}

		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.Equal(t, ".tm", original.Extensions[0])
		assert.Equal(t, "b", original.Tags["warning"].Mod[0])
		assert.NotContains(t, original.Tags, "new")
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
backend: termenv
color: never
jobs: 4
ignore:
  - "vendor/**"
tags:
  warning:
    fg: yellow
    bg: "236"
    mod: [b, u]
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, config.BackendTermenv, cfg.Backend)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
	assert.Nil(t, cfg.Extensions, "absent fields stay unset")
	assert.Equal(t, config.TagStyle{Fg: "yellow", Bg: "236", Mod: []string{"b", "u"}}, cfg.Tags["warning"])

	_, err = config.FromYAML([]byte("backend: [unclosed"))
	assert.Error(t, err)
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	data := []byte(`
backend = "lipgloss"
extensions = [".markup"]

[tags.link]
fg = "66ccff"
mod = ["u"]
`)

	cfg, err := config.FromFile("config.toml", data)
	require.NoError(t, err)

	assert.Equal(t, config.BackendLipgloss, cfg.Backend)
	assert.Equal(t, []string{".markup"}, cfg.Extensions)
	assert.Equal(t, config.TagStyle{Fg: "66ccff", Mod: []string{"u"}}, cfg.Tags["link"])

	_, err = config.FromTOML([]byte("backend = "))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Tags["warning"] = config.TagStyle{Fg: "yellow", Mod: []string{"b"}}
	original.Format = ""

	yamlData, err := original.ToYAML()
	require.NoError(t, err)
	fromYAML, err := config.FromYAML(yamlData)
	require.NoError(t, err)
	assert.Equal(t, original, fromYAML)

	tomlData, err := original.ToTOML()
	require.NoError(t, err)
	fromTOML, err := config.FromTOML(tomlData)
	require.NoError(t, err)
	assert.Equal(t, original, fromTOML)
}

func TestTagStyle_Resolve(t *testing.T) {
	t.Parallel()

	style, err := config.TagStyle{Fg: "yellow", Bg: "66ccff", Mod: []string{"b", "x"}}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, tag.ANSI(3), *style.Foreground)
	assert.Equal(t, tag.RGB(0x66, 0xcc, 0xff), *style.Background)
	assert.Equal(t, tag.ModBold|tag.ModStrikethrough, style.Modifiers)

	_, err = config.TagStyle{Fg: "nope"}.Resolve()
	assert.ErrorContains(t, err, `unknown foreground color "nope"`)

	_, err = config.TagStyle{Mod: []string{"bold"}}.Resolve()
	assert.ErrorContains(t, err, `unknown modifier "bold"`)

	assert.Equal(t, "fg:yellow,bg:66ccff,b,x", config.TagStyle{Fg: "yellow", Bg: "66ccff", Mod: []string{"b", "x"}}.String())
}

func TestConfig_Styles(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Tags["b"] = config.TagStyle{Mod: []string{"i"}}
	cfg.Tags["alert"] = config.TagStyle{Fg: "red"}

	styles, err := cfg.Styles()
	require.NoError(t, err)
	assert.Len(t, styles, 2)
	assert.Equal(t, []string{"alert", "b"}, cfg.TagNames())

	cfg.Tags["broken"] = config.TagStyle{Bg: "nope"}
	_, err = cfg.Styles()
	assert.ErrorContains(t, err, `tag "broken"`)
}
