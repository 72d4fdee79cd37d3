package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tuimarkup/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// The default renderer may not emit ANSI codes in a test process.
	assert.Contains(t, styles.Error.Render("boom"), "boom")
	assert.Contains(t, styles.Bold.Render("x"), "x")
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
	assert.Equal(t, text, styles.Caret.Render(text), "No-color Caret should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should behave like auto")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should behave like auto")
}

func TestColorProfile(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, termenv.Ascii, pretty.ColorProfile("never", &buf))
	assert.Equal(t, termenv.Ascii, pretty.ColorProfile("auto", &buf))
	assert.NotEqual(t, termenv.Ascii, pretty.ColorProfile("always", &buf))
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	plain := pretty.NewRenderer("never", &buf)
	assert.Equal(t, termenv.Ascii, plain.ColorProfile())
	assert.Equal(t, "hi", plain.NewStyle().Bold(true).Render("hi"))

	forced := pretty.NewRenderer("always", &buf)
	assert.NotEqual(t, "hi", forced.NewStyle().Bold(true).Render("hi"))
}
