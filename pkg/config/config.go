// Package config defines the configuration types for tuimarkup.
// These types are plain data; discovery and merging live in internal/configloader.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Backend selects the renderer used by the render command.
type Backend string

const (
	BackendLipgloss Backend = "lipgloss"
	BackendTermenv  Backend = "termenv"
)

// IsValid returns true if the backend is known.
func (b Backend) IsValid() bool {
	return b == BackendLipgloss || b == BackendTermenv
}

// ColorMode controls when output is colourised.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the colour mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format of the check command.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// TagStyle is a custom tag definition as written in a config file.
//
//	tags:
//	  warning: { fg: yellow, mod: [b] }
//	  link:    { fg: 66ccff, mod: [u] }
type TagStyle struct {
	Fg  string   `yaml:"fg,omitempty" toml:"fg,omitempty"`
	Bg  string   `yaml:"bg,omitempty" toml:"bg,omitempty"`
	Mod []string `yaml:"mod,omitempty" toml:"mod,omitempty"`
}

// Resolve converts the definition into a style.
// Colours and modifiers use the same names as builtin tags.
func (ts TagStyle) Resolve() (tag.Style, error) {
	var style tag.Style

	if ts.Fg != "" {
		color, ok := tag.LookupColor(ts.Fg)
		if !ok {
			return style, fmt.Errorf("unknown foreground color %q", ts.Fg)
		}
		style.Foreground = &color
	}

	if ts.Bg != "" {
		color, ok := tag.LookupColor(ts.Bg)
		if !ok {
			return style, fmt.Errorf("unknown background color %q", ts.Bg)
		}
		style.Background = &color
	}

	for _, name := range ts.Mod {
		mod, ok := tag.LookupModifier(name)
		if !ok {
			return style, fmt.Errorf("unknown modifier %q", name)
		}
		style.Modifiers |= mod
	}

	return style, nil
}

// String renders the definition in tag syntax, e.g. "fg:yellow,bg:blue,b".
func (ts TagStyle) String() string {
	var parts []string
	if ts.Fg != "" {
		parts = append(parts, tag.PrefixForeground+":"+ts.Fg)
	}
	if ts.Bg != "" {
		parts = append(parts, tag.PrefixBackground+":"+ts.Bg)
	}
	parts = append(parts, ts.Mod...)
	return strings.Join(parts, ",")
}

// Config is the root configuration structure.
type Config struct {
	// Backend selects the renderer: "lipgloss" or "termenv".
	Backend Backend `yaml:"backend,omitempty" toml:"backend,omitempty"`

	// Color controls colourised output: "auto", "always" or "never".
	Color ColorMode `yaml:"color,omitempty" toml:"color,omitempty"`

	// Extensions lists the file extensions check discovers in directories.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Tags defines custom tags by name.
	Tags map[string]TagStyle `yaml:"tags,omitempty" toml:"tags,omitempty"`

	// Jobs is the number of parallel workers for check. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format is the output format of check.
	Format OutputFormat `yaml:"-" toml:"-"`
}

// DefaultExtensions returns the extensions of markup files.
func DefaultExtensions() []string {
	return []string{".tm", ".tuimarkup"}
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Backend:    BackendLipgloss,
		Color:      ColorAuto,
		Extensions: DefaultExtensions(),
		Tags:       make(map[string]TagStyle),
		Format:     FormatText,
		Jobs:       0,
	}
}

// Styles resolves every custom tag.
func (c *Config) Styles() (map[string]tag.Style, error) {
	styles := make(map[string]tag.Style, len(c.Tags))
	for name, def := range c.Tags {
		style, err := def.Resolve()
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", name, err)
		}
		styles[name] = style
	}
	return styles, nil
}

// TagNames returns the custom tag names in sorted order.
func (c *Config) TagNames() []string {
	names := make([]string, 0, len(c.Tags))
	for name := range c.Tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Extensions = slices.Clone(c.Extensions)
	clone.Ignore = slices.Clone(c.Ignore)

	if c.Tags != nil {
		clone.Tags = make(map[string]TagStyle, len(c.Tags))
		for name, def := range c.Tags {
			def.Mod = slices.Clone(def.Mod)
			clone.Tags[name] = def
		}
	}

	return &clone
}
