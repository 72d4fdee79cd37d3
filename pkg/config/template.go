package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Template formats.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every builtin colour and modifier.
	Full bool

	// Format is "yaml" or "toml".
	Format string
}

// GenerateTemplate creates a commented starter configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", TemplateYAML, TemplateTOML:
	default:
		return nil, fmt.Errorf("unsupported template format %q", opts.Format)
	}

	const comment = "#"

	var buf bytes.Buffer
	buf.WriteString(comment + " tuimarkup configuration\n")
	buf.WriteString(comment + " See: https://github.com/yaklabco/tuimarkup\n\n")

	if opts.Format == TemplateTOML {
		buf.WriteString(tomlTemplateBody)
	} else {
		buf.WriteString(yamlTemplateBody)
	}

	if opts.Full {
		writeBuiltinReference(&buf, comment)
	}

	return buf.Bytes(), nil
}

const yamlTemplateBody = `# Renderer for 'tuimarkup render': lipgloss or termenv
backend: lipgloss

# Colourise output: auto, always, never
color: auto

# File extensions 'tuimarkup check' looks for in directories
extensions:
  - .tm
  - .tuimarkup

# Number of parallel workers for check (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"

# Custom tags, usable like builtin ones: <warning careful>
tags:
  warning:
    fg: yellow
    mod: [b]
  link:
    fg: 66ccff
    mod: [u]
`

const tomlTemplateBody = `# Renderer for 'tuimarkup render': lipgloss or termenv
backend = "lipgloss"

# Colourise output: auto, always, never
color = "auto"

# File extensions 'tuimarkup check' looks for in directories
extensions = [".tm", ".tuimarkup"]

# Number of parallel workers for check (0 = auto)
# jobs = 0

# File patterns to ignore (glob patterns)
# ignore = ["vendor/**"]

# Custom tags, usable like builtin ones: <warning careful>
[tags.warning]
fg = "yellow"
mod = ["b"]

[tags.link]
fg = "66ccff"
mod = ["u"]
`

func writeBuiltinReference(buf *bytes.Buffer, comment string) {
	buf.WriteString("\n" + comment + " Builtin colours (fg:<name>, bg:<name> or bare <name>):\n")

	colors := make([]string, 0, len(tag.NamedColors()))
	for _, named := range tag.NamedColors() {
		colors = append(colors, named.Name)
	}
	buf.WriteString(comment + "   " + strings.Join(colors, ", ") + "\n")
	buf.WriteString(comment + "   plus 6-digit hex (66ccff) and palette indices 0-255\n")

	buf.WriteString(comment + " Builtin modifiers (mod:<name> or bare <name>):\n")
	for _, named := range tag.NamedModifiers() {
		fmt.Fprintf(buf, "%s   %-3s %s\n", comment, named.Name, named.Modifier)
	}
}
