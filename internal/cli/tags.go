package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/internal/ui/pretty"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/generator/lipglossgen"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Tag kinds accepted by --kind.
const (
	tagKindAll      = "all"
	tagKindColor    = "color"
	tagKindModifier = "modifier"
	tagKindCustom   = "custom"
	tagSampleText   = "sample"
)

func newTagsCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags markup can use",
		Long: `List builtin colours and modifiers, and the custom tags defined in the
configuration, each with a rendered sample.

Colours can also be written as 6-digit hex (66ccff) or palette indices 0-255,
with an optional fg: or bg: prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTags(cmd, kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", tagKindAll, "tags to list: all, color, modifier, custom")

	return cmd
}

func runTags(cmd *cobra.Command, kind string) error {
	kinds := []string{tagKindAll, tagKindColor, tagKindModifier, tagKindCustom}
	if !slices.Contains(kinds, kind) {
		return fmt.Errorf("invalid kind %q: must be one of all, color, modifier, custom", kind)
	}

	cfg, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorMode := string(cfg.Color)
	renderer := pretty.NewRenderer(colorMode, out)
	sample := func(style tag.Style) string {
		return lipglossgen.StyleFrom(renderer, style).Render(tagSampleText)
	}

	var sections [][]pretty.TableRow

	if kind == tagKindAll || kind == tagKindColor {
		var rows []pretty.TableRow
		for _, named := range tag.NamedColors() {
			rows = append(rows, pretty.TableRow{
				named.Name, tagKindColor, named.Color.String(), sample(tag.Fg(named.Color)),
			})
		}
		sections = append(sections, rows)
	}

	if kind == tagKindAll || kind == tagKindModifier {
		var rows []pretty.TableRow
		for _, named := range tag.NamedModifiers() {
			rows = append(rows, pretty.TableRow{
				named.Name, tagKindModifier, named.Modifier.String(), sample(tag.Mod(named.Modifier)),
			})
		}
		sections = append(sections, rows)
	}

	if kind == tagKindAll || kind == tagKindCustom {
		var rows []pretty.TableRow
		for _, name := range cfg.TagNames() {
			def := cfg.Tags[name]
			style, err := def.Resolve()
			if err != nil {
				return errors.Join(ErrConfig, fmt.Errorf("tag %q: %w", name, err))
			}
			rows = append(rows, pretty.TableRow{name, tagKindCustom, def.String(), sample(style)})
		}
		if len(rows) > 0 {
			sections = append(sections, rows)
		}
	}

	var rows []pretty.TableRow
	for i, section := range sections {
		if i > 0 {
			rows = append(rows, nil)
		}
		rows = append(rows, section...)
	}

	if len(rows) == 0 {
		_, err := io.WriteString(out, "No custom tags defined\n")
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	table := pretty.NewTableFormatter(styles).FormatTable([]string{"TAG", "KIND", "VALUE", "SAMPLE"}, rows)
	_, err = io.WriteString(out, table)
	return err
}
