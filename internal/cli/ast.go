package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/markup"
)

// AST dump formats.
const (
	astFormatRepr = "repr"
	astFormatJSON = "json"
)

// astLine is one source line of the dumped tree.
type astLine struct {
	Line  int       `json:"line"`
	Items []astNode `json:"items"`
}

// astNode is a markup.Item with its spans resolved to text and positions.
// Text is the plain text as written; Value is the text it renders as.
type astNode struct {
	Kind     string    `json:"kind"`
	Line     int       `json:"line"`
	Column   int       `json:"column"`
	Text     string    `json:"text,omitempty"`
	Value    string    `json:"value,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Children []astNode `json:"children,omitempty"`
}

func newASTCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast [file|-]",
		Short: "Print the syntax tree of markup",
		Long: `Parse markup and print its syntax tree, one entry per source line.

Tags are shown as written; they are not resolved, so unknown tags do not
fail here. Use 'tuimarkup check' for that.

Examples:
  tuimarkup ast banner.tm
  echo '<b hi <u there>>' | tuimarkup ast --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", astFormatRepr, "output format: repr or json")

	return cmd
}

func runAST(cmd *cobra.Command, args []string, format string) error {
	if format != astFormatRepr && format != astFormatJSON {
		return fmt.Errorf("invalid format %q: must be repr or json", format)
	}

	cfg, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	inputs, err := inputArgs(cmd, args)
	if err != nil {
		return err
	}

	name, content, err := readInput(cmd, inputs[0])
	if err != nil {
		return err
	}

	source := strings.TrimSuffix(string(content), "\n")
	ast, err := markup.Parse(source)
	if err != nil {
		stageErr := &compiler.Error{Stage: compiler.StageParse, Err: err}
		printDiagnostic(cmd, string(cfg.Color), compiler.NewDiagnostic(name, source, stageErr))
		return ErrCompileFailed
	}

	lines := dumpAST(ast)
	out := cmd.OutOrStdout()

	if format == astFormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(lines); err != nil {
			return fmt.Errorf("encode ast: %w", err)
		}
		return nil
	}

	_, err = io.WriteString(out, repr.String(lines, repr.Indent("  "), repr.OmitEmpty(true))+"\n")
	return err
}

func dumpAST(ast [][]markup.Item) []astLine {
	lines := make([]astLine, len(ast))
	for i, items := range ast {
		lines[i] = astLine{Line: i + 1, Items: dumpItems(items)}
	}
	return lines
}

func dumpItems(items []markup.Item) []astNode {
	nodes := make([]astNode, 0, len(items))
	for _, item := range items {
		if !item.IsElement() {
			nodes = append(nodes, astNode{
				Kind:   item.Kind.String(),
				Line:   item.Text.Line(),
				Column: item.Text.Column(),
				Text:   item.Text.Fragment(),
				Value:  markup.UnescapeString(item.Text.Fragment()),
			})
			continue
		}

		first := item.Tags[0]
		nodes = append(nodes, astNode{
			Kind:     item.Kind.String(),
			Line:     first.Line(),
			Column:   first.Column() - 1,
			Tags:     item.TagNames(),
			Children: dumpItems(item.Children),
		})
	}
	return nodes
}
