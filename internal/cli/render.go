package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/internal/logging"
	"github.com/yaklabco/tuimarkup/internal/ui/pretty"
	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/fsutil"
	"github.com/yaklabco/tuimarkup/pkg/generator/lipglossgen"
	"github.com/yaklabco/tuimarkup/pkg/generator/termenvgen"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

type renderFlags struct {
	backend string
	output  string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file|-]...",
		Short: "Render markup to the terminal",
		Long: `Compile markup files and print the styled text.

With no arguments, or "-", markup is read from standard input. Several files
are rendered one after the other. Compilation stops at the first error, which
is printed with its location.

Examples:
  tuimarkup render banner.tm
  echo '<b,red fail>' | tuimarkup render
  tuimarkup render --backend termenv --color always motd.tm
  tuimarkup render -o motd.ansi motd.tm      Write escape codes to a file`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.backend, "backend", "lipgloss", "renderer: lipgloss or termenv")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write to a file instead of standard output (colour is kept unless --color never)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("backend") {
		cliCfg.Backend = config.Backend(flags.backend)
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	styles, err := cfg.Styles()
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	inputs, err := inputArgs(cmd, args)
	if err != nil {
		return err
	}

	colorMode := string(cfg.Color)
	if flags.output != "" && cfg.Color == config.ColorAuto {
		colorMode = string(config.ColorAlways)
	}
	compile := newCompileFunc(cfg.Backend, styles, colorMode, cmd.OutOrStdout())

	var rendered strings.Builder
	for _, input := range inputs {
		name, content, err := readInput(cmd, input)
		if err != nil {
			return err
		}

		source := strings.TrimSuffix(string(content), "\n")
		text, err := compile(source)
		if err != nil {
			printDiagnostic(cmd, string(cfg.Color), compiler.NewDiagnostic(name, source, err))
			return ErrCompileFailed
		}

		logger.Debug("rendered", logging.FieldPath, name, logging.FieldBackend, cfg.Backend)
		rendered.WriteString(text)
		rendered.WriteString("\n")
	}

	if flags.output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), rendered.String())
		return err
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, []byte(rendered.String()), 0)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("wrote output", logging.FieldOutput, flags.output, "changed", changed)
	return nil
}

// newCompileFunc builds the compile step for backend. Colours are chosen for w.
func newCompileFunc(
	backend config.Backend,
	styles map[string]tag.Style,
	colorMode string,
	w io.Writer,
) func(string) (string, error) {
	if backend == config.BackendTermenv {
		gen := termenvgen.New(termenvgen.Options{Styles: styles})
		profile := pretty.ColorProfile(colorMode, w)
		return func(source string) (string, error) {
			text, err := gen.Compile(source)
			if err != nil {
				return "", err
			}
			return text.Render(profile), nil
		}
	}

	gen := lipglossgen.New(lipglossgen.Options{
		Renderer: pretty.NewRenderer(colorMode, w),
		Styles:   styles,
	})
	return gen.Compile
}

func printDiagnostic(cmd *cobra.Command, colorMode string, diag compiler.Diagnostic) {
	errOut := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, errOut))
	fmt.Fprint(errOut, styles.FormatDiagnostic(diag, true))
}
