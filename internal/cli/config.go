package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/tuimarkup/internal/configloader"
	"github.com/yaklabco/tuimarkup/internal/logging"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/fsutil"
)

// stdinName is the path reported for markup read from standard input.
const stdinName = "<stdin>"

var errNoInput = errors.New("no input: pass a file, or pipe markup on standard input")

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the effective configuration for cmd.
// cliCfg carries the values of flags the user set explicitly; the persistent
// --color flag is folded in here.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldBackend, cfg.Backend,
		logging.FieldColor, cfg.Color,
		logging.FieldJobs, cfg.Jobs,
	)

	return cfg, nil
}

// inputArgs returns the inputs to compile. With no arguments markup is read
// from standard input, unless that is a terminal.
func inputArgs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errNoInput
	}
	return []string{"-"}, nil
}

// readInput reads one input argument. "-" is standard input.
func readInput(cmd *cobra.Command, arg string) (string, []byte, error) {
	if arg == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return stdinName, nil, fmt.Errorf("read standard input: %w", err)
		}
		return stdinName, content, nil
	}

	content, err := fsutil.ReadFile(commandContext(cmd), arg)
	if err != nil {
		return arg, nil, err
	}
	return arg, content, nil
}
