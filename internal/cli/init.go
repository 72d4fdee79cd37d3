package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/internal/logging"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force   bool
	full    bool
	restore bool
	format  string
	output  string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new tuimarkup configuration file",
		Long: `Create a new .tuimarkup.yml configuration file in the current directory
with the default settings and two example custom tags.

Examples:
  tuimarkup init                       Create .tuimarkup.yml
  tuimarkup init --full                Also list every builtin colour and modifier
  tuimarkup init --format toml         Create .tuimarkup.toml instead
  tuimarkup init --force               Overwrite, keeping the old file as .bak
  tuimarkup init --restore             Put the .bak file back in place`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every builtin colour and modifier")
	cmd.Flags().BoolVar(&flags.restore, "restore", false, "restore the configuration file from its backup")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateYAML, "output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .tuimarkup.yml or .tuimarkup.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	ctx := commandContext(cmd)

	if flags.format != config.TemplateYAML && flags.format != config.TemplateTOML {
		return fmt.Errorf("invalid format %q: must be yaml or toml", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".tuimarkup.yml"
		if flags.format == config.TemplateTOML {
			outputPath = ".tuimarkup.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if flags.restore {
		restored, err := fsutil.Restore(ctx, absPath)
		if err != nil {
			return fmt.Errorf("restore backup: %w", err)
		}
		if !restored {
			return fmt.Errorf("no backup found at %q", fsutil.BackupPath(outputPath))
		}
		logger.Info("restored configuration from backup", logging.FieldPath, outputPath)
		return nil
	}

	if fsutil.Exists(absPath) {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		backupPath, err := fsutil.Backup(ctx, absPath)
		if err != nil {
			return fmt.Errorf("backup existing file: %w", err)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath, "backup", backupPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, 0); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'tuimarkup tags' to see the tags it defines")

	return nil
}
