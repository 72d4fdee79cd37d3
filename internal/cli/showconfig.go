package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/pkg/config"
)

func newConfigCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, config files,
TUIMARKUP_* environment variables and command-line flags.

Examples:
  tuimarkup config
  tuimarkup config --format toml
  tuimarkup config --config ./theme.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", config.TemplateYAML, "output format: yaml or toml")

	return cmd
}

func runConfig(cmd *cobra.Command, format string) error {
	if format != config.TemplateYAML && format != config.TemplateTOML {
		return fmt.Errorf("invalid format %q: must be yaml or toml", format)
	}

	cfg, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	var content []byte
	if format == config.TemplateTOML {
		content, err = cfg.ToTOML()
	} else {
		content, err = cfg.ToYAML()
	}
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(content)
	return err
}
