// Package cli provides the Cobra command structure for tuimarkup.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tuimarkup command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "tuimarkup",
		Short: "Render and check terminal markup",
		Long: `tuimarkup compiles a small tag language into styled terminal text.

  <b,fg:red Error:> file <u,cyan config.yml> not found

Elements open with '<', a comma-separated tag list and a space, and close
with '>'. Tags name colours (red, fg:66ccff, bg:blue), modifiers (b, i, u)
or custom styles defined in .tuimarkup.yml. Write \<, \> and \\ for literal
characters.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newASTCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
