package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tuimarkup/internal/logging"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/reporter"
	"github.com/yaklabco/tuimarkup/pkg/runner"
)

type checkFlags struct {
	format    string
	jobs      int
	ignore    []string
	noContext bool
	compact   bool
	group     bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check that markup files compile",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.group, "group", false, "print a header per failing file")

	return cmd
}

const checkLongDescription = `Parse every markup file and resolve its tags without rendering.

By default, checks all .tm and .tuimarkup files under the current directory.
Files named on the command line are checked whatever their extension; "-"
checks standard input. Custom tags from the configuration count as valid.

Examples:
  tuimarkup check                     Check the current directory
  tuimarkup check templates/          Check a directory
  tuimarkup check banner.txt          Check a single file
  tuimarkup check --format json       Output as JSON for CI
  tuimarkup check --ignore 'vendor/**'`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	checker, err := runner.NewFromConfig(cfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	var result *runner.Result
	if len(args) == 1 && args[0] == "-" {
		name, content, err := readInput(cmd, "-")
		if err != nil {
			return err
		}
		result = runner.NewResult(checker.Check(name, content))
	} else {
		runOpts := runner.OptionsFromConfig(cfg, workDir, args)

		logger.Debug("starting check run",
			logging.FieldPaths, runOpts.Paths,
			logging.FieldWorkingDir, runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err = checker.Run(ctx, runOpts)
		if err != nil {
			return errors.Join(errors.New("check run failed"), err)
		}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       string(cfg.Color),
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: flags.group,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrCheckFailed
	}
	return nil
}
