package cli

import (
	"errors"

	"github.com/yaklabco/tuimarkup/pkg/fsutil"
	"github.com/yaklabco/tuimarkup/pkg/runner"
)

// Exit codes for tuimarkup.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates markup that does not compile, or any other failure.
	ExitFailure = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrCheckFailed is returned by check when a file fails to compile or cannot be read.
	// The diagnostics have already been reported.
	ErrCheckFailed = errors.New("check failed")

	// ErrCompileFailed is returned by render and ast when the input does not compile.
	// The diagnostic has already been printed.
	ErrCompileFailed = errors.New("compile failed")

	// ErrConfig marks errors loading or resolving the configuration.
	ErrConfig = errors.New("invalid configuration")
)

// ExitCodeFromResult determines the exit code of a check run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitFailure
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// IsReported reports whether err only signals a failure whose details were
// already written, so it should not be logged again.
func IsReported(err error) bool {
	return errors.Is(err, ErrCheckFailed) || errors.Is(err, ErrCompileFailed)
}
