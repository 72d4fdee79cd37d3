// Package runner checks many markup files concurrently.
package runner

import "github.com/yaklabco/tuimarkup/pkg/config"

// Options controls file discovery and checking.
type Options struct {
	// Paths are the files or directories to check.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and globs.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions selects the files picked up when walking a directory.
	// Files named explicitly in Paths are checked whatever their extension.
	// Defaults to config.DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts directory walks to matching files.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// OptionsFromConfig builds options for paths from the resolved configuration.
func OptionsFromConfig(cfg *config.Config, workingDir string, paths []string) Options {
	opts := Options{
		Paths:      paths,
		WorkingDir: workingDir,
	}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.ExcludeGlobs = cfg.Ignore
		opts.Jobs = cfg.Jobs
	}
	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
