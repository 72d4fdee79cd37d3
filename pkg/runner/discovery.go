package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds the markup files selected by opts.
// It returns absolute paths, sorted and without duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	filter := newFileFilter(workDir, opts)
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Named files skip the extension check.
			if !filter.excluded(absPath) {
				add(absPath)
			}
			continue
		}

		discovered, err := filter.walk(ctx, absPath)
		if err != nil {
			return nil, err
		}
		for _, path := range discovered {
			add(path)
		}
	}

	slices.Sort(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// fileFilter selects files during discovery. Globs match paths relative to workDir.
type fileFilter struct {
	workDir        string
	extensions     []string
	include        []string
	exclude        []string
	followSymlinks bool
}

func newFileFilter(workDir string, opts Options) *fileFilter {
	exts := make([]string, 0, len(opts.effectiveExtensions()))
	for _, ext := range opts.effectiveExtensions() {
		exts = append(exts, strings.ToLower(ext))
	}
	return &fileFilter{
		workDir:        workDir,
		extensions:     exts,
		include:        opts.IncludeGlobs,
		exclude:        opts.ExcludeGlobs,
		followSymlinks: opts.FollowSymlinks,
	}
}

func (f *fileFilter) rel(path string) string {
	relPath, err := filepath.Rel(f.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

func (f *fileFilter) excluded(path string) bool {
	return matchAny(f.rel(path), f.exclude)
}

// selects reports whether a file found while walking a directory is checked.
func (f *fileFilter) selects(path string) bool {
	if !slices.Contains(f.extensions, strings.ToLower(filepath.Ext(path))) {
		return false
	}
	relPath := f.rel(path)
	if matchAny(relPath, f.exclude) {
		return false
	}
	return len(f.include) == 0 || matchAny(relPath, f.include)
}

// walk collects the selected files under root. Hidden entries are skipped.
func (f *fileFilter) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || f.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, isDir, ok := resolveSymlink(path)
			if !ok {
				return nil
			}
			if isDir {
				if !f.followSymlinks {
					return nil
				}
				// WalkDir does not follow the link itself, so walk its target.
				sub, err := f.walk(ctx, target)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if f.selects(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// resolveSymlink returns the target of a symlink and whether it is a directory.
// ok is false for broken or unreadable links.
func resolveSymlink(path string) (target string, isDir, ok bool) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false, false
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", false, false
	}
	return target, info.IsDir(), true
}

func matchAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against pattern.
// Besides filepath.Match syntax it understands "dir/**", "**/name" and "a/**/b".
// A pattern without a slash also matches the base name alone.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if prefix, suffix, ok := strings.Cut(pattern, "**"); ok {
		return matchDoubleStar(path, strings.TrimSuffix(prefix, "/"), strings.TrimPrefix(suffix, "/"))
	}

	if match(pattern, path) {
		return true
	}
	return !strings.Contains(pattern, "/") && match(pattern, filepath.Base(path))
}

func matchDoubleStar(path, prefix, suffix string) bool {
	rest := path
	if prefix != "" {
		if path == prefix {
			return suffix == ""
		}
		var ok bool
		rest, ok = strings.CutPrefix(path, prefix+"/")
		if !ok {
			return false
		}
	}

	if suffix == "" {
		return true
	}

	// Try the suffix against every tail of the remaining components.
	parts := strings.Split(rest, "/")
	for i := range parts {
		tail := strings.Join(parts[i:], "/")
		if match(suffix, tail) {
			return true
		}
		// "**/vendor" also covers everything below vendor.
		for j := i + 1; j < len(parts); j++ {
			if match(suffix, strings.Join(parts[i:j], "/")) {
				return true
			}
		}
	}
	return false
}

func match(pattern, name string) bool {
	matched, err := filepath.Match(pattern, name)
	return err == nil && matched
}
