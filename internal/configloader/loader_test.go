package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/tuimarkup/pkg/config"
)

// isolated returns load options that only see files under dir and the given environment.
func isolated(dir string, env map[string]string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		LookupEnv: func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref: main\n")

	result, err := Load(context.Background(), isolated(tmpDir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Backend != config.BackendLipgloss {
		t.Errorf("expected backend %q, got %q", config.BackendLipgloss, cfg.Backend)
	}
	if cfg.Color != config.ColorAuto {
		t.Errorf("expected color %q, got %q", config.ColorAuto, cfg.Color)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref: main\n")
	writeFile(t, filepath.Join(tmpDir, ".tuimarkup.yml"), `
backend: termenv
tags:
  warning:
    fg: yellow
    mod: [b]
`)

	subDir := filepath.Join(tmpDir, "docs", "guide")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolated(subDir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Backend != config.BackendTermenv {
		t.Errorf("expected backend termenv, got %q", result.Config.Backend)
	}
	if _, ok := result.Config.Tags["warning"]; !ok {
		t.Error("expected warning tag from project config")
	}
	if len(result.Config.Extensions) == 0 {
		t.Error("defaults should survive fields absent from the project config")
	}
	if len(result.LoadedFrom) != 1 || !strings.HasSuffix(result.LoadedFrom[0], ".tuimarkup.yml") {
		t.Errorf("unexpected LoadedFrom %v", result.LoadedFrom)
	}
}

func TestLoad_TOMLProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref: main\n")
	writeFile(t, filepath.Join(tmpDir, ".tuimarkup.toml"), `
color = "never"

[tags.link]
fg = "66ccff"
mod = ["u"]
`)

	result, err := Load(context.Background(), isolated(tmpDir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != config.ColorNever {
		t.Errorf("expected color never, got %q", result.Config.Color)
	}
	if result.Config.Tags["link"].Fg != "66ccff" {
		t.Errorf("expected link tag, got %+v", result.Config.Tags)
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref: main\n")
	writeFile(t, filepath.Join(tmpDir, ".tuimarkup.yml"), `
backend: termenv
color: always
jobs: 2
tags:
  a: { fg: red }
`)
	explicit := filepath.Join(tmpDir, "ci", "explicit.yaml")
	writeFile(t, explicit, `
color: never
tags:
  b: { fg: blue }
`)

	opts := isolated(tmpDir, map[string]string{
		"TUIMARKUP_JOBS":   "8",
		"TUIMARKUP_IGNORE": " vendor/** , ,build/**",
	})
	opts.ExplicitPath = explicit
	opts.CLIConfig = &config.Config{Backend: config.BackendLipgloss}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Backend != config.BackendLipgloss {
		t.Errorf("CLI should win: got backend %q", cfg.Backend)
	}
	if cfg.Color != config.ColorNever {
		t.Errorf("explicit config should beat project: got color %q", cfg.Color)
	}
	if cfg.Jobs != 8 {
		t.Errorf("environment should beat files: got jobs %d", cfg.Jobs)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "vendor/**" || cfg.Ignore[1] != "build/**" {
		t.Errorf("unexpected ignore %v", cfg.Ignore)
	}
	if _, ok := cfg.Tags["a"]; !ok {
		t.Error("tags from project config should be merged")
	}
	if _, ok := cfg.Tags["b"]; !ok {
		t.Error("tags from explicit config should be merged")
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("unexpected LoadedFrom %v", result.LoadedFrom)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    string
	}{
		{"malformed yaml", "backend: [", nil, "parse yaml"},
		{"unknown backend", "backend: curses", nil, `unknown backend "curses"`},
		{"unknown tag color", "tags:\n  bad: { fg: nope }", nil, "tags.bad"},
		{"bad tag name", "tags:\n  \"a b\": { fg: red }", nil, "tag name may only contain"},
		{"bad extension", "extensions: [tm]", nil, "must start with '.'"},
		{"bad env int", "", map[string]string{"TUIMARKUP_JOBS": "many"}, "invalid integer for TUIMARKUP_JOBS"},
		{"bad env color", "", map[string]string{"TUIMARKUP_COLOR": "sometimes"}, "unknown color mode"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref: main\n")
			if testCase.content != "" {
				writeFile(t, filepath.Join(tmpDir, ".tuimarkup.yml"), testCase.content)
			}

			_, err := Load(context.Background(), isolated(tmpDir, testCase.env))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), testCase.want) {
				t.Errorf("expected error containing %q, got %q", testCase.want, err.Error())
			}
		})
	}
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref: main\n")
	writeFile(t, filepath.Join(tmpDir, ".tuimarkup.yml"), `
tags:
  b: { fg: red }
  empty: {}
`)

	result, err := Load(context.Background(), isolated(tmpDir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	joined := strings.Join(result.Warnings, "\n")
	if !strings.Contains(joined, `shadows the builtin tag "b"`) {
		t.Errorf("expected shadow warning, got %q", joined)
	}
	if !strings.Contains(joined, "tags.empty") {
		t.Errorf("expected empty tag warning, got %q", joined)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir(), nil))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".tuimarkup.yml"), "backend: termenv\n")

	repo := filepath.Join(outer, "repo")
	writeFile(t, filepath.Join(repo, ".git", "HEAD"), "ref: main\n")

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("search should stop at the VCS root, found %q", path)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Jobs: 3, Tags: map[string]config.TagStyle{"x": {Fg: "red"}}},
		&config.Config{Extensions: []string{".txt"}, Tags: map[string]config.TagStyle{"x": {Fg: "blue"}}},
	)

	if merged.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", merged.Jobs)
	}
	if merged.Backend != config.BackendLipgloss {
		t.Errorf("expected default backend, got %q", merged.Backend)
	}
	if len(merged.Extensions) != 1 || merged.Extensions[0] != ".txt" {
		t.Errorf("expected extensions to be replaced, got %v", merged.Extensions)
	}
	if merged.Tags["x"].Fg != "blue" {
		t.Errorf("expected later tag definition to win, got %+v", merged.Tags["x"])
	}
	if MergeAll() != nil {
		t.Error("MergeAll() with no configs should be nil")
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d vars, got %d", len(envMappings), len(vars))
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Name >= vars[i].Name {
			t.Errorf("vars not sorted: %q before %q", vars[i-1].Name, vars[i].Name)
		}
	}
}
