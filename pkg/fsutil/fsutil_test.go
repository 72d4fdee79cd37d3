package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/tuimarkup/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.tm")
	if err := os.WriteFile(path, []byte("<b hi>"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	content, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "<b hi>" {
		t.Errorf("content = %q", content)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "missing.tm"), fsutil.ErrNotFound},
		{"directory", dir, fsutil.ErrIsDirectory},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := fsutil.ReadFile(context.Background(), testCase.path)
			if !errors.Is(err, testCase.want) {
				t.Errorf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestReadFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fsutil.ReadFile(ctx, "whatever"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if !fsutil.Exists(dir) {
		t.Error("directory should exist")
	}
	if fsutil.Exists(filepath.Join(dir, "nope")) {
		t.Error("missing file should not exist")
	}
}
