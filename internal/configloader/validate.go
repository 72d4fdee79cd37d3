package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "tags.warning").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !cfg.Backend.IsValid() {
		result.addError("backend", cfg.Backend, "unknown backend %q (expected lipgloss or termenv)", cfg.Backend)
	}
	if !cfg.Color.IsValid() {
		result.addError("color", cfg.Color, "unknown color mode %q (expected auto, always or never)", cfg.Color)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.addError("format", cfg.Format, "unknown format %q (expected text, table, json or summary)", cfg.Format)
	}
	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "must not be negative")
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.addError(fmt.Sprintf("extensions[%d]", i), ext, "extension %q must start with '.'", ext)
		}
	}

	for _, name := range cfg.TagNames() {
		validateTag(result, name, cfg.Tags[name])
	}

	return result
}

func validateTag(result *ValidationResult, name string, def config.TagStyle) {
	field := "tags." + name

	if !isTagName(name) {
		result.addError(field, name, "tag name may only contain letters, digits, ':', '+' and '-'")
		return
	}

	if _, err := def.Resolve(); err != nil {
		result.addError(field, def, "%v", err)
		return
	}

	if def.Fg == "" && def.Bg == "" && len(def.Mod) == 0 {
		result.addWarning(field, def, "tag has no style and renders as plain text")
	}

	span := markup.NewSpan(name, 1)
	if _, ok := tag.StandardConvertor{}.Convert(span); ok {
		result.addWarning(field, name, "custom tag shadows the builtin tag %q", name)
	}
}

// isTagName reports whether name would parse as a single tag.
func isTagName(name string) bool {
	items, err := markup.ParseLine("<"+name+" >", 1)
	return err == nil && len(items) == 1 && len(items[0].Tags) == 1
}
