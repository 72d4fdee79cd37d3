package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/tuimarkup/pkg/config"
)

// envVarPrefix is the prefix for all tuimarkup environment variables.
const envVarPrefix = "TUIMARKUP_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeSlice
)

// envMapping binds an environment variable to a config field.
type envMapping struct {
	typ         envFieldType
	description string
	set         func(cfg *config.Config, value any)
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"BACKEND": {envTypeString, "Renderer: lipgloss or termenv", func(cfg *config.Config, v any) {
		cfg.Backend = config.Backend(v.(string))
	}},
	"COLOR": {envTypeString, "Colourise output: auto, always or never", func(cfg *config.Config, v any) {
		cfg.Color = config.ColorMode(v.(string))
	}},
	"FORMAT": {envTypeString, "Check output format: text, table, json or summary", func(cfg *config.Config, v any) {
		cfg.Format = config.OutputFormat(v.(string))
	}},
	"JOBS": {envTypeInt, "Number of parallel workers (0 = auto)", func(cfg *config.Config, v any) {
		cfg.Jobs = v.(int)
	}},
	"IGNORE": {envTypeSlice, "Comma-separated list of ignore patterns", func(cfg *config.Config, v any) {
		cfg.Ignore = v.([]string)
	}},
	"EXTENSIONS": {envTypeSlice, "Comma-separated list of markup file extensions", func(cfg *config.Config, v any) {
		cfg.Extensions = v.([]string)
	}},
}

// LoadFromEnv applies TUIMARKUP_* environment variables to cfg.
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for suffix, mapping := range envMappings {
		envVar := envVarPrefix + suffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		switch mapping.typ {
		case envTypeString:
			mapping.set(cfg, strings.TrimSpace(value))
		case envTypeInt:
			i, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("invalid integer for %s: %q", envVar, value)
			}
			mapping.set(cfg, i)
		case envTypeSlice:
			mapping.set(cfg, parseSliceValue(value))
		}
	}

	return nil
}

// parseSliceValue splits a comma-separated value, trimming and dropping empty parts.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
