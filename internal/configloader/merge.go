package configloader

import (
	"maps"

	"github.com/yaklabco/tuimarkup/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalars: override wins when non-zero
//   - Tags: merged by name, override's definition replaces base's
//   - Slices: override replaces base entirely when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Backend != "" {
		result.Backend = override.Backend
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	if base.Tags != nil || override.Tags != nil {
		result.Tags = make(map[string]config.TagStyle, len(base.Tags)+len(override.Tags))
		maps.Copy(result.Tags, base.Tags)
		maps.Copy(result.Tags, override.Tags)
	}

	return &result
}

// MergeAll merges configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
