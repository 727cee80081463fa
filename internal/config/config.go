// Package config resolves the small set of environment-driven defaults
// the public API and CLI front ends fall back to when a caller doesn't
// supply an explicit value: where to find a model file, and how
// verbosely to log.
package config

import "github.com/xyproto/env/v2"

// Defaults holds environment-derived fallback values.
type Defaults struct {
	ModelPath string
	LogLevel  string
	Environment string
}

// Load reads NEUROZIP_MODEL_PATH, NEUROZIP_LOG_LEVEL and
// NEUROZIP_ENVIRONMENT from the process environment, falling back to
// sensible defaults for a library used outside of a service context.
func Load() Defaults {
	return Defaults{
		ModelPath:   env.Str("NEUROZIP_MODEL_PATH", ""),
		LogLevel:    env.Str("NEUROZIP_LOG_LEVEL", "info"),
		Environment: env.Str("NEUROZIP_ENVIRONMENT", "production"),
	}
}
