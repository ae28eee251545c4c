// Package config loads environment-driven settings for hosting binaries.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Env holds the settings a hosting binary reads from the environment.
type Env struct {
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	StartDir          string `envconfig:"START_DIR"`
	BoundaryDir       string `envconfig:"BOUNDARY_DIR"`
	CompatPrefixMatch bool   `envconfig:"COMPAT_PREFIX_MATCH" default:"false"`
}

const namespace = "ALLOWDIRS"

// LoadEnv reads ALLOWDIRS_* environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &env, nil
}

// SlogLevel parses LogLevel, defaulting to info on unknown values.
func (e *Env) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
