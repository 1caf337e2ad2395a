// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for forgelink.
//
// Configuration is loaded from a single YAML file specified by:
//   - FORGELINK_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. With neither source
// set, [Load] returns the defaults. This keeps configuration
// deterministic: a given invocation reads exactly one file or none.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at the config
// file when no --config flag is given.
const EnvVar = "FORGELINK_CONFIG"

// Config is the tool configuration. Per-document inputs (the forge
// fixture, the ambient project) are command arguments, not config:
// config holds only the knobs that are stable across invocations.
type Config struct {
	// HighlightStyle is the chroma style name for fenced code
	// blocks (e.g. "github", "monokai").
	HighlightStyle string `yaml:"highlight_style"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HighlightStyle: "github",
		LogLevel:       "info",
	}
}

// Load reads the configuration file at path. An empty path falls
// back to the FORGELINK_CONFIG environment variable; if that is also
// unset, the defaults are returned. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
}
