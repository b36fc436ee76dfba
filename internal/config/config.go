// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for treedrive.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - path given on the command line (--config)
//   - ~/.treedrive/config.toml
//   - built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/treedrive-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete treedrive configuration.
type Config struct {
	Version string `toml:"version"`

	// Rclone configuration
	Rclone RcloneConfig `toml:"rclone"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Demo background-work task configuration
	Demo DemoConfig `toml:"demo"`

	// Rclone config-file watcher configuration
	Watcher WatcherConfig `toml:"watcher"`
}

// RcloneConfig controls how the rclone binary is invoked.
type RcloneConfig struct {
	// Binary is the rclone executable path; empty means "rclone" on PATH.
	Binary string `toml:"binary"`
	// TimeoutSecs bounds a single rclone invocation, in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
	// MaxDepth is the deepest tree level the browser will expand into.
	MaxDepth int `toml:"max_depth"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme selects the color palette: "dark" or "light".
	Theme string `toml:"theme"`
}

// DemoConfig controls the demo background-work task.
type DemoConfig struct {
	// Steps is the number of progress steps the demo task walks through.
	Steps int `toml:"steps"`
	// StepDelayMs is the simulated work per step, in milliseconds.
	StepDelayMs int `toml:"step_delay_ms"`
}

// WatcherConfig controls the rclone config-file watcher.
type WatcherConfig struct {
	// Enabled turns automatic remote reloading on or off.
	Enabled bool `toml:"enabled"`
	// DebounceMs collapses bursts of config writes, in milliseconds.
	DebounceMs int `toml:"debounce_ms"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Rclone: RcloneConfig{
			Binary:      "rclone",
			TimeoutSecs: 30,
			MaxDepth:    16,
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Demo: DemoConfig{
			Steps:       10,
			StepDelayMs: 250,
		},
		Watcher: WatcherConfig{
			Enabled:    true,
			DebounceMs: 500,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the treedrive configuration directory (~/.treedrive).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".treedrive"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the configuration from the default location. A missing file is
// not an error: defaults are used. Environment overrides are applied last,
// then the result is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the configuration from an explicit path, falling back
// to defaults when the file does not exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies TREEDRIVE_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if bin := os.Getenv("TREEDRIVE_RCLONE_BIN"); bin != "" {
		c.Rclone.Binary = bin
	}

	if theme := os.Getenv("TREEDRIVE_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if timeout := os.Getenv("TREEDRIVE_RCLONE_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			c.Rclone.TimeoutSecs = secs
		}
	}

	if watch := os.Getenv("TREEDRIVE_WATCH_CONFIG"); watch != "" {
		c.Watcher.Enabled = watch == "1" || strings.ToLower(watch) == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration and clamps out-of-range values to the
// nearest sensible bound. It returns an error only for values that cannot
// be repaired.
func (c *Config) Validate() error {
	if c.Rclone.TimeoutSecs <= 0 {
		c.Rclone.TimeoutSecs = 30
	}
	if c.Rclone.MaxDepth <= 0 {
		c.Rclone.MaxDepth = 16
	}

	switch c.UI.Theme {
	case "dark", "light":
	case "":
		c.UI.Theme = "dark"
	default:
		return fmt.Errorf("unknown theme %q (valid: dark, light)", c.UI.Theme)
	}

	if c.Demo.Steps <= 0 {
		c.Demo.Steps = 10
	}
	if c.Demo.StepDelayMs < 0 {
		c.Demo.StepDelayMs = 0
	}

	if c.Watcher.DebounceMs <= 0 {
		c.Watcher.DebounceMs = 500
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default location.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit path atomically.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# treedrive configuration file")
	fmt.Fprintln(&buf, "# Generated by treedrive - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
