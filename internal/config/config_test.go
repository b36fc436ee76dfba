// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "rclone", cfg.Rclone.Binary)
	assert.Equal(t, 30, cfg.Rclone.TimeoutSecs)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 10, cfg.Demo.Steps)
	assert.True(t, cfg.Watcher.Enabled)
}

func TestValidateClampsValues(t *testing.T) {
	cfg := Default()
	cfg.Rclone.TimeoutSecs = -5
	cfg.Rclone.MaxDepth = 0
	cfg.Demo.Steps = -1
	cfg.Demo.StepDelayMs = -100
	cfg.Watcher.DebounceMs = 0

	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Rclone.TimeoutSecs)
	assert.Equal(t, 16, cfg.Rclone.MaxDepth)
	assert.Equal(t, 10, cfg.Demo.Steps)
	assert.Equal(t, 0, cfg.Demo.StepDelayMs)
	assert.Equal(t, 500, cfg.Watcher.DebounceMs)
}

func TestValidateRejectsUnknownTheme(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"

	assert.Error(t, cfg.Validate())
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default().Rclone, cfg.Rclone)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TREEDRIVE_RCLONE_BIN", "/opt/rclone/rclone")
	t.Setenv("TREEDRIVE_THEME", "light")
	t.Setenv("TREEDRIVE_RCLONE_TIMEOUT", "90")
	t.Setenv("TREEDRIVE_WATCH_CONFIG", "false")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/opt/rclone/rclone", cfg.Rclone.Binary)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 90, cfg.Rclone.TimeoutSecs)
	assert.False(t, cfg.Watcher.Enabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Rclone.Binary = "/usr/local/bin/rclone"
	cfg.UI.Theme = "light"
	cfg.Demo.Steps = 20

	require.NoError(t, SaveToPath(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Rclone.Binary, loaded.Rclone.Binary)
	assert.Equal(t, cfg.UI.Theme, loaded.UI.Theme)
	assert.Equal(t, cfg.Demo.Steps, loaded.Demo.Steps)
}
