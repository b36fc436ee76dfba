// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and validates treedrive settings from
// ~/.treedrive/config.toml, with environment variable overrides.
package config
