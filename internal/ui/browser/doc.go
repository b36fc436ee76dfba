// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser implements the interactive remote browser.
//
// The browser walks an rclone remote as a lazily-loaded folder tree. Every
// listing runs on the work pool; results come back through the dispatcher,
// which Update drains on the Bubble Tea goroutine. Selecting a collapsed
// folder cancels any listing already in flight for the tree and starts a
// fresh one, so stale results never land on the wrong node.
package browser
