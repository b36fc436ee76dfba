// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rclone shells out to the rclone binary for remote and directory
// listings, and watches rclone.conf for edits made outside the app.
//
// Listings take a Canceller and check it before and after the subprocess,
// so a cancelled caller never pays for output it will discard. Subprocess
// failures surface as the stderr text when rclone produced any, which is
// where rclone puts its human-readable diagnostics.
package rclone
