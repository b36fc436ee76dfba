// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the treedrive application.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width aware truncation with ellipsis
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
