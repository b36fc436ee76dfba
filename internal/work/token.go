// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
package work

import "sync/atomic"

// =============================================================================
// CANCELLATION TOKEN
// =============================================================================

// CancelToken is a one-way cancellation flag shared between the submitting
// side and a running task body. The zero value is ready to use.
//
// There is no way to unset the flag: cancellation is one-way per Worker.
type CancelToken struct {
	requested atomic.Bool
}

// Request sets the flag. It is idempotent and safe to call from any
// goroutine, any number of times.
func (t *CancelToken) Request() {
	t.requested.Store(true)
}

// Requested reports whether cancellation has been requested. It is
// non-blocking and safe to call from any goroutine.
func (t *CancelToken) Requested() bool {
	return t.requested.Load()
}
