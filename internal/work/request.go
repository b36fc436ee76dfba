// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
package work

// =============================================================================
// WORK REQUEST
// =============================================================================

// Request describes one unit of background work: the task body plus the
// callbacks to invoke on the event loop as the work proceeds. A Request is
// pure data; treat it as immutable once submitted.
//
// Any callback left nil is simply not invoked.
type Request[T any] struct {
	// Run is the task body. It executes on its own goroutine, receives a
	// Context for cancellation checkpoints and progress reporting, and
	// produces a result or an error. Return ErrCancelled (or an error
	// wrapping it) to unwind after a cancellation checkpoint fires.
	Run func(*Context) (T, error)

	// OnDone is invoked with the result when Run returns normally.
	OnDone func(T)

	// OnError is invoked with a human-readable message when Run fails with
	// anything other than the cancellation signal. The callback surface is
	// string-based so callers can render it directly.
	OnError func(message string)

	// OnProgress is invoked for each Context.Progress call, in emission
	// order, always before the terminal callback.
	OnProgress func(percent int, message string)

	// OnCancel is invoked when Run unwinds with the cancellation signal.
	OnCancel func()
}
