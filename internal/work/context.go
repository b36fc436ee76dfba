// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
package work

import "errors"

// ErrCancelled is the distinguished cancellation signal. A task body that
// observes cancellation at a checkpoint must return this error (or an error
// wrapping it) to unwind; the Worker then resolves to the cancelled outcome
// rather than the errored one.
var ErrCancelled = errors.New("operation cancelled")

// =============================================================================
// WORK CONTEXT
// =============================================================================

// Context is the handle passed into a running task body. It wraps the
// owning Worker's CancelToken and a progress-emission function. A fresh
// Context is created per task invocation and must not be retained after
// the task body returns.
type Context struct {
	token *CancelToken
	emit  func(percent int, message string)
}

// CheckCancelled is the task body's cancellation checkpoint. It returns
// ErrCancelled when cancellation has been requested and nil otherwise.
// Propagating the returned error is the only legal way a task body observes
// cancellation; a body that swallows it will be reported as done or errored
// by whatever it returns instead.
//
// Insert checkpoints at every point where unwinding is acceptable. The
// engine bounds cancellation latency only by "next checkpoint".
func (c *Context) CheckCancelled() error {
	if c.token.Requested() {
		return ErrCancelled
	}
	return nil
}

// Progress queues a progress notification for delivery on the event loop.
// Percent is advisory: it is neither clamped to [0,100] nor checked for
// monotonicity, so the task body is responsible for a sensible sequence.
// Call it only from the task body's own goroutine.
func (c *Context) Progress(percent int, message string) {
	if c.emit != nil {
		c.emit(percent, message)
	}
}
