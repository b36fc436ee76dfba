// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
package work

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// =============================================================================
// WORKER STATE
// =============================================================================

// State represents the lifecycle state of a Worker.
//
// Valid transitions: Running -> Done | Errored | Cancelled. The terminal
// states are mutually exclusive and final.
type State int32

const (
	// StateRunning indicates the task body has been launched and has not
	// yet produced a terminal outcome.
	StateRunning State = iota

	// StateDone indicates the task body returned a result normally.
	StateDone

	// StateErrored indicates the task body failed with something other
	// than the cancellation signal.
	StateErrored

	// StateCancelled indicates the task body observed cancellation at a
	// checkpoint and unwound.
	StateCancelled
)

// String returns the string representation of the worker state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	case StateErrored:
		return "Errored"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// =============================================================================
// WORKER
// =============================================================================

// Worker is one task execution. It owns the CancelToken shared with the
// task body, tracks the lifecycle state, and posts all callback invocations
// onto the dispatcher so they run on the event loop.
//
// For every Worker, exactly one of OnDone/OnError/OnCancel is delivered,
// exactly once, preceded by zero or more OnProgress deliveries in emission
// order. Hold the Worker reference for as long as the operation may need to
// be cancelled and drop it after the terminal callback fires.
type Worker[T any] struct {
	id         string
	token      *CancelToken
	req        Request[T]
	state      atomic.Int32
	dispatcher *Dispatcher
}

// ID returns the unique identifier of this execution.
func (w *Worker[T]) ID() string {
	return w.id
}

// State returns the current lifecycle state. The state becomes terminal
// when the task body finishes, which may be observed slightly before the
// terminal callback is drained by the event loop.
func (w *Worker[T]) State() State {
	return State(w.state.Load())
}

// Cancel requests cooperative cancellation. It sets the token and returns
// immediately without waiting for the task body to observe it. Safe to call
// from any goroutine, multiple times, and after a terminal state has been
// reached (a no-op that triggers no callback).
//
// A task body cancelled before its first checkpoint still completes
// whatever work precedes that checkpoint; there is no instantaneous-abort
// guarantee.
func (w *Worker[T]) Cancel() {
	w.token.Request()
}

// run executes the task body and resolves exactly one terminal outcome.
// It runs on the worker's own goroutine.
func (w *Worker[T]) run() {
	ctx := &Context{token: w.token, emit: w.emitProgress}

	result, err := w.invoke(ctx)

	switch {
	case err == nil:
		w.state.Store(int32(StateDone))
		w.dispatcher.Post(func() {
			if w.req.OnDone != nil {
				w.req.OnDone(result)
			}
		})
	case errors.Is(err, ErrCancelled):
		// Cancellation is never reported as a failure.
		w.state.Store(int32(StateCancelled))
		w.dispatcher.Post(func() {
			if w.req.OnCancel != nil {
				w.req.OnCancel()
			}
		})
	default:
		w.state.Store(int32(StateErrored))
		message := err.Error()
		w.dispatcher.Post(func() {
			if w.req.OnError != nil {
				w.req.OnError(message)
			}
		})
	}
}

// invoke calls the task body, converting a panic into an error so that an
// unexpected fault still resolves to a terminal outcome instead of killing
// the goroutine silently.
func (w *Worker[T]) invoke(ctx *Context) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return w.req.Run(ctx)
}

// emitProgress posts one progress notification onto the dispatcher.
// Posting happens before the terminal outcome is posted, so the FIFO queue
// preserves the emission order ahead of the terminal callback.
func (w *Worker[T]) emitProgress(percent int, message string) {
	if w.req.OnProgress == nil {
		return
	}
	w.dispatcher.Post(func() {
		w.req.OnProgress(percent, message)
	})
}
