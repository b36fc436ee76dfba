// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
package work

import "github.com/google/uuid"

// =============================================================================
// WORKER POOL
// =============================================================================

// Pool accepts Requests and launches a Worker per request on its own
// goroutine. It enforces no concurrency limit, queue, or back-pressure,
// and holds no cross-request state beyond the dispatcher used to route
// callbacks to the event loop.
//
// Submitting multiple concurrent Workers from one Pool is safe. Callers
// coordinate usage themselves, typically by keeping at most one live Worker
// per logical operation and cancel-and-replacing it on re-entry.
type Pool struct {
	dispatcher *Dispatcher
}

// NewPool creates a pool that delivers all callbacks through d.
func NewPool(d *Dispatcher) *Pool {
	return &Pool{dispatcher: d}
}

// Dispatcher returns the dispatcher this pool delivers callbacks through.
func (p *Pool) Dispatcher() *Dispatcher {
	return p.dispatcher
}

// Submit launches req's task body on a new goroutine and returns the live
// Worker handle immediately; it never blocks on task progress or
// completion. Nothing about the request's semantics is validated (a nil
// Run resolves to the errored outcome via panic recovery, like any other
// fault inside the body).
func Submit[T any](p *Pool, req Request[T]) *Worker[T] {
	w := &Worker[T]{
		id:         uuid.New().String(),
		token:      &CancelToken{},
		req:        req,
		dispatcher: p.dispatcher,
	}
	go w.run()
	return w
}
