// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
package work

import "sync"

// =============================================================================
// EVENT-LOOP DISPATCHER
// =============================================================================

// Dispatcher is the delivery queue between background goroutines and the
// application's event loop. Closures may be posted from any goroutine;
// whichever single goroutine drains the queue becomes the "main thread" on
// which every callback runs.
//
// The queue is strictly FIFO. Because each Worker posts its progress
// notifications before its terminal outcome, per-worker ordering
// (progress... then terminal) follows directly. A progress notification
// that races a cancellation request is delivered in whatever order the
// queue saw the posts; the engine imposes no further rule.
type Dispatcher struct {
	mu    sync.Mutex
	queue []func()
	ready chan struct{}
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		ready: make(chan struct{}, 1),
	}
}

// Post appends fn to the queue. Safe to call from any goroutine.
func (d *Dispatcher) Post(fn func()) {
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()

	// Coalesced wake-up: one signal covers any number of pending closures.
	select {
	case d.ready <- struct{}{}:
	default:
	}
}

// Drain runs every closure queued at the time of the call, in FIFO order,
// and returns how many ran. Call it only from the event-loop goroutine,
// once per loop iteration. Closures posted while a drain is in progress are
// left for the next one.
func (d *Dispatcher) Drain() int {
	d.mu.Lock()
	batch := d.queue
	d.queue = nil
	d.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Ready returns a channel that receives a (coalesced) signal whenever the
// queue becomes non-empty. Because a single signal can cover several posts,
// and a drain can consume work signalled but not yet received, a wake-up
// with nothing left to drain is possible and harmless.
func (d *Dispatcher) Ready() <-chan struct{} {
	return d.ready
}

// Pending returns the number of closures currently queued.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}
