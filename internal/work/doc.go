// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package work provides a background-work engine for event-loop applications.
//
// The engine lets a single-goroutine presentation layer (a Bubble Tea
// program, or any loop that can block on a channel) submit long-running
// task bodies onto their own goroutines without stalling the loop, while
// receiving cooperative cancellation, progress reporting, and guaranteed
// single-goroutine delivery of results.
//
// # Key Types
//
//   - CancelToken: one-way thread-safe cancellation flag
//   - Context: handle a task body polls for cancellation and progress
//   - Request: a task body plus its optional callbacks
//   - Worker: one running (or finished) task execution
//   - Pool: submits Requests and hands out live Workers
//   - Dispatcher: FIFO queue that marshals callbacks onto the event loop
//
// # Usage
//
// Submit a request and drain the dispatcher from the event loop:
//
//	d := work.NewDispatcher()
//	pool := work.NewPool(d)
//
//	req := work.Request[string]{
//		Run: func(ctx *work.Context) (string, error) {
//			if err := ctx.CheckCancelled(); err != nil {
//				return "", err
//			}
//			ctx.Progress(50, "halfway there")
//			return "done", nil
//		},
//		OnDone:     func(s string) { /* runs on the event loop */ },
//		OnProgress: func(p int, msg string) { /* runs on the event loop */ },
//	}
//	w := work.Submit(pool, req)
//
//	// Somewhere in the event loop:
//	<-d.Ready()
//	d.Drain()
//
//	// To request early termination:
//	w.Cancel()
//
// Cancellation is cooperative only. A task body that never calls
// CheckCancelled cannot be interrupted, and the engine makes no promise
// about cancellation latency beyond "next checkpoint". Forced goroutine
// termination is deliberately not offered.
package work
