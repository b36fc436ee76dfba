// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package work

import (
	"fmt"
	"testing"
)

// TestConcurrentWorkersPreservePerWorkerOrdering submits several workers at
// once. Their callbacks may interleave arbitrarily across workers, but each
// worker's own sequence must still be progress(25), progress(75), done.
func TestConcurrentWorkersPreservePerWorkerOrdering(t *testing.T) {
	d := NewDispatcher()
	pool := NewPool(d)

	const workers = 8

	events := make(map[int][]string)
	finished := 0

	for i := 0; i < workers; i++ {
		id := i
		Submit(pool, Request[int]{
			Run: func(ctx *Context) (int, error) {
				ctx.Progress(25, "first")
				ctx.Progress(75, "second")
				return id, nil
			},
			OnProgress: func(p int, msg string) {
				events[id] = append(events[id], fmt.Sprintf("progress(%d)", p))
			},
			OnDone: func(int) {
				events[id] = append(events[id], "done")
				finished++
			},
		})
	}

	drainUntil(t, d, func() bool { return finished == workers })

	want := []string{"progress(25)", "progress(75)", "done"}
	for id := 0; id < workers; id++ {
		got := events[id]
		if len(got) != len(want) {
			t.Fatalf("Worker %d: expected %v, got %v", id, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Worker %d callback %d: expected %s, got %s", id, i, want[i], got[i])
			}
		}
	}
}

// TestMixedOutcomesFromOnePool runs done, errored, and cancelled workers
// side by side and checks every one resolves independently.
func TestMixedOutcomesFromOnePool(t *testing.T) {
	d := NewDispatcher()
	pool := NewPool(d)

	var done, failed bool

	Submit(pool, Request[string]{
		Run:    func(ctx *Context) (string, error) { return "ok", nil },
		OnDone: func(string) { done = true },
	})
	Submit(pool, Request[string]{
		Run:     func(ctx *Context) (string, error) { return "", fmt.Errorf("broken") },
		OnError: func(string) { failed = true },
	})
	gate := make(chan struct{})
	w := Submit(pool, Request[string]{
		Run: func(ctx *Context) (string, error) {
			<-gate
			if err := ctx.CheckCancelled(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("observed no cancellation")
		},
	})
	w.Cancel()
	close(gate)

	drainUntil(t, d, func() bool {
		return done && failed && w.State() == StateCancelled
	})
	d.Drain()
}

func TestWorkerIDsUnique(t *testing.T) {
	d := NewDispatcher()
	pool := NewPool(d)

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		w := Submit(pool, Request[struct{}]{
			Run: func(ctx *Context) (struct{}, error) { return struct{}{}, nil },
		})
		if w.ID() == "" {
			t.Fatal("Worker ID should not be empty")
		}
		if seen[w.ID()] {
			t.Fatalf("Duplicate worker ID %s", w.ID())
		}
		seen[w.ID()] = true
	}
}

func TestPoolDispatcherAccessor(t *testing.T) {
	d := NewDispatcher()
	pool := NewPool(d)

	if pool.Dispatcher() != d {
		t.Error("Pool should expose the dispatcher it was built with")
	}
}
