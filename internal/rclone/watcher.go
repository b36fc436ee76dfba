// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rclone wraps the rclone command-line tool for listing cloud
// remotes and browsing their directory trees.
package rclone

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// ConfWatcher watches the rclone configuration file and invokes a callback
// when it changes, so the application can reload the remote list without a
// manual refresh. Events are debounced: rapid successive writes (rclone
// rewrites the file on every `rclone config` edit) collapse into one
// callback.
//
// The callback runs on the watcher's own goroutine. Callers that need
// event-loop delivery should post from the callback onto a work.Dispatcher.
type ConfWatcher struct {
	path     string
	debounce time.Duration
	onChange func()

	watcher *fsnotify.Watcher
	changed chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
}

// DefaultConfPath returns the standard rclone config location,
// ~/.config/rclone/rclone.conf, or "" if the home directory is unknown.
func DefaultConfPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rclone", "rclone.conf")
}

// NewConfWatcher creates a watcher for the given config file path. The
// callback fires at most once per debounce window.
func NewConfWatcher(path string, debounce time.Duration, onChange func()) (*ConfWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("rclone config path is empty")
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is nil")
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ConfWatcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
		changed:  make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. The parent directory is watched rather than the
// file itself, because rclone replaces the file by rename on save.
func (w *ConfWatcher) Watch() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// Close stops watching and releases resources.
func (w *ConfWatcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents filters raw fsnotify events down to changes of the watched
// file and coalesces them into the changed channel.
func (w *ConfWatcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next successful event still
			// triggers a reload.
		}
	}
}

// processPending waits out the debounce window after a change before
// invoking the callback.
func (w *ConfWatcher) processPending() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.changed:
			timer := time.NewTimer(w.debounce)
			select {
			case <-w.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				w.onChange()
			}
		}
	}
}
