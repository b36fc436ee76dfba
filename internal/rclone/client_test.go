// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rclone

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeranaias/treedrive-tui/internal/work"
)

// nopCanceller never reports cancellation.
type nopCanceller struct{}

func (nopCanceller) CheckCancelled() error { return nil }

// cancelledCanceller always reports cancellation.
type cancelledCanceller struct{}

func (cancelledCanceller) CheckCancelled() error { return work.ErrCancelled }

func TestCommandError(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		stdout string
		want   string
	}{
		{"stderr wins", "didn't find section in config file\n", "partial output", "didn't find section in config file"},
		{"stdout fallback", "", "  2023/01/01 NOTICE: failed\n", "2023/01/01 NOTICE: failed"},
		{"generic fallback", "  \n", "\n", "unknown rclone error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := commandError(tt.stderr, tt.stdout)
			if err.Error() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	lines := splitLines("alpha/\n\n  beta/  \ngamma/\n")
	want := []string{"alpha/", "beta/", "gamma/"}

	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestListRemotesParsesAndSorts(t *testing.T) {
	client := fakeRclone(t, "#!/bin/sh\necho 'zeta:'\necho 'alpha:'\n")

	remotes, err := client.ListRemotes(nopCanceller{})
	if err != nil {
		t.Fatalf("ListRemotes failed: %v", err)
	}

	want := []string{"alpha", "zeta"}
	if len(remotes) != 2 || remotes[0] != want[0] || remotes[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, remotes)
	}
}

func TestListDirsStripsTrailingSlash(t *testing.T) {
	client := fakeRclone(t, "#!/bin/sh\necho 'photos/'\necho 'docs/'\n")

	dirs, err := client.ListDirs(nopCanceller{}, "drive", "backup")
	if err != nil {
		t.Fatalf("ListDirs failed: %v", err)
	}

	want := []string{"docs", "photos"}
	if len(dirs) != 2 || dirs[0] != want[0] || dirs[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, dirs)
	}
}

func TestListingFailureUsesStderr(t *testing.T) {
	client := fakeRclone(t, "#!/bin/sh\necho 'config file not found' >&2\nexit 1\n")

	_, err := client.ListRemotes(nopCanceller{})
	if err == nil {
		t.Fatal("Expected an error from a failing binary")
	}
	if err.Error() != "config file not found" {
		t.Errorf("Expected stderr message, got %q", err.Error())
	}
}

func TestListingObservesCancellation(t *testing.T) {
	client := fakeRclone(t, "#!/bin/sh\necho 'remote:'\n")

	_, err := client.ListRemotes(cancelledCanceller{})
	if err != work.ErrCancelled {
		t.Errorf("Expected ErrCancelled, got %v", err)
	}
}

// fakeRclone writes a stand-in shell script and returns a client using it.
func fakeRclone(t *testing.T, script string) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rclone")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake rclone: %v", err)
	}
	return NewClient(path, 5*time.Second)
}

func TestConfWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "rclone.conf")
	if err := os.WriteFile(confPath, []byte("[drive]\ntype = drive\n"), 0o644); err != nil {
		t.Fatalf("Failed to write conf: %v", err)
	}

	fired := make(chan struct{}, 8)
	watcher, err := NewConfWatcher(confPath, 50*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("NewConfWatcher failed: %v", err)
	}
	defer watcher.Close()

	if err := watcher.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// A burst of writes should collapse into a single callback.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(confPath, []byte("[drive]\ntype = drive\n"), 0o644); err != nil {
			t.Fatalf("Failed to rewrite conf: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("Watcher never fired after config writes")
	}
}

func TestConfWatcherRejectsBadArguments(t *testing.T) {
	if _, err := NewConfWatcher("", time.Second, func() {}); err == nil {
		t.Error("Expected an error for an empty path")
	}
	if _, err := NewConfWatcher("/tmp/rclone.conf", time.Second, nil); err == nil {
		t.Error("Expected an error for a nil callback")
	}
}
