// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rclone wraps the rclone command-line tool for listing cloud
// remotes and browsing their directory trees.
//
// Every listing call takes a work.Context and checkpoints around the
// subprocess invocation, so task bodies built on this client participate in
// cooperative cancellation without extra plumbing. The subprocess itself is
// bounded by the configured timeout; cancellation takes effect at the next
// checkpoint, not mid-invocation.
package rclone

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// =============================================================================
// CLIENT
// =============================================================================

// DefaultTimeout bounds a single rclone invocation when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// Canceller is the cancellation surface the client needs from a running
// task body. *work.Context satisfies it.
type Canceller interface {
	CheckCancelled() error
}

// Client invokes the rclone binary.
type Client struct {
	bin     string
	timeout time.Duration
}

// NewClient creates a client for the given rclone binary path. An empty
// path falls back to "rclone" on PATH; a non-positive timeout falls back
// to DefaultTimeout.
func NewClient(bin string, timeout time.Duration) *Client {
	if bin == "" {
		bin = "rclone"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{bin: bin, timeout: timeout}
}

// ListRemotes returns the configured remote names, sorted, with the
// trailing ":" stripped.
func (c *Client) ListRemotes(ctx Canceller) ([]string, error) {
	lines, err := c.run(ctx, "listremotes")
	if err != nil {
		return nil, err
	}

	remotes := make([]string, 0, len(lines))
	for _, line := range lines {
		remotes = append(remotes, strings.TrimSuffix(line, ":"))
	}
	sort.Strings(remotes)
	return remotes, nil
}

// ListDirs returns the immediate subdirectories of remote:path, sorted,
// with the trailing "/" stripped. An empty path lists the remote root.
func (c *Client) ListDirs(ctx Canceller, remote, path string) ([]string, error) {
	target := remote + ":" + path
	lines, err := c.run(ctx, "lsf", "--dirs-only", "--max-depth", "1", target)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(lines))
	for _, line := range lines {
		dirs = append(dirs, strings.TrimSuffix(line, "/"))
	}
	sort.Strings(dirs)
	return dirs, nil
}

// run executes one rclone invocation with cancellation checkpoints on both
// sides of the subprocess call.
func (c *Client) run(ctx Canceller, args ...string) ([]string, error) {
	if err := ctx.CheckCancelled(); err != nil {
		return nil, err
	}

	cmdCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, c.bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if err := ctx.CheckCancelled(); err != nil {
		return nil, err
	}

	if runErr != nil {
		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("rclone %s timed out after %v", args[0], c.timeout)
		}
		return nil, commandError(stderr.String(), stdout.String())
	}

	return splitLines(stdout.String()), nil
}

// =============================================================================
// OUTPUT HANDLING
// =============================================================================

// commandError renders a failed invocation into a display-ready error:
// stderr if non-empty, else stdout, else a generic message.
func commandError(stderr, stdout string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = strings.TrimSpace(stdout)
	}
	if msg == "" {
		msg = "unknown rclone error"
	}
	return errors.New(msg)
}

// splitLines breaks command output into trimmed, non-empty lines.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
