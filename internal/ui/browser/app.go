// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"fmt"
	"time"

	"github.com/jeranaias/treedrive-tui/internal/config"
	"github.com/jeranaias/treedrive-tui/internal/rclone"
	"github.com/jeranaias/treedrive-tui/internal/work"
)

// Lister is the slice of the rclone client the browser needs. Tests
// substitute an in-memory implementation.
type Lister interface {
	ListRemotes(c rclone.Canceller) ([]string, error)
	ListDirs(c rclone.Canceller, remote, path string) ([]string, error)
}

// screen identifies which view the browser is showing.
type screen int

const (
	screenRemotes screen = iota
	screenFolders
	screenTree
)

// ==========================================================================
// APPLICATION STATE
// ==========================================================================

// App holds the browser state and the handles of every in-flight worker.
// All fields are touched only on the event-loop goroutine: worker bodies
// run elsewhere, but their callbacks arrive through the dispatcher.
type App struct {
	cfg    *config.Config
	lister Lister
	pool   *work.Pool

	screen screen

	remotes      []string
	remoteCursor int

	currentRemote string
	folders       []string
	folderCursor  int

	root       *Node
	rows       []*Node
	treeCursor int

	status    string
	statusErr bool
	busy      bool

	demoRunning bool
	demoPercent int
	demoLabel   string

	confirmQuit bool

	// One handle per operation kind. Starting an operation cancels the
	// previous worker of the same kind; terminal callbacks clear the handle
	// so a stale Cancel can never reach a finished worker.
	remoteWorker *work.Worker[[]string]
	folderWorker *work.Worker[[]string]
	treeWorker   *work.Worker[[]string]
	demoWorker   *work.Worker[string]
}

// NewApp wires the browser onto an existing pool and rclone client.
func NewApp(cfg *config.Config, lister Lister, pool *work.Pool) *App {
	return &App{
		cfg:    cfg,
		lister: lister,
		pool:   pool,
		screen: screenRemotes,
		root:   newRoot(),
		status: "Loading remotes...",
	}
}

// Dispatcher exposes the pool's dispatcher for the event loop.
func (a *App) Dispatcher() *work.Dispatcher { return a.pool.Dispatcher() }

func (a *App) setStatus(msg string) { a.status, a.statusErr = msg, false }
func (a *App) setError(msg string)  { a.status, a.statusErr = "Error: " + msg, true }
func (a *App) refreshRows()         { a.rows = flatten(a.root) }

// clampCursors keeps every cursor inside its list after a reload.
func (a *App) clampCursors() {
	if a.remoteCursor >= len(a.remotes) {
		a.remoteCursor = max(0, len(a.remotes)-1)
	}
	if a.folderCursor >= len(a.folders) {
		a.folderCursor = max(0, len(a.folders)-1)
	}
	if a.treeCursor >= len(a.rows) {
		a.treeCursor = max(0, len(a.rows)-1)
	}
}

// ==========================================================================
// REMOTE LISTING
// ==========================================================================

// LoadRemotes fetches the configured remotes, cancelling any fetch already
// running. Called at startup and whenever rclone.conf changes on disk.
func (a *App) LoadRemotes() {
	if a.remoteWorker != nil {
		a.remoteWorker.Cancel()
	}
	a.busy = true
	a.setStatus("Loading remotes...")

	// Each callback checks that this worker is still the current one; a
	// replaced worker may resolve through OnError or OnDone before it
	// observes the token, and its result must not land.
	lister := a.lister
	var w *work.Worker[[]string]
	w = work.Submit(a.pool, work.Request[[]string]{
		Run: func(c *work.Context) ([]string, error) {
			return lister.ListRemotes(c)
		},
		OnDone: func(remotes []string) {
			if a.remoteWorker != w {
				return
			}
			a.remoteWorker = nil
			a.busy = false
			a.remotes = remotes
			a.clampCursors()
			if len(remotes) == 0 {
				a.setStatus("No remotes configured. Run 'rclone config' to add one.")
				return
			}
			a.setStatus(fmt.Sprintf("%d remote(s).", len(remotes)))
		},
		OnError: func(msg string) {
			if a.remoteWorker != w {
				return
			}
			a.remoteWorker = nil
			a.busy = false
			a.setError(msg)
		},
		OnCancel: func() {
			if a.remoteWorker == w {
				a.remoteWorker = nil
			}
		},
	})
	a.remoteWorker = w
}

// ==========================================================================
// FOLDER LISTING
// ==========================================================================

// OpenRemote switches to the folder view for the selected remote and lists
// its top-level folders.
func (a *App) OpenRemote(remote string) {
	if a.folderWorker != nil {
		a.folderWorker.Cancel()
	}
	a.currentRemote = remote
	a.folders = nil
	a.folderCursor = 0
	a.screen = screenFolders
	a.busy = true
	a.setStatus(fmt.Sprintf("Loading folders on %s...", remote))

	lister := a.lister
	var w *work.Worker[[]string]
	w = work.Submit(a.pool, work.Request[[]string]{
		Run: func(c *work.Context) ([]string, error) {
			return lister.ListDirs(c, remote, "")
		},
		OnDone: func(dirs []string) {
			if a.folderWorker != w {
				return
			}
			a.folderWorker = nil
			a.busy = false
			a.folders = dirs
			a.clampCursors()
			a.setStatus(fmt.Sprintf("%d folder(s) on %s.", len(dirs), remote))
		},
		OnError: func(msg string) {
			if a.folderWorker != w {
				return
			}
			a.folderWorker = nil
			a.busy = false
			a.setError(msg)
		},
		OnCancel: func() {
			if a.folderWorker == w {
				a.folderWorker = nil
			}
		},
	})
	a.folderWorker = w
}

// ==========================================================================
// TREE EXPANSION
// ==========================================================================

// OpenTree switches to the tree view rooted at the selected top-level
// folder and loads its children.
func (a *App) OpenTree(folder string) {
	a.root = newRoot()
	a.root.addChildren([]string{folder})
	top := a.root.Children[0]
	a.screen = screenTree
	a.treeCursor = 0
	a.expandNode(top)
	a.refreshRows()
}

// ToggleNode expands or collapses the node under the cursor. Expanding an
// unloaded node kicks off a listing; the placeholder row shows until it
// lands.
func (a *App) ToggleNode(n *Node) {
	if n == nil || n.Loading && n.Name == "Loading..." {
		return
	}
	if n.Expanded {
		n.Expanded = false
		a.refreshRows()
		return
	}
	a.expandNode(n)
	a.refreshRows()
}

func (a *App) expandNode(n *Node) {
	n.Expanded = true
	if n.Loaded || n.Loading {
		return
	}
	if n.Depth+1 >= a.cfg.Rclone.MaxDepth {
		n.Loaded = true
		return
	}
	a.loadChildren(n)
}

// loadChildren lists one node's subfolders, replacing any tree listing
// already in flight. Only one tree fetch runs at a time; rapid expansion
// clicks cancel each other rather than queueing.
func (a *App) loadChildren(n *Node) {
	if a.treeWorker != nil {
		a.treeWorker.Cancel()
	}
	n.Loading = true
	a.busy = true
	a.setStatus(fmt.Sprintf("Loading %s...", displayPath(a.currentRemote, n.Path)))

	lister := a.lister
	remote := a.currentRemote
	path := n.Path
	var w *work.Worker[[]string]
	w = work.Submit(a.pool, work.Request[[]string]{
		Run: func(c *work.Context) ([]string, error) {
			return lister.ListDirs(c, remote, path)
		},
		OnDone: func(dirs []string) {
			if a.treeWorker != w {
				return
			}
			a.treeWorker = nil
			a.busy = false
			n.addChildren(dirs)
			a.refreshRows()
			a.clampCursors()
			a.setStatus(fmt.Sprintf("%d folder(s) in %s.", len(dirs), displayPath(remote, path)))
		},
		OnError: func(msg string) {
			n.Loading = false
			n.Expanded = false
			a.refreshRows()
			a.clampCursors()
			if a.treeWorker != w {
				return
			}
			a.treeWorker = nil
			a.busy = false
			a.setError(msg)
		},
		OnCancel: func() {
			n.Loading = false
			n.Expanded = false
			a.refreshRows()
			a.clampCursors()
			if a.treeWorker == w {
				a.treeWorker = nil
				a.busy = false
			}
		},
	})
	a.treeWorker = w
}

func displayPath(remote, path string) string {
	if path == "" {
		return remote + ":"
	}
	return remote + ":" + path
}

// ==========================================================================
// DEMO TASK
// ==========================================================================

// RunDemo starts the cancellable progress demo. A second invocation while
// one is running cancels and replaces it.
func (a *App) RunDemo() {
	if a.demoWorker != nil {
		a.demoWorker.Cancel()
	}
	a.demoRunning = true
	a.demoPercent = 0
	a.demoLabel = "Starting..."

	steps := a.cfg.Demo.Steps
	delay := time.Duration(a.cfg.Demo.StepDelayMs) * time.Millisecond
	var w *work.Worker[string]
	w = work.Submit(a.pool, work.Request[string]{
		Run: func(c *work.Context) (string, error) {
			for step := 0; step < steps; step++ {
				if err := c.CheckCancelled(); err != nil {
					return "", err
				}
				time.Sleep(delay)
				c.Progress((step+1)*100/steps, fmt.Sprintf("Step %d of %d", step+1, steps))
			}
			return "Done.", nil
		},
		OnDone: func(result string) {
			if a.demoWorker != w {
				return
			}
			a.demoWorker = nil
			a.demoRunning = false
			a.demoPercent = 100
			a.demoLabel = result
			a.setStatus(result)
		},
		OnError: func(msg string) {
			if a.demoWorker != w {
				return
			}
			a.demoWorker = nil
			a.demoRunning = false
			a.setError(msg)
		},
		OnProgress: func(percent int, message string) {
			if a.demoWorker != w {
				return
			}
			a.demoPercent = percent
			a.demoLabel = message
		},
		OnCancel: func() {
			if a.demoWorker != w {
				return
			}
			a.demoWorker = nil
			a.demoRunning = false
			a.setStatus("Demo cancelled.")
		},
	})
	a.demoWorker = w
}

// CancelDemo requests cancellation of a running demo. The worker finishes
// its current step, observes the token, and resolves through OnCancel.
func (a *App) CancelDemo() {
	if a.demoWorker != nil {
		a.demoWorker.Cancel()
		a.setStatus("Cancelling demo...")
	}
}

// CancelAll requests cancellation of every in-flight worker. Used on quit
// so subprocesses are not left running behind the UI.
func (a *App) CancelAll() {
	if a.remoteWorker != nil {
		a.remoteWorker.Cancel()
	}
	if a.folderWorker != nil {
		a.folderWorker.Cancel()
	}
	if a.treeWorker != nil {
		a.treeWorker.Cancel()
	}
	if a.demoWorker != nil {
		a.demoWorker.Cancel()
	}
}

// Busy reports whether any operation is in flight.
func (a *App) Busy() bool { return a.busy || a.demoRunning }
