// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming messages. Dispatcher callbacks run here, on
// the Bubble Tea goroutine, so App state needs no locking.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 10
		if w > 50 {
			w = 50
		}
		if w > 0 {
			m.prog.Width = w
		}
		return m, nil

	case initMsg:
		m.app.LoadRemotes()
		return m, nil

	case dispatchReadyMsg:
		m.app.Dispatcher().Drain()
		return m, waitDispatch(m.app.Dispatcher())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// ==========================================================================
// KEY HANDLING
// ==========================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit confirmation swallows every key until answered.
	if m.app.confirmQuit {
		switch msg.String() {
		case "y", "Y", "enter":
			m.app.CancelAll()
			return m, tea.Quit
		case "n", "N", "esc":
			m.app.confirmQuit = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.app.Busy() {
			m.app.confirmQuit = true
			return m, nil
		}
		m.app.CancelAll()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Select):
		m.handleSelect()

	case key.Matches(msg, m.keys.Back):
		m.handleBack()

	case key.Matches(msg, m.keys.Refresh):
		m.handleRefresh()

	case key.Matches(msg, m.keys.Demo):
		m.app.RunDemo()

	case key.Matches(msg, m.keys.Cancel):
		if m.app.demoRunning {
			m.app.CancelDemo()
		}
	}

	return m, nil
}

func (m Model) moveCursor(delta int) {
	a := m.app
	switch a.screen {
	case screenRemotes:
		a.remoteCursor = clamp(a.remoteCursor+delta, len(a.remotes))
	case screenFolders:
		a.folderCursor = clamp(a.folderCursor+delta, len(a.folders))
	case screenTree:
		a.treeCursor = clamp(a.treeCursor+delta, len(a.rows))
	}
}

func (m Model) handleSelect() {
	a := m.app
	switch a.screen {
	case screenRemotes:
		if a.remoteCursor < len(a.remotes) {
			a.OpenRemote(a.remotes[a.remoteCursor])
		}
	case screenFolders:
		if a.folderCursor < len(a.folders) {
			a.OpenTree(a.folders[a.folderCursor])
		}
	case screenTree:
		if a.treeCursor < len(a.rows) {
			a.ToggleNode(a.rows[a.treeCursor])
		}
	}
}

func (m Model) handleBack() {
	a := m.app
	switch a.screen {
	case screenTree:
		if a.treeWorker != nil {
			a.treeWorker.Cancel()
		}
		a.screen = screenFolders
	case screenFolders:
		if a.folderWorker != nil {
			a.folderWorker.Cancel()
		}
		a.screen = screenRemotes
	}
}

func (m Model) handleRefresh() {
	a := m.app
	switch a.screen {
	case screenRemotes:
		a.LoadRemotes()
	case screenFolders:
		a.OpenRemote(a.currentRemote)
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}
