// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/treedrive-tui/internal/work"
)

// initMsg triggers the initial remote listing once the program is running.
type initMsg struct{}

// dispatchReadyMsg signals that the dispatcher has callbacks queued. Update
// drains them and re-arms the wait.
type dispatchReadyMsg struct{}

// waitDispatch blocks until the dispatcher signals pending work. Exactly one
// of these commands is outstanding at any time; Update issues the next one
// after every drain.
func waitDispatch(d *work.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		<-d.Ready()
		return dispatchReadyMsg{}
	}
}
