// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/treedrive-tui/internal/config"
	"github.com/jeranaias/treedrive-tui/internal/ui/styles"
	"github.com/jeranaias/treedrive-tui/internal/work"
)

// Model is the Bubble Tea model for the remote browser.
type Model struct {
	app   *App
	theme *styles.Theme
	keys  KeyMap

	spin spinner.Model
	prog progress.Model

	width  int
	height int
}

// New creates the browser model on top of an existing pool.
func New(cfg *config.Config, lister Lister, pool *work.Pool) Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	pr := progress.New(progress.WithDefaultGradient())
	pr.Width = 40

	return Model{
		app:   NewApp(cfg, lister, pool),
		theme: theme,
		keys:  DefaultKeyMap(),
		spin:  sp,
		prog:  pr,
	}
}

// App returns the underlying application state. Exposed for the
// config-watcher wiring in main.
func (m Model) App() *App { return m.app }

// Init starts the spinner, arms the dispatcher wait, and kicks off the
// initial remote listing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		waitDispatch(m.app.Dispatcher()),
		func() tea.Msg { return initMsg{} },
	)
}
