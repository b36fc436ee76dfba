// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the treedrive TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	Name         string
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// LIST AND TREE STYLES
	// ==========================================================================

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	TreeBranch       lipgloss.Style
	TreeLoading      lipgloss.Style

	// ==========================================================================
	// STATUS AND PROGRESS STYLES
	// ==========================================================================

	StatusBar     lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	ProgressLabel lipgloss.Style
	Spinner       lipgloss.Style

	// ==========================================================================
	// HELP AND PROMPT STYLES
	// ==========================================================================

	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	ConfirmBox lipgloss.Style
}

// palette is one named color scheme.
type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	dim       lipgloss.Color
	selection lipgloss.Color
	errorFg   lipgloss.Color
	successFg lipgloss.Color
	barBg     lipgloss.Color
}

var palettes = map[string]palette{
	"dark": {
		accent:    lipgloss.Color("39"),  // bright blue
		text:      lipgloss.Color("252"),
		dim:       lipgloss.Color("243"),
		selection: lipgloss.Color("39"),
		errorFg:   lipgloss.Color("196"),
		successFg: lipgloss.Color("42"),
		barBg:     lipgloss.Color("236"),
	},
	"light": {
		accent:    lipgloss.Color("26"), // deep blue
		text:      lipgloss.Color("235"),
		dim:       lipgloss.Color("245"),
		selection: lipgloss.Color("26"),
		errorFg:   lipgloss.Color("124"),
		successFg: lipgloss.Color("28"),
		barBg:     lipgloss.Color("254"),
	},
}

// NewTheme creates a theme for the named palette ("dark" or "light");
// unknown names fall back to dark.
func NewTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = "dark"
		p = palettes[name]
	}

	t := &Theme{
		Name:         name,
		IsDark:       name == "dark",
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles(p)
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles(p palette) {
	t.App = lipgloss.NewStyle().Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(p.dim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true)

	t.ListItem = lipgloss.NewStyle().
		Foreground(p.text).
		PaddingLeft(2)
	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(p.selection).
		Bold(true).
		PaddingLeft(0)

	t.TreeBranch = lipgloss.NewStyle().
		Foreground(p.dim)
	t.TreeLoading = lipgloss.NewStyle().
		Foreground(p.dim).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(p.text).
		Background(p.barBg).
		Padding(0, 1)
	t.StatusError = lipgloss.NewStyle().
		Foreground(p.errorFg).
		Bold(true)
	t.StatusSuccess = lipgloss.NewStyle().
		Foreground(p.successFg)

	t.ProgressLabel = lipgloss.NewStyle().
		Foreground(p.text)
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.accent)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(p.accent)
	t.HelpDesc = lipgloss.NewStyle().
		Foreground(p.dim)

	t.ConfirmBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(1, 2)
}
