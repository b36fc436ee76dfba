// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"fmt"
	"strings"

	"github.com/jeranaias/treedrive-tui/internal/util"
)

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.app.confirmQuit {
		b.WriteString(m.theme.ConfirmBox.Render(
			"Work is still running.\nQuit anyway? (y/n)"))
		b.WriteString("\n")
		return m.theme.App.Render(b.String())
	}

	switch m.app.screen {
	case screenRemotes:
		b.WriteString(m.viewRemotes())
	case screenFolders:
		b.WriteString(m.viewFolders())
	case screenTree:
		b.WriteString(m.viewTree())
	}

	if m.app.demoRunning || m.app.demoLabel != "" {
		b.WriteString("\n")
		b.WriteString(m.viewDemo())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return m.theme.App.Render(b.String())
}

// ==========================================================================
// SECTIONS
// ==========================================================================

func (m Model) viewHeader() string {
	title := m.theme.HeaderTitle.Render("treedrive")
	crumb := ""
	switch m.app.screen {
	case screenFolders:
		crumb = " › " + m.app.currentRemote
	case screenTree:
		crumb = " › " + m.app.currentRemote + ":"
	}
	return m.theme.Header.Render(title + crumb)
}

func (m Model) viewRemotes() string {
	if len(m.app.remotes) == 0 {
		return m.theme.TreeLoading.Render("  (no remotes)")
	}
	return m.viewList(m.app.remotes, m.app.remoteCursor)
}

func (m Model) viewFolders() string {
	if len(m.app.folders) == 0 {
		if m.app.busy {
			return m.theme.TreeLoading.Render("  " + m.spin.View() + " loading")
		}
		return m.theme.TreeLoading.Render("  (no folders)")
	}
	return m.viewList(m.app.folders, m.app.folderCursor)
}

func (m Model) viewList(items []string, cursor int) string {
	var b strings.Builder
	for i, item := range items {
		label := util.TruncateWidth(item, m.labelWidth())
		if i == cursor {
			b.WriteString(m.theme.ListItemSelected.Render("> " + label))
		} else {
			b.WriteString(m.theme.ListItem.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTree() string {
	if len(m.app.rows) == 0 {
		return m.theme.TreeLoading.Render("  (empty)")
	}
	var b strings.Builder
	for i, n := range m.app.rows {
		line := indent(n.Depth) + m.nodeGlyph(n) + " " + n.Name
		line = util.TruncateWidth(line, m.labelWidth())
		switch {
		case n.Loading && n.Name == "Loading...":
			line = m.theme.TreeLoading.Render(line)
		case i == m.app.treeCursor:
			line = m.theme.ListItemSelected.Render("> " + line)
		default:
			line = m.theme.ListItem.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) nodeGlyph(n *Node) string {
	if n.Loading && n.Name == "Loading..." {
		return m.spin.View()
	}
	if n.Expanded {
		return m.theme.TreeBranch.Render("▾")
	}
	return m.theme.TreeBranch.Render("▸")
}

func (m Model) viewDemo() string {
	bar := m.prog.ViewAs(float64(m.app.demoPercent) / 100)
	label := m.theme.ProgressLabel.Render(m.app.demoLabel)
	return fmt.Sprintf("%s %s", bar, label)
}

func (m Model) viewStatus() string {
	status := m.app.status
	if m.app.Busy() {
		status = m.spin.View() + " " + status
	}
	if m.app.statusErr {
		return m.theme.StatusBar.Render(m.theme.StatusError.Render(status))
	}
	return m.theme.StatusBar.Render(status)
}

func (m Model) viewHelp() string {
	pairs := []struct{ k, d string }{
		{"↑/↓", "move"},
		{"enter", "open"},
		{"bksp", "back"},
		{"r", "refresh"},
		{"w", "run work"},
		{"c", "cancel"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts,
			m.theme.HelpKey.Render(p.k)+" "+m.theme.HelpDesc.Render(p.d))
	}
	return strings.Join(parts, m.theme.HelpDesc.Render(" • "))
}

// labelWidth returns the usable width for list and tree labels.
func (m Model) labelWidth() int {
	if m.width <= 0 {
		return 76
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	return w
}
