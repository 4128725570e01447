// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the TUI.
//
// This file contains all rendering logic for the conversation view:
// header, category pills, the scrollback viewport, the transient notice
// line, the input box, and the status bar.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bantuan-tui/internal/ui/components"
	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
	"github.com/jeranaias/bantuan-tui/internal/voice"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete conversation view.
// Layout: header + category pills + scrollback (viewport) + notice line
// + input box + status bar. The viewport absorbs whatever height the
// fixed chrome leaves over.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	categories := m.categoryBar.View()
	notice := m.renderNoticeLine()
	input := m.renderInput()
	status := m.statusBar.View()

	chrome := lipgloss.Height(header) +
		lipgloss.Height(categories) +
		lipgloss.Height(notice) +
		lipgloss.Height(input) +
		lipgloss.Height(status)

	available := m.height - chrome
	if available < 1 {
		available = 1
	}
	if m.viewport.Height != available {
		m.viewport.Height = available
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		categories,
		m.viewport.View(),
		notice,
		input,
		status,
	)
}

// renderHeader picks the full or compact header for the current layout.
func (m Model) renderHeader() string {
	if m.cfg.UI.CompactMode || m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.header.ViewCompact()
	}
	return m.header.View()
}

// renderNoticeLine renders the transient notice, padded to one line so
// the layout does not jump when a notice appears or expires.
func (m Model) renderNoticeLine() string {
	v := m.notices.View(m.theme, m.width)
	if v == "" {
		return " "
	}
	return v
}

// renderInput renders the bordered input box. The border switches to
// the listening accent while voice capture is running.
func (m Model) renderInput() string {
	boxStyle := m.theme.InputContainer
	if m.voice.State() == voice.StateListening {
		boxStyle = m.theme.InputListening
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return boxStyle.Width(width).Render(m.input.View())
}

// =============================================================================
// VIEWPORT CONTENT
// =============================================================================

// viewportHeight computes the scrollback height for the current size.
// Mirrors the measurement View does so resize and render agree.
func (m Model) viewportHeight() int {
	chrome := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.categoryBar.View()) +
		1 + // notice line
		lipgloss.Height(m.renderInput()) +
		lipgloss.Height(m.statusBar.View())

	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	return h
}

// refreshViewport brings the scrollback up to date with the message log
// and scrolls to the newest turn. Only turns past the render cache are
// drawn; a width change or a shrunken log invalidates the whole cache.
func (m *Model) refreshViewport() {
	width := m.width
	if width == 0 {
		width = 80
	}

	turns := m.log.Turns()
	if width != m.renderedWidth || len(turns) < len(m.rendered) {
		m.rendered = nil
		m.renderedWidth = width
	}

	for _, turn := range turns[len(m.rendered):] {
		bubble := components.NewTurnBubble(turn, m.theme)
		bubble.SetWidth(width)
		m.rendered = append(m.rendered, bubble.View())
	}

	m.viewport.SetContent(strings.Join(m.rendered, "\n\n") + "\n")
	m.viewport.GotoBottom()
}

// resetViewport drops the render cache before refreshing, for when
// existing turns were replaced rather than new ones appended.
func (m *Model) resetViewport() {
	m.rendered = nil
	m.refreshViewport()
}
