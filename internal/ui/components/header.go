// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
	"github.com/jeranaias/bantuan-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar with language and backend status
// =============================================================================

// Header is the title bar component.
type Header struct {
	Title        string // Main title (default: "Bantuan")
	Subtitle     string // Tagline under the title
	LanguageName string // Active language display name
	BackendURL   string // Resolved backend base URL
	Width        int    // Available width
	theme        *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "Bantuan",
		Subtitle: "ASEAN Support Assistant",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetLanguage updates the active language display name.
func (h *Header) SetLanguage(name string) {
	h.LanguageName = name
}

// SetBackendURL updates the backend indicator.
func (h *Header) SetBackendURL(url string) {
	h.BackendURL = url
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Teal)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	subtitleParts := []string{}
	if h.Subtitle != "" {
		subtitleParts = append(subtitleParts, h.Subtitle)
	}
	if h.LanguageName != "" {
		langStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Teal)
		subtitleParts = append(subtitleParts, langStyle.Render("["+h.LanguageName+"]"))
	}
	subtitle := strings.Join(subtitleParts, " ")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(subtitle)

	lines := []string{brandLine, subtitleLine}
	if h.BackendURL != "" {
		urlLine := lipgloss.NewStyle().
			Width(innerWidth).
			Align(lipgloss.Center).
			Foreground(styles.Overlay).
			Render(util.TruncateWidth(h.BackendURL, innerWidth))
		lines = append(lines, urlLine)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)

	headerBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width)

	return headerBox.Render(content)
}

// ViewCompact renders a compact single-line header for narrow terminals.
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Teal)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan)

	brand := accentStyle.Render("<") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(">")

	parts := []string{brand}

	if h.LanguageName != "" {
		langStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted)
		parts = append(parts, langStyle.Render("["+h.LanguageName+"]"))
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return strings.Join(parts, separator)
}
