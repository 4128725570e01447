// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusSending
	StatusListening
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusSending:
		return "Sending..."
	case StatusListening:
		return "Listening..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status alongside its color.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusSending:
		return "~"
	case StatusListening:
		return styles.StatusIndicators.Listening
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar.
type StatusBar struct {
	LanguageCode  string // Active language code (e.g. "en")
	CategoryLabel string // Active support category label
	Status        Status // Current status
	VoiceReady    bool   // Whether voice input is available
	Width         int    // Available width
	ShowShortcuts bool   // Show keyboard shortcuts
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (b *StatusBar) SetWidth(width int) {
	b.Width = width
}

// View renders the status bar.
func (b *StatusBar) View() string {
	statusStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	if b.Status == StatusError {
		statusStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.Rose)
	}
	left := statusStyle.Render(b.Status.Icon() + " " + b.Status.String())

	var middleParts []string
	if b.LanguageCode != "" {
		langStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Teal)
		middleParts = append(middleParts, langStyle.Render(strings.ToUpper(b.LanguageCode)))
	}
	if b.CategoryLabel != "" {
		catStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		middleParts = append(middleParts, catStyle.Render(b.CategoryLabel))
	}
	if b.VoiceReady {
		micStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		middleParts = append(middleParts, micStyle.Render(styles.StatusIndicators.Listening))
	}
	middle := strings.Join(middleParts, " | ")

	right := ""
	if b.ShowShortcuts {
		right = b.renderShortcuts()
	}

	// Lay out left / middle / right across the width.
	used := lipgloss.Width(left) + lipgloss.Width(middle) + lipgloss.Width(right)
	gap := b.Width - used - 4
	if gap < 2 {
		// Narrow terminal: drop shortcuts first.
		right = ""
		gap = b.Width - lipgloss.Width(left) - lipgloss.Width(middle) - 4
		if gap < 2 {
			gap = 2
		}
	}
	leftGap := gap / 2
	rightGap := gap - leftGap

	bar := left + strings.Repeat(" ", leftGap) + middle + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Padding(0, 1).
		Width(b.Width).
		Render(bar)
}

// renderShortcuts renders the keyboard shortcut hints.
func (b *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Cyan)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"^L", "clear"},
		{"^E", "export"},
		{"^V", "voice"},
		{"^Q", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts, keyStyle.Render(s.key)+descStyle.Render(" "+s.desc))
	}
	return strings.Join(parts, "  ")
}
