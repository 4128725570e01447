// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bantuan-tui/internal/registry"
	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
)

// =============================================================================
// CATEGORY BAR COMPONENT - Support category selector pills
// =============================================================================

// CategoryBar renders the support categories as a row of pills with
// exactly one marked active.
type CategoryBar struct {
	ActiveID string
	Width    int
	theme    *styles.Theme
}

// NewCategoryBar creates a category bar with the default category active.
func NewCategoryBar(theme *styles.Theme) *CategoryBar {
	return &CategoryBar{
		ActiveID: registry.DefaultCategoryID,
		Width:    80,
		theme:    theme,
	}
}

// SetActive marks the given category active. Unknown ids resolve to the
// general category, so exactly one pill is always active.
func (c *CategoryBar) SetActive(id string) {
	c.ActiveID = registry.ResolveCategory(id).ID
}

// SetWidth updates the available width.
func (c *CategoryBar) SetWidth(width int) {
	c.Width = width
}

// View renders the pill row.
func (c *CategoryBar) View() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextInverse).
		Background(styles.Teal).
		Padding(0, 1)

	inactive := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Padding(0, 1)

	var pills []string
	for _, cat := range registry.Categories() {
		label := cat.Label
		if c.Width < 60 {
			// Narrow terminal: first letter only.
			label = label[:1]
		}
		pill := inactive.Render(label)
		if cat.ID == c.ActiveID {
			pill = active.Render(label)
		}
		pills = append(pills, pill)
	}

	return strings.Join(pills, " ")
}
