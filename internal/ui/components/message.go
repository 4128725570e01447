// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
	"github.com/jeranaias/bantuan-tui/internal/util"
)

// =============================================================================
// TURN BUBBLE COMPONENT - Chat message bubbles
// =============================================================================

// TurnBubble renders a single chat turn as a styled bubble. User turns
// sit to the right in blue, bot turns to the left in teal.
type TurnBubble struct {
	Turn          *chatlog.Turn
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewTurnBubble creates a bubble for the given turn.
func NewTurnBubble(turn *chatlog.Turn, theme *styles.Theme) *TurnBubble {
	return &TurnBubble{
		Turn:          turn,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *TurnBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the turn bubble.
func (b *TurnBubble) View() string {
	if b.Turn == nil {
		return ""
	}
	if b.Turn.Sender == chatlog.SenderUser {
		return b.renderUserBubble()
	}
	return b.renderBotBubble()
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned
// ==========================================================================

func (b *TurnBubble) renderUserBubble() string {
	content := b.Turn.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.UserBubbleBorder).
		Padding(0, 2).
		Width(contentWidth)

	bubble := bubbleStyle.Render(wrapped)
	header := b.renderHeader()

	// Right-align the bubble with left margin.
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	return marginStyle.Render(header) + "\n" + marginStyle.Render(bubble)
}

// ==========================================================================
// BOT BUBBLE - Teal tones, left-aligned
// ==========================================================================

func (b *TurnBubble) renderBotBubble() string {
	content := b.Turn.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.BotBubbleFg).
		Background(styles.BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.BotBubbleBorder).
		Padding(0, 2).
		Width(contentWidth)

	return b.renderHeader() + "\n" + bubbleStyle.Render(wrapped)
}

// renderHeader renders the sender name plus timestamp line.
func (b *TurnBubble) renderHeader() string {
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	parts := []string{roleStyle.Render(strings.ToLower(b.Turn.Sender.DisplayName()))}
	if b.ShowTimestamp && b.Turn.Stamp != "" {
		stampStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		parts = append(parts, stampStyle.Render(b.Turn.Stamp))
	}
	return strings.Join(parts, " ")
}

// =============================================================================
// WRAPPING HELPERS
// =============================================================================

// wordWrap wraps text at word boundaries, measuring display width so
// wide CJK and Southeast Asian scripts wrap correctly.
func wordWrap(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, word := range words {
			w := util.StringWidth(word)
			if lineWidth == 0 {
				line.WriteString(word)
				lineWidth = w
			} else if lineWidth+1+w <= maxWidth {
				line.WriteString(" ")
				line.WriteString(word)
				lineWidth += 1 + w
			} else {
				out = append(out, line.String())
				line.Reset()
				line.WriteString(word)
				lineWidth = w
			}
		}
		if line.Len() > 0 {
			out = append(out, line.String())
		}
	}

	return strings.Join(out, "\n")
}

// maxLineWidth returns the display width of the widest line.
func maxLineWidth(text string) int {
	max := 0
	for _, line := range strings.Split(text, "\n") {
		if w := util.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
