// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the bantuan TUI.
//
// This file implements the transient notice slot. The chat view shows at
// most one notice at a time ("Processing...", "Listening...", send
// errors); showing a new notice replaces the current one immediately.
package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
	"github.com/jeranaias/bantuan-tui/internal/util"
)

// =============================================================================
// NOTICE TYPES
// =============================================================================

// NoticeKind represents the type of notice.
type NoticeKind int

const (
	// NoticeKindInfo is an informational notice (cyan color)
	NoticeKindInfo NoticeKind = iota
	// NoticeKindProcessing is a busy notice with spinner, no auto-dismiss
	NoticeKindProcessing
	// NoticeKindListening is a voice-capture notice, no auto-dismiss
	NoticeKindListening
	// NoticeKindError is an error notice (rose/red color)
	NoticeKindError
	// NoticeKindSuccess is a success notice (emerald color)
	NoticeKindSuccess
)

// DefaultNoticeDuration is the auto-dismiss duration for info notices.
const DefaultNoticeDuration = 4 * time.Second

// ErrorNoticeDuration is the auto-dismiss duration for error notices (longer to read).
const ErrorNoticeDuration = 8 * time.Second

// Notice is a single transient message above the input area.
type Notice struct {
	Message   string
	Kind      NoticeKind
	CreatedAt time.Time
	// Duration is how long before auto-dismiss. Zero means the notice
	// stays until replaced or dismissed (processing, listening).
	Duration time.Duration
}

// NewInfoNotice creates an informational notice with 4-second duration.
func NewInfoNotice(message string) Notice {
	return Notice{
		Message:   message,
		Kind:      NoticeKindInfo,
		CreatedAt: time.Now(),
		Duration:  DefaultNoticeDuration,
	}
}

// NewProcessingNotice creates a busy notice that stays until dismissed.
func NewProcessingNotice(message string) Notice {
	return Notice{
		Message:   message,
		Kind:      NoticeKindProcessing,
		CreatedAt: time.Now(),
	}
}

// NewListeningNotice creates a voice-capture notice that stays until dismissed.
func NewListeningNotice(message string) Notice {
	return Notice{
		Message:   message,
		Kind:      NoticeKindListening,
		CreatedAt: time.Now(),
	}
}

// NewErrorNotice creates an error notice with 8-second duration.
func NewErrorNotice(message string) Notice {
	return Notice{
		Message:   message,
		Kind:      NoticeKindError,
		CreatedAt: time.Now(),
		Duration:  ErrorNoticeDuration,
	}
}

// NewSuccessNotice creates a success notice with 4-second duration.
func NewSuccessNotice(message string) Notice {
	return Notice{
		Message:   message,
		Kind:      NoticeKindSuccess,
		CreatedAt: time.Now(),
		Duration:  DefaultNoticeDuration,
	}
}

// IsExpired returns true if the notice should be dismissed.
// Notices without a duration never expire on their own.
func (n *Notice) IsExpired() bool {
	if n.Duration == 0 {
		return false
	}
	return time.Since(n.CreatedAt) >= n.Duration
}

// =============================================================================
// NOTICE SLOT
// =============================================================================

// NoticeSlot holds at most one active notice. Showing a new notice
// replaces the current one immediately; there is no queue.
type NoticeSlot struct {
	current *Notice
	tick    int
}

// NewNoticeSlot creates an empty notice slot.
func NewNoticeSlot() *NoticeSlot {
	return &NoticeSlot{}
}

// Show replaces the current notice.
func (s *NoticeSlot) Show(n Notice) {
	s.current = &n
}

// Dismiss clears the current notice.
func (s *NoticeSlot) Dismiss() {
	s.current = nil
}

// DismissKind clears the current notice only if it is of the given kind.
// Used to drop a "Processing..." notice when its send resolves without
// clobbering a notice that replaced it in the meantime.
func (s *NoticeSlot) DismissKind(kind NoticeKind) {
	if s.current != nil && s.current.Kind == kind {
		s.current = nil
	}
}

// Current returns the active notice, or nil.
func (s *NoticeSlot) Current() *Notice {
	return s.current
}

// HasNotice returns true if a notice is showing.
func (s *NoticeSlot) HasNotice() bool {
	return s.current != nil
}

// Tick advances the spinner frame and drops the notice once expired.
func (s *NoticeSlot) Tick() {
	s.tick++
	if s.current != nil && s.current.IsExpired() {
		s.current = nil
	}
}

// =============================================================================
// NOTICE MESSAGES
// =============================================================================

// NoticeTickMsg is sent periodically to advance spinner frames and
// expire notices.
type NoticeTickMsg struct {
	Time time.Time
}

// NoticeTickCmd returns a command that ticks the notice slot every 100ms.
func NoticeTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return NoticeTickMsg{Time: t}
	})
}

// =============================================================================
// NOTICE RENDERING
// =============================================================================

// View renders the current notice, or an empty string.
func (s *NoticeSlot) View(theme *styles.Theme, width int) string {
	if s.current == nil {
		return ""
	}
	return renderNotice(*s.current, s.tick, width)
}

// renderNotice renders a single notice line.
func renderNotice(n Notice, tick, width int) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	var iconColor, borderColor lipgloss.AdaptiveColor
	var icon string

	switch n.Kind {
	case NoticeKindError:
		iconColor = styles.Rose
		borderColor = styles.Rose
		icon = styles.StatusIndicators.Error
	case NoticeKindSuccess:
		iconColor = styles.Emerald
		borderColor = styles.Emerald
		icon = styles.StatusIndicators.Success
	case NoticeKindProcessing:
		iconColor = styles.Teal
		borderColor = styles.Teal
		icon = styles.DotsSpinner.Frame(tick)
	case NoticeKindListening:
		iconColor = styles.Rose
		borderColor = styles.Rose
		icon = styles.PulseSpinner.Frame(tick)
	default: // NoticeKindInfo
		iconColor = styles.Cyan
		borderColor = styles.Cyan
		icon = styles.StatusIndicators.Info
	}

	iconStyle := lipgloss.NewStyle().
		Foreground(iconColor).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	message := n.Message
	if len(message) > maxWidth-10 {
		message = wrapNoticeText(message, maxWidth-10)
	}

	content := iconStyle.Render(icon+" ") + messageStyle.Render(message)

	noticeStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 2).
		MaxWidth(maxWidth)

	return noticeStyle.Render(content)
}

// wrapNoticeText performs simple word wrapping for notice messages.
// Widths are display columns, so fullwidth and combining text wraps at
// the same point it renders at.
func wrapNoticeText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range words {
		wordWidth := util.StringWidth(word)
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
			lineWidth = wordWidth
		} else if lineWidth+1+wordWidth <= maxWidth {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
			lineWidth += 1 + wordWidth
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
			lineWidth = wordWidth
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
