// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the bantuan TUI.

This package defines the color palette, message bubble styles, and
spinner animations used throughout the application. All colors use Lip
Gloss AdaptiveColor for automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Teal - Brand color for bot messages and headers
  - Cyan - Info, shortcut keys, and user highlights
  - Emerald - Success states and connected indicator
  - Amber - Warnings and offline replies
  - Rose - Errors and failed sends

## Message Bubble Colors

	UserBubbleBg   - Background for user messages
	UserBubbleFg   - Text color for user messages
	BotBubbleBg    - Background for bot messages
	BotBubbleFg    - Text color for bot messages
	NoticeBubbleBg - Background for transient notices

# Theme (theme.go)

The Theme struct bundles every styled component the chat view renders:
header, message bubbles, input area, status bar, category pills, and
transient notices. It detects the terminal color profile through
termenv and exposes a responsive LayoutMode based on width.

# Animations (animations.go)

SpinnerConfig frame sets drive the processing notice (DotsSpinner) and
the listening indicator (PulseSpinner).

# Usage

	theme := styles.NewTheme()
	theme.SetSize(width, height)
	header := theme.Header.Render("Bantuan Support")
*/
package styles
