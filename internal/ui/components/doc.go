// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the bantuan TUI.

This package contains a collection of styled components built on top of
the Bubble Tea and Lip Gloss libraries, consistent with the bantuan
design language.

# Core Components

## Display Components

Header (header.go) - Application header with title and active language.
StatusBar (statusbar.go) - Bottom status bar with language, category, and shortcuts.
TurnBubble (message.go) - Styled message bubbles for chat turns.
CategoryBar (categories.go) - Support category selector pills.

## Feedback Components

NoticeSlot (notice.go) - Single-slot transient notices ("Processing...",
send errors, export confirmations). A new notice replaces the current
one immediately; processing and listening notices stay until resolved.

# Key Types

All components take a *styles.Theme and a width, and render to a string
from their View method. Components hold no Bubble Tea state of their
own; the chat model owns updates and passes data in.

# Usage

	header := components.NewHeader(theme)
	header.SetWidth(width)
	header.SetLanguage("Bahasa Indonesia")
	out := header.View()
*/
package components
