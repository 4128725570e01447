// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the conversation view: the Bubble Tea model that owns
// the session, the message log, and the collaborators that answer it.
//
// The model appends the user turn, posts the message to the backend and
// renders the reply; when the call fails it shows the error and, after
// a short pacing delay, answers from the offline fallback responder.
// Language and category switches, voice dictation, clear-with-confirm
// and transcript export are all driven from here.
//
// # Key Types
//
//   - Model: the Bubble Tea model for the conversation view
//   - Backend: what the model needs from the chat client
//   - KeyMap: keyboard bindings
//
// # Usage
//
//	m := chat.New(theme, cfg, client.New(), fallback.New(nil), voiceCtl)
//	p := tea.NewProgram(m, tea.WithAltScreen())
package chat
