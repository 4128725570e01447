// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat message types for the Bubble Tea update loop.
//
// Every asynchronous result delivered to the chat model arrives as one
// of the typed messages below. Commands in commands.go produce them and
// Update in update.go consumes them.
package chat

import (
	"github.com/jeranaias/bantuan-tui/internal/client"
	"github.com/jeranaias/bantuan-tui/internal/voice"
)

// =============================================================================
// SEND LIFECYCLE MESSAGES
// =============================================================================

// SendResultMsg carries the outcome of a chat request back into the
// update loop. The user turn has already been appended before the
// request started; the outcome decides whether a live reply or a
// fallback follows.
type SendResultMsg struct {
	// UserText is the message that was sent, kept for fallback
	// interpolation when the request failed.
	UserText string

	// Category active when the request was made.
	Category string

	// Outcome of the request. Never carries a Go error; failures are
	// represented as Outcome values.
	Outcome client.Outcome
}

// FallbackDelayMsg fires after the pacing delay that follows a failed
// send, prompting the model to append an offline fallback reply.
type FallbackDelayMsg struct {
	// UserText to interpolate into the fallback template.
	UserText string

	// Category selecting the fallback template pool.
	Category string
}

// =============================================================================
// VOICE MESSAGES
// =============================================================================

// VoiceEventMsg delivers one recognition event from the active voice
// session. Events holds the channel so the update loop can re-subscribe
// for the next event after handling this one.
type VoiceEventMsg struct {
	Event  voice.Event
	Events <-chan voice.Event

	// Closed reports that the event channel was closed and the session
	// has ended.
	Closed bool
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportResultMsg reports the outcome of a transcript export.
type ExportResultMsg struct {
	// Path of the written file when Err is nil.
	Path string
	Err  error
}

// =============================================================================
// HEALTH MESSAGES
// =============================================================================

// HealthResultMsg reports the startup backend health probe.
type HealthResultMsg struct {
	Healthy bool
}

