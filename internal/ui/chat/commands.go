// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat commands: asynchronous work producing typed messages.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
	"github.com/jeranaias/bantuan-tui/internal/client"
	"github.com/jeranaias/bantuan-tui/internal/config"
	"github.com/jeranaias/bantuan-tui/internal/export"
	"github.com/jeranaias/bantuan-tui/internal/voice"
)

// =============================================================================
// BACKEND INTERFACE
// =============================================================================

// Backend is what the conversation model needs from the chat client.
// client.Client satisfies it; tests substitute a scripted fake.
type Backend interface {
	// Send posts one message. Failures come back as Outcome values,
	// never as Go errors.
	Send(ctx context.Context, message, languageCode, categoryID, override string) client.Outcome

	// Health probes the backend health endpoint.
	Health(ctx context.Context, override string) error

	// BaseURL reports the resolved backend base URL for display.
	BaseURL(override string) string
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// sendCmd posts the message to the backend and delivers the outcome.
func sendCmd(backend Backend, message, languageCode, categoryID, override string) tea.Cmd {
	return func() tea.Msg {
		outcome := backend.Send(context.Background(), message, languageCode, categoryID, override)
		return SendResultMsg{
			UserText: message,
			Category: categoryID,
			Outcome:  outcome,
		}
	}
}

// fallbackDelayCmd schedules the offline fallback reply after the
// pacing delay that follows a failed send.
func fallbackDelayCmd(userText, category string) tea.Cmd {
	return tea.Tick(fallbackDelay, func(time.Time) tea.Msg {
		return FallbackDelayMsg{UserText: userText, Category: category}
	})
}

// listenVoiceCmd waits for the next recognizer event. The update loop
// re-issues it with the same channel after each event until the channel
// closes.
func listenVoiceCmd(events <-chan voice.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return VoiceEventMsg{Events: events, Closed: true}
		}
		return VoiceEventMsg{Event: ev, Events: events}
	}
}

// exportCmd writes the transcript snapshot to a file.
func exportCmd(tr *export.Transcript, format string, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		switch format {
		case "markdown":
			path, err = export.ExportMarkdown(tr, opts)
		default:
			path, err = export.ExportText(tr, opts)
		}
		return ExportResultMsg{Path: path, Err: err}
	}
}

// healthCmd probes the backend once at startup.
func healthCmd(backend Backend, override string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return HealthResultMsg{Healthy: backend.Health(ctx, override) == nil}
	}
}

// exportOptions maps export config onto exporter options.
func exportOptions(cfg *config.Config) *export.Options {
	opts := export.DefaultOptions()
	if cfg == nil {
		return opts
	}
	if cfg.Export.OutputDir != "" {
		opts.OutputDir = cfg.Export.OutputDir
	}
	if cfg.Export.FilePrefix != "" {
		opts.FilePrefix = cfg.Export.FilePrefix
	}
	return opts
}

// snapshotTranscript copies the log into an export transcript.
func snapshotTranscript(title, sessionID, languageName, categoryID string, turns []*chatlog.Turn) *export.Transcript {
	return &export.Transcript{
		Title:        title,
		GeneratedAt:  time.Now(),
		SessionID:    sessionID,
		LanguageName: languageName,
		CategoryID:   categoryID,
		Turns:        turns,
	}
}
