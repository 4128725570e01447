// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat event handlers for the conversation view.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bantuan-tui/internal/client"
	"github.com/jeranaias/bantuan-tui/internal/registry"
	"github.com/jeranaias/bantuan-tui/internal/ui/components"
	"github.com/jeranaias/bantuan-tui/internal/voice"
)

// =============================================================================
// RESIZE
// =============================================================================

// handleResize recalculates layout for a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	m.categoryBar.SetWidth(msg.Width)
	m.input.Width = msg.Width - 6

	m.viewport.Width = msg.Width
	m.viewport.Height = m.viewportHeight()
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEYBOARD
// =============================================================================

// handleKey dispatches a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		return m.handleClearConfirm(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.Clear):
		m.confirmClear = true
		m.notices.Show(components.Notice{
			Message:   "Clear the conversation? Press y to confirm, n to cancel.",
			Kind:      components.NoticeKindInfo,
			CreatedAt: time.Now(),
		})
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		return m.handleExport()

	case key.Matches(msg, m.keyMap.Voice):
		return m.handleVoiceToggle()

	case key.Matches(msg, m.keyMap.Language):
		return m.handleLanguageCycle()

	case key.Matches(msg, m.keyMap.Category):
		return m.handleCategoryCycle()

	case key.Matches(msg, m.keyMap.Cancel):
		if m.voice.State() == voice.StateListening {
			m.voice.StopListening()
			m.leaveListening()
			return m, nil
		}
		m.notices.Dismiss()
		return m, nil

	case key.Matches(msg, m.keyMap.Up),
		key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp),
		key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleClearConfirm resolves a pending clear confirmation.
// Only an explicit yes clears; everything else declines.
func (m Model) handleClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmClear = false
	m.notices.Dismiss()

	switch msg.String() {
	case "y", "Y":
		m.log.Reset(m.session.Language().Greeting)
		m.resetViewport()
		m.notices.Show(components.NewSuccessNotice("Conversation cleared."))
	}
	return m, nil
}

// =============================================================================
// SEND PIPELINE
// =============================================================================

// handleSubmit sends the current input field content.
// Whitespace-only input is silently ignored.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.log.AppendUser(text)
	m.input.SetValue("")
	m.refreshViewport()

	m.state = StateSending
	m.statusBar.Status = components.StatusSending
	m.notices.Show(components.NewProcessingNotice("Bantuan is thinking..."))

	if m.backend == nil {
		// No backend configured; go straight to the failure path so the
		// fallback responder still answers.
		return m, func() tea.Msg {
			return SendResultMsg{
				UserText: text,
				Category: m.session.CategoryID,
				Outcome:  client.Failure("support service is unreachable"),
			}
		}
	}

	return m, sendCmd(m.backend, text, m.session.LanguageCode, m.session.CategoryID, m.session.BaseURLOverride)
}

// handleSendResult applies a completed chat request.
func (m Model) handleSendResult(msg SendResultMsg) (tea.Model, tea.Cmd) {
	m.state = StateReady

	if msg.Outcome.OK() {
		m.statusBar.Status = components.StatusReady
		m.notices.DismissKind(components.NoticeKindProcessing)
		m.log.AppendBot(msg.Outcome.Response)
		m.refreshViewport()
		return m, nil
	}

	// Failure: show the error, then answer offline after a beat. The
	// fallback turn always lands after the notice has been visible.
	m.statusBar.Status = components.StatusError
	m.notices.Show(components.NewErrorNotice(msg.Outcome.ErrorMessage))
	return m, fallbackDelayCmd(msg.UserText, msg.Category)
}

// handleFallbackDelay appends the offline reply after the pacing delay.
func (m Model) handleFallbackDelay(msg FallbackDelayMsg) (tea.Model, tea.Cmd) {
	m.statusBar.Status = components.StatusReady
	m.log.AppendBot(m.responder.Respond(msg.Category, msg.UserText))
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// LANGUAGE AND CATEGORY
// =============================================================================

// handleLanguageCycle advances to the next supported language.
func (m Model) handleLanguageCycle() (tea.Model, tea.Cmd) {
	codes := registry.Codes()
	next := codes[0]
	for i, code := range codes {
		if code == m.session.LanguageCode {
			next = codes[(i+1)%len(codes)]
			break
		}
	}

	lang := m.session.SetLanguage(next)
	m.input.Placeholder = lang.Placeholder
	m.voice.SetLocale(lang.SpeechTag().String())
	m.header.SetLanguage(lang.DisplayName)
	m.statusBar.LanguageCode = lang.Code

	m.log.AppendBot(lang.SwitchNotice)
	m.refreshViewport()
	return m, nil
}

// handleCategoryCycle advances to the next support category.
func (m Model) handleCategoryCycle() (tea.Model, tea.Cmd) {
	cats := registry.Categories()
	next := cats[0]
	for i, cat := range cats {
		if cat.ID == m.session.CategoryID {
			next = cats[(i+1)%len(cats)]
			break
		}
	}

	cat := m.session.SetCategory(next.ID)
	m.categoryBar.SetActive(cat.ID)
	m.statusBar.CategoryLabel = cat.Label

	m.log.AppendBot(fmt.Sprintf("You are now in %s support. How can I help?", cat.Label))
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// VOICE INPUT
// =============================================================================

// handleVoiceToggle starts or stops voice capture.
func (m Model) handleVoiceToggle() (tea.Model, tea.Cmd) {
	if m.voice.State() == voice.StateUnavailable {
		m.notices.Show(components.NewInfoNotice("Voice input is not available on this system."))
		return m, nil
	}

	events, err := m.voice.Toggle(context.Background())
	if err != nil {
		m.notices.Show(components.NewErrorNotice("Could not start voice capture: " + err.Error()))
		return m, nil
	}
	if events == nil {
		// Toggled off.
		m.leaveListening()
		return m, nil
	}

	m.session.Listening = true
	m.statusBar.Status = components.StatusListening
	m.notices.Show(components.NewListeningNotice("Listening... speak now."))
	return m, listenVoiceCmd(events)
}

// handleVoiceEvent applies one recognizer event and re-subscribes for
// the next one until the channel closes.
func (m Model) handleVoiceEvent(msg VoiceEventMsg) (tea.Model, tea.Cmd) {
	if msg.Closed {
		if m.voice.State() == voice.StateListening {
			m.voice.HandleEvent(voice.Event{Type: voice.EventEnd})
		}
		m.leaveListening()
		return m, nil
	}

	final, err := m.voice.HandleEvent(msg.Event)
	switch {
	case err != nil:
		m.leaveListening()
		m.notices.Show(components.NewErrorNotice("Voice recognition failed: " + err.Error()))

	case final != "":
		m.input.SetValue(final)
		m.input.CursorEnd()
		m.leaveListening()

	default:
		if interim := m.voice.Interim(); interim != "" {
			m.notices.Show(components.NewListeningNotice(interim))
		}
	}

	// Keep draining until the recognizer closes the channel.
	return m, listenVoiceCmd(msg.Events)
}

// leaveListening restores the idle UI after a capture ends. The notice
// is only touched when it is the listening one, so errors shown in the
// same frame survive.
func (m *Model) leaveListening() {
	m.session.Listening = false
	if m.statusBar.Status == components.StatusListening {
		m.statusBar.Status = components.StatusReady
	}
	m.notices.DismissKind(components.NoticeKindListening)
}

// =============================================================================
// EXPORT
// =============================================================================

// handleExport writes the transcript to a file.
func (m Model) handleExport() (tea.Model, tea.Cmd) {
	tr := snapshotTranscript(
		"Bantuan Support Chat",
		m.session.ID,
		m.session.Language().DisplayName,
		m.session.CategoryID,
		m.log.Turns(),
	)
	opts := exportOptions(m.cfg)
	return m, exportCmd(tr, m.cfg.Export.Format, opts)
}

// handleExportResult surfaces the export outcome.
func (m Model) handleExportResult(msg ExportResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.notices.Show(components.NewErrorNotice("Export failed: " + msg.Err.Error()))
		return m, nil
	}
	m.notices.Show(components.NewSuccessNotice("Transcript saved to " + msg.Path))
	return m, nil
}
