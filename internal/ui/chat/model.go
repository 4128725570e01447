// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the TUI.
package chat

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
	"github.com/jeranaias/bantuan-tui/internal/config"
	"github.com/jeranaias/bantuan-tui/internal/fallback"
	"github.com/jeranaias/bantuan-tui/internal/session"
	"github.com/jeranaias/bantuan-tui/internal/ui/components"
	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
	"github.com/jeranaias/bantuan-tui/internal/voice"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady   State = iota // Ready for input
	StateSending              // A chat request is in flight
)

// fallbackDelay is the pacing pause between showing a failure notice
// and appending the offline fallback reply. Not a retry interval: the
// request already failed, the delay only keeps the substitution from
// landing in the same frame as the error.
const fallbackDelay = time.Second

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the conversation view.
type Model struct {
	// State
	state        State
	confirmClear bool // Waiting on y/n for a clear

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	session *session.State
	log     *chatlog.Log

	// Collaborators
	backend   Backend
	responder *fallback.Responder
	voice     *voice.Controller
	cfg       *config.Config

	// UI components
	header      *components.Header
	statusBar   *components.StatusBar
	categoryBar *components.CategoryBar
	notices     *components.NoticeSlot
	viewport    viewport.Model
	input       textinput.Model

	// Render cache: one pre-rendered block per turn, valid for
	// renderedWidth. Appends only render the new turns; a resize or a
	// clear rebuilds from scratch.
	rendered      []string
	renderedWidth int

	// Key bindings
	keyMap KeyMap
}

// New creates a conversation model wired to the given collaborators.
// A nil responder gets a fresh time-seeded one; a nil voice controller
// is replaced with a permanently unavailable one so the voice toggle is
// a safe no-op.
func New(theme *styles.Theme, cfg *config.Config, backend Backend, responder *fallback.Responder, vc *voice.Controller) Model {
	if cfg == nil {
		cfg = config.Global()
	}
	if responder == nil {
		responder = fallback.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	sess := session.New(cfg.Chat.DefaultLanguage, cfg.Chat.DefaultCategory)
	sess.BaseURLOverride = cfg.Backend.BaseURLOverride
	lang := sess.Language()

	if vc == nil {
		vc = voice.NewController(nil, lang.SpeechTag().String())
	} else {
		vc.SetLocale(lang.SpeechTag().String())
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = lang.Placeholder
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	header := components.NewHeader(theme)
	header.SetLanguage(lang.DisplayName)
	if backend != nil {
		header.SetBackendURL(backend.BaseURL(sess.BaseURLOverride))
	}

	statusBar := components.NewStatusBar(theme)
	statusBar.LanguageCode = lang.Code
	statusBar.CategoryLabel = sess.Category().Label
	statusBar.VoiceReady = vc.State() != voice.StateUnavailable

	categoryBar := components.NewCategoryBar(theme)
	categoryBar.SetActive(sess.CategoryID)

	m := Model{
		state:       StateReady,
		theme:       theme,
		session:     sess,
		log:         chatlog.NewWithGreeting(lang.Greeting),
		backend:     backend,
		responder:   responder,
		voice:       vc,
		cfg:         cfg,
		header:      header,
		statusBar:   statusBar,
		categoryBar: categoryBar,
		notices:     components.NewNoticeSlot(),
		viewport:    vp,
		input:       ti,
		keyMap:      DefaultKeyMap(),
	}
	m.refreshViewport()
	return m
}

// Session exposes the session state for exports and debug logging.
func (m Model) Session() *session.State {
	return m.session
}

// Log exposes the message log. Callers must treat it as read-only.
func (m Model) Log() *chatlog.Log {
	return m.log
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		components.NoticeTickCmd(),
	}
	if m.backend != nil {
		cmds = append(cmds, healthCmd(m.backend, m.session.BaseURLOverride))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SendResultMsg:
		return m.handleSendResult(msg)

	case FallbackDelayMsg:
		return m.handleFallbackDelay(msg)

	case VoiceEventMsg:
		return m.handleVoiceEvent(msg)

	case ExportResultMsg:
		return m.handleExportResult(msg)

	case HealthResultMsg:
		if !msg.Healthy {
			m.notices.Show(components.NewInfoNotice("Backend is not reachable. Replies will use offline responses."))
		}
		return m, nil

	case components.NoticeTickMsg:
		m.notices.Tick()
		return m, components.NoticeTickCmd()
	}

	// Everything else goes to the focused input for cursor blinks etc.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
