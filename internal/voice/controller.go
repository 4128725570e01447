// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"context"
)

// =============================================================================
// STATES AND EVENTS
// =============================================================================

// State is the capture state of the controller.
type State int

const (
	// StateIdle means no capture is running.
	StateIdle State = iota
	// StateListening means audio is being captured and transcribed.
	StateListening
	// StateUnavailable means no recognizer backend exists on this
	// system. Terminal: the controller never leaves it.
	StateUnavailable
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// EventType classifies recognizer events.
type EventType int

const (
	// EventTranscript carries recognized text, interim or final.
	EventTranscript EventType = iota
	// EventEnd means the recognizer finished on its own.
	EventEnd
	// EventError means capture failed.
	EventError
)

// Event is a single notification from the recognizer.
type Event struct {
	Type       EventType
	Transcript string
	Final      bool
	Err        error
}

// =============================================================================
// RECOGNIZER ADAPTER
// =============================================================================

// Recognizer is the capture backend. Implementations push events on the
// returned channel and close it when capture ends. The interface exists
// so tests can substitute a scripted fake for the real gateway client.
type Recognizer interface {
	// Available reports whether the backend can capture on this system.
	Available() bool
	// Start begins capture in the given locale. The channel is closed
	// when capture stops, whether by Stop, error, or natural end.
	Start(ctx context.Context, locale string) (<-chan Event, error)
	// Stop ends a running capture. Safe to call when idle.
	Stop()
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller drives the capture state machine. It owns the current
// state, the locale used for the next start, and the interim transcript
// accumulated during a capture. Not safe for concurrent use; the UI
// event loop is its only caller.
type Controller struct {
	rec     Recognizer
	state   State
	locale  string
	interim string
	cancel  context.CancelFunc
}

// NewController creates a controller over the given recognizer.
// A nil or unavailable recognizer puts the controller in the terminal
// unavailable state.
func NewController(rec Recognizer, locale string) *Controller {
	c := &Controller{rec: rec, locale: locale}
	if rec == nil || !rec.Available() {
		c.state = StateUnavailable
	}
	return c
}

// State returns the current capture state.
func (c *Controller) State() State { return c.state }

// Interim returns the transcript accumulated so far in this capture.
func (c *Controller) Interim() string { return c.interim }

// SetLocale changes the recognition locale. Takes effect on the next
// start; a running capture keeps the locale it started with.
func (c *Controller) SetLocale(locale string) { c.locale = locale }

// Toggle flips between idle and listening. Returns the event channel
// when a capture was started, nil otherwise. In the unavailable state or
// when stopping, no channel is returned. A second toggle while
// listening stops capture rather than starting another.
func (c *Controller) Toggle(ctx context.Context) (<-chan Event, error) {
	switch c.state {
	case StateUnavailable:
		return nil, nil
	case StateListening:
		c.stop()
		return nil, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	events, err := c.rec.Start(runCtx, c.locale)
	if err != nil {
		cancel()
		return nil, err
	}
	c.cancel = cancel
	c.state = StateListening
	c.interim = ""
	return events, nil
}

// StopListening ends a running capture and discards the interim
// transcript. No-op in any other state.
func (c *Controller) StopListening() {
	if c.state != StateListening {
		return
	}
	c.stop()
}

func (c *Controller) stop() {
	c.rec.Stop()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateIdle
	c.interim = ""
}

// HandleEvent applies a recognizer event to the state machine and
// returns the final transcript when one arrived, or an empty string.
// Errors and natural ends both land back in idle.
func (c *Controller) HandleEvent(ev Event) (final string, err error) {
	if c.state != StateListening {
		// Stale event from a capture already stopped.
		return "", nil
	}
	switch ev.Type {
	case EventTranscript:
		if ev.Final {
			text := ev.Transcript
			c.stop()
			return text, nil
		}
		c.interim = ev.Transcript
		return "", nil
	case EventError:
		c.stop()
		return "", ev.Err
	case EventEnd:
		c.stop()
		return "", nil
	default:
		return "", nil
	}
}
