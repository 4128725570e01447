// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatlog contains the ordered chat transcript for a session.
package chatlog

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender attributes a turn to one side of the conversation.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Bantuan"
	default:
		return string(s)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// StampLayout is the display format for turn timestamps.
const StampLayout = "15:04"

// Turn is one rendered message. Turns are immutable once created: they are
// appended to a Log and never edited or removed individually.
type Turn struct {
	ID     string
	Sender Sender
	Text   string
	When   time.Time
	// Stamp is the display-formatted time, fixed at creation so that
	// renders and exports reproduce it verbatim.
	Stamp string
}

// NewTurn creates a turn stamped with the current time.
func NewTurn(sender Sender, text string) *Turn {
	now := time.Now()
	return &Turn{
		ID:     generateTurnID(),
		Sender: sender,
		Text:   text,
		When:   now,
		Stamp:  now.Format(StampLayout),
	}
}

// =============================================================================
// LOG TYPE
// =============================================================================

// Log is the ordered, append-only sequence of turns for one session.
// It is owned exclusively by the conversation controller; the only bulk
// mutation is Reset, which reseeds the log with a single greeting turn.
type Log struct {
	turns []*Turn
}

// New creates an empty log.
func New() *Log {
	return &Log{turns: make([]*Turn, 0)}
}

// NewWithGreeting creates a log seeded with one bot greeting turn.
func NewWithGreeting(greeting string) *Log {
	l := New()
	l.AppendBot(greeting)
	return l
}

// Append creates a turn with the current timestamp and appends it.
func (l *Log) Append(sender Sender, text string) *Turn {
	t := NewTurn(sender, text)
	l.turns = append(l.turns, t)
	return t
}

// AppendUser appends a user turn.
func (l *Log) AppendUser(text string) *Turn {
	return l.Append(SenderUser, text)
}

// AppendBot appends a bot turn.
func (l *Log) AppendBot(text string) *Turn {
	return l.Append(SenderBot, text)
}

// Reset replaces the entire contents with a single bot greeting turn.
// Confirmation is the caller's responsibility; an unconfirmed clear must
// never reach this method.
func (l *Log) Reset(greeting string) {
	l.turns = make([]*Turn, 0, 1)
	l.AppendBot(greeting)
}

// Turns returns the turns in insertion order. The slice must be treated
// as read-only by callers.
func (l *Log) Turns() []*Turn {
	return l.turns
}

// Last returns the most recent turn, or nil if the log is empty.
func (l *Log) Last() *Turn {
	if len(l.turns) == 0 {
		return nil
	}
	return l.turns[len(l.turns)-1]
}

// Len returns the number of turns.
func (l *Log) Len() int {
	return len(l.turns)
}

// IsEmpty returns true if there are no turns.
func (l *Log) IsEmpty() bool {
	return len(l.turns) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateTurnID creates a unique turn ID.
func generateTurnID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "turn_" + hex.EncodeToString(bytes)
}
