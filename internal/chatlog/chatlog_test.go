// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatlog

import (
	"testing"
	"time"
)

// =============================================================================
// SENDER TESTS
// =============================================================================

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderBot, "Bantuan"},
		{Sender("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.sender.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.sender, got, tc.want)
		}
	}
}

// =============================================================================
// LOG TESTS
// =============================================================================

func TestAppend_OrderAndContent(t *testing.T) {
	l := New()

	l.AppendUser("first")
	l.AppendBot("second")
	l.AppendUser("third")

	turns := l.Turns()
	if len(turns) != 3 {
		t.Fatalf("Len = %d, want 3", len(turns))
	}

	want := []struct {
		sender Sender
		text   string
	}{
		{SenderUser, "first"},
		{SenderBot, "second"},
		{SenderUser, "third"},
	}
	for i, w := range want {
		if turns[i].Sender != w.sender || turns[i].Text != w.text {
			t.Errorf("turn %d = {%s %q}, want {%s %q}",
				i, turns[i].Sender, turns[i].Text, w.sender, w.text)
		}
	}
}

func TestAppend_ReturnsNewTurn(t *testing.T) {
	l := New()
	turn := l.AppendBot("hello")

	if turn == nil {
		t.Fatal("Append returned nil")
	}
	if turn != l.Last() {
		t.Error("Append should return the turn it appended")
	}
	if turn.ID == "" {
		t.Error("turn ID should be set")
	}
	if turn.When.IsZero() {
		t.Error("turn timestamp should be set")
	}
	if turn.Stamp != turn.When.Format(StampLayout) {
		t.Errorf("Stamp = %q, want %q", turn.Stamp, turn.When.Format(StampLayout))
	}
}

func TestNewWithGreeting(t *testing.T) {
	l := NewWithGreeting("Welcome!")

	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
	first := l.Turns()[0]
	if first.Sender != SenderBot || first.Text != "Welcome!" {
		t.Errorf("greeting turn = {%s %q}", first.Sender, first.Text)
	}
}

func TestReset_ReplacesWithSingleGreeting(t *testing.T) {
	l := NewWithGreeting("hi")
	l.AppendUser("question")
	l.AppendBot("answer")

	l.Reset("fresh greeting")

	if l.Len() != 1 {
		t.Fatalf("Len after Reset = %d, want 1", l.Len())
	}
	turn := l.Last()
	if turn.Sender != SenderBot || turn.Text != "fresh greeting" {
		t.Errorf("turn after Reset = {%s %q}", turn.Sender, turn.Text)
	}
}

func TestLast_EmptyLog(t *testing.T) {
	l := New()
	if l.Last() != nil {
		t.Error("Last on empty log should be nil")
	}
	if !l.IsEmpty() {
		t.Error("new log should be empty")
	}
}

func TestTurn_StampIsStable(t *testing.T) {
	// The stamp is fixed at creation; reformatting later must not change it.
	turn := NewTurn(SenderUser, "msg")
	stamp := turn.Stamp

	time.Sleep(5 * time.Millisecond)
	if turn.Stamp != stamp {
		t.Error("turn stamp changed after creation")
	}
}
