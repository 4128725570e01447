// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
)

func TestHeader_View(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetWidth(80)
	h.SetLanguage("Bahasa Indonesia")

	out := h.View()
	if !strings.Contains(out, "Bantuan") {
		t.Error("header missing title")
	}
	if !strings.Contains(out, "Bahasa Indonesia") {
		t.Error("header missing language name")
	}
}

func TestHeader_BackendURLTruncated(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetWidth(50)
	h.SetBackendURL("https://bantuan-backend.azurewebsites.net/with/a/very/long/path/component")

	out := h.View()
	if !strings.Contains(out, "https://bantuan-backend") {
		t.Error("header missing backend URL")
	}
	if !strings.Contains(out, "...") {
		t.Error("long backend URL not truncated")
	}
}

func TestHeader_ViewCompact(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetLanguage("English")

	out := h.ViewCompact()
	if !strings.Contains(out, "Bantuan") || !strings.Contains(out, "English") {
		t.Errorf("compact header incomplete: %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Error("compact header must be a single line")
	}
}

func TestStatusBar_View(t *testing.T) {
	theme := styles.NewTheme()
	b := NewStatusBar(theme)
	b.SetWidth(120)
	b.LanguageCode = "th"
	b.CategoryLabel = "Billing"
	b.Status = StatusSending

	out := b.View()
	if !strings.Contains(out, "TH") {
		t.Error("status bar missing language code")
	}
	if !strings.Contains(out, "Billing") {
		t.Error("status bar missing category")
	}
	if !strings.Contains(out, "Sending") {
		t.Error("status bar missing status")
	}
}

func TestCategoryBar_ExactlyOneActive(t *testing.T) {
	theme := styles.NewTheme()
	c := NewCategoryBar(theme)

	c.SetActive("billing")
	if c.ActiveID != "billing" {
		t.Errorf("ActiveID = %q", c.ActiveID)
	}

	// Unknown ids resolve to general so one pill is always active.
	c.SetActive("no-such")
	if c.ActiveID != "general" {
		t.Errorf("ActiveID = %q, want general", c.ActiveID)
	}

	if c.View() == "" {
		t.Error("category bar rendered nothing")
	}
}

func TestTurnBubble_View(t *testing.T) {
	theme := styles.NewTheme()
	log := chatlog.New()
	user := log.AppendUser("hello there")
	bot := log.AppendBot("Hi! How can I help?")

	ub := NewTurnBubble(user, theme)
	ub.SetWidth(80)
	if out := ub.View(); !strings.Contains(out, "hello there") {
		t.Errorf("user bubble lost content: %q", out)
	}

	bb := NewTurnBubble(bot, theme)
	bb.SetWidth(80)
	if out := bb.View(); !strings.Contains(out, "How can I help?") {
		t.Errorf("bot bubble lost content: %q", out)
	}
}

func TestWordWrap_WideRunes(t *testing.T) {
	// Thai and wide characters must wrap by display width, not bytes.
	out := wordWrap("สวัสดีครับ ผมต้องการความช่วยเหลือ", 20)
	if out == "" {
		t.Fatal("wrap returned empty")
	}
	if maxLineWidth(out) > 20 {
		t.Errorf("line exceeds width: %d", maxLineWidth(out))
	}
}
