// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Styles must render without panicking and keep their content.
	out := theme.UserBubble.Render("hello")
	if !strings.Contains(out, "hello") {
		t.Errorf("UserBubble lost content: %q", out)
	}
	out = theme.BotBubble.Render("hi there")
	if !strings.Contains(out, "hi there") {
		t.Errorf("BotBubble lost content: %q", out)
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{20, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tt := range tests {
		theme.SetSize(tt.width, 40)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("width %d: mode = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 48)
	if theme.Width != 120 || theme.Height != 48 {
		t.Errorf("size = %dx%d, want 120x48", theme.Width, theme.Height)
	}
}

func TestSpinnerConfig(t *testing.T) {
	if DotsSpinner.Duration() <= 0 {
		t.Error("spinner duration must be positive")
	}

	// Frame wraps around.
	n := len(DotsSpinner.Frames)
	if DotsSpinner.Frame(0) != DotsSpinner.Frame(n) {
		t.Error("Frame should wrap modulo the frame count")
	}

	empty := SpinnerConfig{FPS: 10}
	if empty.Frame(3) != "" {
		t.Error("empty spinner should render nothing")
	}
}

func TestRenderStatusHelpers(t *testing.T) {
	if !strings.Contains(RenderSuccess("saved"), "saved") {
		t.Error("RenderSuccess lost message")
	}
	if !strings.Contains(RenderError("failed"), StatusIndicators.Error) {
		t.Error("RenderError missing shape indicator")
	}
	if !strings.Contains(RenderStatus(true, "ok"), StatusIndicators.Success) {
		t.Error("RenderStatus(true) missing success indicator")
	}
	if !strings.Contains(RenderStatus(false, "no"), StatusIndicators.Error) {
		t.Error("RenderStatus(false) missing error indicator")
	}
}
