// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
)

// buildTranscript assembles a transcript with n alternating turns.
func buildTranscript(n int) *Transcript {
	log := chatlog.New()
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			log.AppendUser("user message " + string(rune('A'+i)))
		} else {
			log.AppendBot("bot reply " + string(rune('A'+i)))
		}
	}
	return &Transcript{
		Title:        "Bantuan Support Chat",
		GeneratedAt:  time.Date(2025, 8, 30, 14, 30, 0, 0, time.UTC),
		SessionID:    "0f81c3d0-6a3e-4a5e-9b37-2f1c9a7d4e52",
		LanguageName: "English",
		CategoryID:   "technical",
		Turns:        log.Turns(),
	}
}

// =============================================================================
// TEXT FORMAT TESTS
// =============================================================================

func TestTextExport_Header(t *testing.T) {
	tr := buildTranscript(0)

	out, err := NewTextExporter().Export(tr)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"Bantuan Support Chat\n",
		"Generated: 2025-08-30 14:30:00\n",
		"Session: 0f81c3d0-6a3e-4a5e-9b37-2f1c9a7d4e52\n",
		"Language: English\n",
		"Category: technical\n",
		separatorLine + "\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q:\n%s", want, text)
		}
	}
}

func TestTextExport_TurnRecordsInOrder(t *testing.T) {
	tr := buildTranscript(6)

	out, err := NewTextExporter().Export(tr)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	text := string(out)

	// Every turn appears verbatim, in log order, as "[stamp] sender:\ntext\n\n".
	lastIdx := -1
	for i, turn := range tr.Turns {
		record := "[" + turn.Stamp + "] " + turn.Sender.DisplayName() + ":\n" + turn.Text + "\n\n"
		idx := strings.Index(text, record)
		if idx < 0 {
			t.Fatalf("turn %d record not found verbatim:\n%q", i, record)
		}
		if idx <= lastIdx {
			t.Fatalf("turn %d appears out of order", i)
		}
		lastIdx = idx
	}

	// Exactly N records, no duplication or filtering.
	if got := strings.Count(text, "]:"); got != 0 {
		t.Errorf("malformed records present: %d", got)
	}
	records := strings.Count(text, ":\n")
	if records != len(tr.Turns) {
		t.Errorf("record count = %d, want %d", records, len(tr.Turns))
	}
}

func TestTextExport_EmptyLog(t *testing.T) {
	tr := buildTranscript(0)
	out, err := NewTextExporter().Export(tr)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasSuffix(string(out), separatorLine+"\n\n") {
		t.Error("empty log should export header block only")
	}
}

// =============================================================================
// FILE OUTPUT TESTS
// =============================================================================

func TestExportToFile_NameEmbedsDate(t *testing.T) {
	dir := t.TempDir()
	tr := buildTranscript(2)

	path, err := ExportText(tr, &Options{OutputDir: dir})
	if err != nil {
		t.Fatalf("ExportText: %v", err)
	}

	if filepath.Base(path) != "bantuan-chat-2025-08-30.txt" {
		t.Errorf("file name = %q, want bantuan-chat-2025-08-30.txt", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(data), tr.Turns[0].Text) {
		t.Error("exported file missing turn text")
	}
}

func TestExportToFile_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	tr := buildTranscript(1)

	if _, err := ExportText(tr, &Options{OutputDir: dir}); err != nil {
		t.Fatalf("ExportText into missing dir: %v", err)
	}
}

// =============================================================================
// MARKDOWN TESTS
// =============================================================================

func TestMarkdownExport(t *testing.T) {
	tr := buildTranscript(2)

	out, err := NewMarkdownExporter().Export(tr)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	text := string(out)

	if !strings.HasPrefix(text, "# Bantuan Support Chat\n") {
		t.Error("markdown export missing title heading")
	}
	if !strings.Contains(text, "- **Session:** 0f81c3d0-6a3e-4a5e-9b37-2f1c9a7d4e52\n") {
		t.Error("markdown export missing session line")
	}
	if !strings.Contains(text, "### You (") {
		t.Error("markdown export missing user turn heading")
	}
	if !strings.Contains(text, "### Bantuan (") {
		t.Error("markdown export missing bot turn heading")
	}
}

func TestMarkdownExport_EscapesUserText(t *testing.T) {
	log := chatlog.New()
	log.AppendUser("# not a heading")
	tr := &Transcript{GeneratedAt: time.Now(), LanguageName: "English", CategoryID: "general", Turns: log.Turns()}

	out, err := NewMarkdownExporter().Export(tr)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(out), `\# not a heading`) {
		t.Error("user markdown characters should be escaped")
	}
}
