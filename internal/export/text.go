// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"
)

// =============================================================================
// TEXT EXPORTER
// =============================================================================

// separatorLine divides the header block from the turn records.
const separatorLine = "----------------------------------------"

// TextExporter writes the flat transcript format: a header block followed
// by one record per turn in log order as "[stamp] sender:\ntext\n\n".
type TextExporter struct{}

// NewTextExporter creates a text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// FileExtension returns ".txt".
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// Export renders the transcript. Turns are reproduced verbatim and in
// order; nothing is filtered.
func (e *TextExporter) Export(tr *Transcript) ([]byte, error) {
	var b strings.Builder

	title := tr.Title
	if title == "" {
		title = "Bantuan Support Chat"
	}
	b.WriteString(title + "\n")
	b.WriteString("Generated: " + tr.GeneratedAt.Format("2006-01-02 15:04:05") + "\n")
	if tr.SessionID != "" {
		b.WriteString("Session: " + tr.SessionID + "\n")
	}
	b.WriteString("Language: " + tr.LanguageName + "\n")
	b.WriteString("Category: " + tr.CategoryID + "\n")
	b.WriteString(separatorLine + "\n\n")

	for _, turn := range tr.Turns {
		b.WriteString("[" + turn.Stamp + "] " + turn.Sender.DisplayName() + ":\n")
		b.WriteString(turn.Text + "\n\n")
	}

	return []byte(b.String()), nil
}
