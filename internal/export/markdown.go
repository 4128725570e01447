// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders the transcript as a Markdown document.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// Export renders the transcript as Markdown, preserving turn order.
func (e *MarkdownExporter) Export(tr *Transcript) ([]byte, error) {
	var b strings.Builder

	title := tr.Title
	if title == "" {
		title = "Bantuan Support Chat"
	}
	b.WriteString("# " + title + "\n\n")
	b.WriteString("- **Generated:** " + tr.GeneratedAt.Format("2006-01-02 15:04:05") + "\n")
	if tr.SessionID != "" {
		b.WriteString("- **Session:** " + tr.SessionID + "\n")
	}
	b.WriteString("- **Language:** " + tr.LanguageName + "\n")
	b.WriteString("- **Category:** " + tr.CategoryID + "\n\n")
	b.WriteString("---\n\n")

	for _, turn := range tr.Turns {
		b.WriteString("### " + turn.Sender.DisplayName() + " (" + turn.Stamp + ")\n\n")
		b.WriteString(escapeIfUser(turn) + "\n\n")
	}

	return []byte(b.String()), nil
}

// escapeIfUser keeps user-typed text from being interpreted as Markdown
// structure; bot replies are plain sentences and pass through untouched.
func escapeIfUser(turn *chatlog.Turn) string {
	if turn.Sender != chatlog.SenderUser {
		return turn.Text
	}
	r := strings.NewReplacer("#", `\#`, "*", `\*`, "_", `\_`, "`", "\\`", ">", `\>`)
	return r.Replace(turn.Text)
}
