// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to downloadable files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeranaias/bantuan-tui/internal/chatlog"
)

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the snapshot of a session handed to an exporter.
type Transcript struct {
	// Title heads the exported document.
	Title string

	// GeneratedAt is when the export was requested.
	GeneratedAt time.Time

	// SessionID identifies the session the transcript came from, so
	// support staff can correlate an exported file with server logs.
	SessionID string

	// LanguageName is the display name of the active language.
	LanguageName string

	// CategoryID is the active support category id.
	CategoryID string

	// Turns is the full ordered log. Exporters must not reorder or
	// filter it.
	Turns []*chatlog.Turn
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for transcript exporters.
type Exporter interface {
	// Export converts a transcript to the target format.
	Export(tr *Transcript) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".txt").
	FileExtension() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory.
	OutputDir string

	// FilePrefix is the base name of the exported file. The current
	// date (YYYY-MM-DD) and the exporter's extension are appended.
	// Default: "bantuan-chat".
	FilePrefix string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:  ".",
		FilePrefix: "bantuan-chat",
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile exports a transcript using the given exporter and writes it
// to a file named "<prefix>-YYYY-MM-DD<ext>". Returns the output path.
func ExportToFile(tr *Transcript, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	prefix := opts.FilePrefix
	if prefix == "" {
		prefix = "bantuan-chat"
	}

	content, err := exporter.Export(tr)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	date := tr.GeneratedAt
	if date.IsZero() {
		date = time.Now()
	}
	filename := prefix + "-" + date.Format("2006-01-02") + exporter.FileExtension()

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, filename)
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return outputPath, nil
}

// ExportText exports to the plain-text transcript format.
func ExportText(tr *Transcript, opts *Options) (string, error) {
	return ExportToFile(tr, NewTextExporter(), opts)
}

// ExportMarkdown exports to Markdown.
func ExportMarkdown(tr *Transcript, opts *Options) (string, error) {
	return ExportToFile(tr, NewMarkdownExporter(), opts)
}
