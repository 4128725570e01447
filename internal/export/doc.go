// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to downloadable files.
//
// # Key Types
//
//   - Transcript: ordered snapshot of the log plus session metadata
//   - Exporter: format interface (text, Markdown)
//   - Options: output directory and file naming
//
// # Usage
//
// Export the current session as plain text:
//
//	path, err := export.ExportText(&export.Transcript{
//	    GeneratedAt:  time.Now(),
//	    LanguageName: lang.DisplayName,
//	    CategoryID:   cat.ID,
//	    Turns:        log.Turns(),
//	}, nil)
//
// The file name embeds the current date, e.g. bantuan-chat-2025-08-30.txt.
// Exporters reproduce the log verbatim: same order, same timestamps, same
// text.
package export
