// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the bantuan client.
package util

import (
	"github.com/mattn/go-runewidth"
)

// UNICODE: widths are display columns, not runes or bytes. The Bantuan
// languages include Thai, Khmer, Lao, Myanmar and Bengali text plus
// fullwidth forms, so all wrapping and truncation goes through
// go-runewidth.

// TruncateWidth truncates a string to a maximum display width,
// appending "..." when anything was cut. Double-width characters count
// as 2 columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
