// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the bantuan client.
//
// This package contains helper functions shared across packages for
// display-width string handling and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, StringWidth: display-column aware helpers via go-runewidth
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateWidth(backendURL, 50)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
