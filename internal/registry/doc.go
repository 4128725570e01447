// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry holds the static language and category tables for the
// Bantuan support client.
//
// # Key Types
//
//   - Language: display name, speech locale, placeholder and greeting per code
//   - Category: support category id + display label
//
// # Usage
//
// Resolve a language (total, unknown codes map to English):
//
//	lang := registry.Resolve("vi")
//	recognizer.SetLocale(lang.SpeechTag().String())
//
// Enumerate category controls:
//
//	for _, c := range registry.Categories() {
//	    // render c.Label, submit c.ID
//	}
//
// The tables are immutable; both Resolve and ResolveCategory are pure.
package registry
