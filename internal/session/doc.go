// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the per-run conversation session state.
//
// # Key Types
//
//   - State: active language, category, listening flag and ephemeral
//     endpoint override for the current run
//
// # Usage
//
// Create the single session for a run:
//
//	st := session.New(cfg.DefaultLanguage, cfg.DefaultCategory)
//	st.SetLanguage("vi")
//
// State is owned by the conversation controller and mutated only from its
// event handlers on the UI goroutine. Nothing is persisted across runs.
package session
