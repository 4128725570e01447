// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fallback provides canned bot replies for when the remote
// support service is unreachable.
//
// Each support category carries its own table of reply templates that
// interpolate the user's message. The conversation layer calls Respond
// after a failed send so the user always gets an answer, even a canned
// one.
//
// # Key Types
//
//   - Responder: picks a template uniformly at random within a category
//
// # Usage
//
//	r := fallback.New(nil)
//	reply := r.Respond("billing", "why was I charged twice?")
package fallback
