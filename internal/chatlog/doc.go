// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatlog contains the ordered chat transcript for a session.
//
// # Key Types
//
//   - Turn: one immutable message attributed to the user or the bot
//   - Log: append-only sequence of turns, bulk-reset only via Reset
//
// # Usage
//
// Append turns as the conversation progresses:
//
//	log := chatlog.NewWithGreeting(lang.Greeting)
//	log.AppendUser("reset my password")
//	log.AppendBot(reply)
//
// Append returns the new turn so renderers can draw just that turn
// instead of re-rendering the whole transcript.
package chatlog
