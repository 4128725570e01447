// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package client provides the HTTP client for the Bantuan chat backend.
//
// # Key Types
//
//   - Client: posts chat messages to POST {base}/api/chat
//   - Outcome: typed Success/Failure result consumed by the controller
//   - Origin: deployment context fed into endpoint resolution
//
// # Contract
//
// A call succeeds only when the HTTP status is 2xx AND the body carries
// status "success"; the reply is read from the response field. Every
// other condition - network failure, timeout, non-2xx status, malformed
// body, non-success status field - maps to a Failure outcome with a
// human-readable message. The client never retries; fallback policy
// lives in the conversation controller.
//
// # Endpoint Resolution
//
// ResolveBaseURL is a pure function of the origin and the session
// override, evaluated per call:
//
//	client.ResolveBaseURL(client.Origin{Scheme: "http", Host: "localhost"}, "")
//	// => http://localhost:5000
package client
