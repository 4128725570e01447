// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voice provides microphone dictation for the chat input.
//
// A Controller drives the capture state machine (idle, listening,
// unavailable) over a Recognizer backend. The shipped backend streams
// audio from an external capture command to a websocket speech gateway;
// tests substitute a scripted fake.
//
// # Key Types
//
//   - Controller: idle/listening/unavailable state machine
//   - Recognizer: capture backend adapter
//   - GatewayRecognizer: websocket speech-gateway backend
//
// # Usage
//
//	rec := voice.NewGatewayRecognizer(voice.GatewayConfig{URL: url, CaptureCommand: cmd})
//	ctl := voice.NewController(rec, "en-US")
//	events, err := ctl.Toggle(ctx)
package voice
