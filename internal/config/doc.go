// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for bantuan.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - BackendConfig: Support backend origin and endpoint override
//   - SpeechConfig: Voice input gateway and capture command
//   - ExportConfig: Transcript export destination and format
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (BANTUAN_*)
//   - ~/.bantuan/config.toml
//   - ~/.bantuan/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	lang := cfg.Chat.DefaultLanguage
//	timeout := cfg.Backend.TimeoutSecs
package config
