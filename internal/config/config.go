// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/bantuan-tui/internal/registry"
	"github.com/jeranaias/bantuan-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete bantuan configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Backend connection configuration
	Backend BackendConfig `toml:"backend" json:"backend"`

	// Speech recognition configuration
	Speech SpeechConfig `toml:"speech" json:"speech"`

	// Chat defaults
	Chat ChatConfig `toml:"chat" json:"chat"`

	// Transcript export configuration
	Export ExportConfig `toml:"export" json:"export"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// BackendConfig describes how to reach the support backend.
type BackendConfig struct {
	// OriginScheme and OriginHost describe where the client is deployed
	// from, which drives backend endpoint selection: loopback or file
	// origins use the local backend, static-hosting origins use
	// production, anything else talks to the origin itself.
	OriginScheme string `toml:"origin_scheme" json:"origin_scheme"`
	OriginHost   string `toml:"origin_host" json:"origin_host"`
	// BaseURLOverride pins the backend to an explicit URL for this
	// session. Local and static-hosting origins still win over it.
	BaseURLOverride string `toml:"base_url_override" json:"base_url_override"`
	// TimeoutSecs bounds each chat request.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// SpeechConfig configures the voice input backend.
type SpeechConfig struct {
	// GatewayURL is the websocket speech gateway, e.g. "ws://localhost:8090/asr".
	// Empty disables voice input.
	GatewayURL string `toml:"gateway_url" json:"gateway_url"`
	// CaptureCommand records microphone audio as raw pcm16 on stdout.
	CaptureCommand string `toml:"capture_command" json:"capture_command"`
}

// ChatConfig contains conversation defaults.
type ChatConfig struct {
	// DefaultLanguage is the language code active at startup.
	DefaultLanguage string `toml:"default_language" json:"default_language"`
	// DefaultCategory is the support category active at startup.
	DefaultCategory string `toml:"default_category" json:"default_category"`
}

// ExportConfig contains transcript export configuration.
type ExportConfig struct {
	// OutputDir is where transcripts land. Empty means the current directory.
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// FilePrefix names exported files: <prefix>-YYYY-MM-DD.<ext>
	FilePrefix string `toml:"file_prefix" json:"file_prefix"`
	// Format is "text" or "markdown".
	Format string `toml:"format" json:"format"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode uses a more compact layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// DebugLogFile enables Bubble Tea debug logging to the given path
	DebugLogFile string `toml:"debug_log_file" json:"debug_log_file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Backend: BackendConfig{
			OriginScheme: "https",
			OriginHost:   "bantuan.azurestaticapps.net",
			TimeoutSecs:  30,
		},

		Speech: SpeechConfig{
			GatewayURL:     "",
			CaptureCommand: "arecord -f S16_LE -r 16000 -c 1 -t raw",
		},

		Chat: ChatConfig{
			DefaultLanguage: registry.DefaultLanguageCode,
			DefaultCategory: registry.DefaultCategoryID,
		},

		Export: ExportConfig{
			OutputDir:  "",
			FilePrefix: "bantuan-chat",
			Format:     "text",
		},

		UI: UIConfig{
			Theme:       "dark",
			CompactMode: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the bantuan configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".bantuan"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err = finish(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// finish applies env overrides, defaults, and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	if cfg.Backend.OriginScheme == "" {
		cfg.Backend.OriginScheme = defaults.Backend.OriginScheme
	}
	if cfg.Backend.OriginHost == "" {
		cfg.Backend.OriginHost = defaults.Backend.OriginHost
	}
	if cfg.Backend.TimeoutSecs == 0 {
		cfg.Backend.TimeoutSecs = defaults.Backend.TimeoutSecs
	}

	if cfg.Speech.CaptureCommand == "" {
		cfg.Speech.CaptureCommand = defaults.Speech.CaptureCommand
	}

	if cfg.Chat.DefaultLanguage == "" {
		cfg.Chat.DefaultLanguage = defaults.Chat.DefaultLanguage
	}
	if cfg.Chat.DefaultCategory == "" {
		cfg.Chat.DefaultCategory = defaults.Chat.DefaultCategory
	}

	if cfg.Export.FilePrefix == "" {
		cfg.Export.FilePrefix = defaults.Export.FilePrefix
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = defaults.Export.Format
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file. The write is
// atomic, so a crash mid-save leaves the previous file intact.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf strings.Builder
	buf.WriteString("# bantuan configuration file\n")
	buf.WriteString("# Generated by bantuan - edit with care\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validSchemes := map[string]bool{"http": true, "https": true, "file": true}
	if !validSchemes[c.Backend.OriginScheme] {
		errs = append(errs, ValidationError{
			Field:   "backend.origin_scheme",
			Message: fmt.Sprintf("invalid scheme %q (must be http, https, or file)", c.Backend.OriginScheme),
		})
	}

	if c.Backend.BaseURLOverride != "" {
		u, err := url.Parse(c.Backend.BaseURLOverride)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "backend.base_url_override",
				Message: fmt.Sprintf("not an absolute URL: %q", c.Backend.BaseURLOverride),
			})
		}
	}

	if c.Backend.TimeoutSecs < 1 || c.Backend.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{
			Field:   "backend.timeout_secs",
			Message: fmt.Sprintf("must be between 1 and 300, got %d", c.Backend.TimeoutSecs),
		})
	}

	if c.Speech.GatewayURL != "" {
		u, err := url.Parse(c.Speech.GatewayURL)
		if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
			errs = append(errs, ValidationError{
				Field:   "speech.gateway_url",
				Message: fmt.Sprintf("must be a ws:// or wss:// URL, got %q", c.Speech.GatewayURL),
			})
		}
	}

	if !registry.IsSupported(c.Chat.DefaultLanguage) {
		errs = append(errs, ValidationError{
			Field:   "chat.default_language",
			Message: fmt.Sprintf("unknown language code %q", c.Chat.DefaultLanguage),
		})
	}
	if !registry.IsSupportedCategory(c.Chat.DefaultCategory) {
		errs = append(errs, ValidationError{
			Field:   "chat.default_category",
			Message: fmt.Sprintf("unknown category %q", c.Chat.DefaultCategory),
		})
	}

	validFormats := map[string]bool{"text": true, "markdown": true}
	if !validFormats[c.Export.Format] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format %q (must be text or markdown)", c.Export.Format),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true}
	if !validThemes[c.UI.Theme] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme %q (must be dark or light)", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero values that fillDefaults cannot distinguish
// from deliberate settings.
func (c *Config) SetDefaults() {
	if c.Backend.TimeoutSecs <= 0 {
		c.Backend.TimeoutSecs = 30
	}
	if c.Chat.DefaultLanguage == "" {
		c.Chat.DefaultLanguage = registry.DefaultLanguageCode
	}
	if c.Chat.DefaultCategory == "" {
		c.Chat.DefaultCategory = registry.DefaultCategoryID
	}
	if c.Export.Format == "" {
		c.Export.Format = "text"
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "dark"
	}
	if c.Backend.OriginScheme == "" {
		c.Backend.OriginScheme = "https"
	}
	if c.Backend.OriginHost == "" {
		c.Backend.OriginHost = "bantuan.azurestaticapps.net"
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies BANTUAN_* environment variables over the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("BANTUAN_BACKEND_URL"); v != "" {
		c.Backend.BaseURLOverride = v
	}
	if v := os.Getenv("BANTUAN_ORIGIN_SCHEME"); v != "" {
		c.Backend.OriginScheme = v
	}
	if v := os.Getenv("BANTUAN_ORIGIN_HOST"); v != "" {
		c.Backend.OriginHost = v
	}
	if v := os.Getenv("BANTUAN_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Backend.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("BANTUAN_SPEECH_GATEWAY"); v != "" {
		c.Speech.GatewayURL = v
	}
	if v := os.Getenv("BANTUAN_CAPTURE_CMD"); v != "" {
		c.Speech.CaptureCommand = v
	}
	if v := os.Getenv("BANTUAN_LANGUAGE"); v != "" {
		c.Chat.DefaultLanguage = v
	}
	if v := os.Getenv("BANTUAN_CATEGORY"); v != "" {
		c.Chat.DefaultCategory = v
	}
	if v := os.Getenv("BANTUAN_EXPORT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("BANTUAN_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("BANTUAN_DEBUG_LOG"); v != "" {
		c.UI.DebugLogFile = v
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// Global returns the global configuration instance, loading it on
// first access. A config that fails to load yields Default(), never
// nil, so callers can read it without checking. Thread-safe.
func Global() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal sets the global configuration instance. A value set before
// the first Global() call wins over the lazy load. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
