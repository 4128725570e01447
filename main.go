// bantuan TUI - A terminal client for the Bantuan multilingual support service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bantuan-tui/internal/client"
	"github.com/jeranaias/bantuan-tui/internal/config"
	"github.com/jeranaias/bantuan-tui/internal/fallback"
	"github.com/jeranaias/bantuan-tui/internal/registry"
	"github.com/jeranaias/bantuan-tui/internal/ui/chat"
	"github.com/jeranaias/bantuan-tui/internal/ui/styles"
	"github.com/jeranaias/bantuan-tui/internal/voice"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a config file (default: ~/.bantuan/config.toml)")
		baseURL     = flag.String("base-url", "", "backend base URL override for this session")
		language    = flag.String("language", "", "startup language code (en, id, ms, th, vi, tl, my, km, lo, bn)")
		category    = flag.String("category", "", "startup support category (general, technical, account, billing)")
		exportDir   = flag.String("export-dir", "", "directory for exported transcripts")
		saveConfig  = flag.Bool("save-config", false, "write the effective config to ~/.bantuan/config.toml and exit")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("bantuan %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *baseURL, *language, *category, *exportDir)

	// -save-config persists the merged file+env+flag result, so the
	// next plain run starts from the same settings.
	if *saveConfig {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
			os.Exit(1)
		}
		if path, err := config.ConfigPathTOML(); err == nil {
			fmt.Printf("Configuration saved to %s\n", path)
		}
		return
	}

	config.SetGlobal(cfg)

	// Opt-in Bubble Tea debug log; the terminal itself stays clean.
	if cfg.UI.DebugLogFile != "" {
		f, err := tea.LogToFile(cfg.UI.DebugLogFile, "bantuan")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	theme := styles.NewTheme()

	backend := client.NewWithConfig(&client.Config{
		Origin: client.Origin{
			Scheme: cfg.Backend.OriginScheme,
			Host:   cfg.Backend.OriginHost,
		},
		Timeout: time.Duration(cfg.Backend.TimeoutSecs) * time.Second,
	})

	responder := fallback.New(nil)

	// Voice is optional: with no gateway configured the recognizer
	// reports unavailable and the controller disables the toggle.
	rec := voice.NewGatewayRecognizer(voice.GatewayConfig{
		URL:            cfg.Speech.GatewayURL,
		CaptureCommand: cfg.Speech.CaptureCommand,
	})
	locale := registry.Resolve(cfg.Chat.DefaultLanguage).SpeechTag().String()
	voiceCtl := voice.NewController(rec, locale)

	m := chat.New(theme, cfg, backend, responder, voiceCtl)
	if cfg.UI.DebugLogFile != "" {
		log.Printf("session %s started (language=%s, category=%s)",
			m.Session().ID, m.Session().LanguageCode, m.Session().CategoryID)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running bantuan: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the explicit path when given, otherwise the default
// locations with env overrides applied.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// applyFlags layers CLI flags over the loaded config. Flags win over
// both file and environment values.
func applyFlags(cfg *config.Config, baseURL, language, category, exportDir string) {
	if baseURL != "" {
		cfg.Backend.BaseURLOverride = baseURL
	}
	if language != "" && registry.IsSupported(language) {
		cfg.Chat.DefaultLanguage = language
	}
	if category != "" && registry.IsSupportedCategory(category) {
		cfg.Chat.DefaultCategory = category
	}
	if exportDir != "" {
		cfg.Export.OutputDir = exportDir
	}
}
