// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the per-run conversation session state.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/bantuan-tui/internal/registry"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// State is the mutable session state for one program run.
//
// Exactly one State exists per run. It is owned by the conversation
// controller and mutated only from its event handlers, so no locking is
// required. Nothing here is persisted; a restart resets everything.
type State struct {
	// ID identifies this session in exports and debug logs.
	ID string

	// StartedAt is when the session began.
	StartedAt time.Time

	// LanguageCode is the active language. Always a supported code.
	LanguageCode string

	// CategoryID is the active support category. Always a known id.
	CategoryID string

	// Listening is true while voice capture is active.
	Listening bool

	// BaseURLOverride is an ephemeral endpoint override consulted by
	// endpoint resolution. Cleared when the session ends; never stored.
	BaseURLOverride string
}

// New creates a session with the given initial language and category.
// Unknown values fall back to the registry defaults, so the returned
// state always has exactly one valid language and one valid category.
func New(languageCode, categoryID string) *State {
	return &State{
		ID:           uuid.NewString(),
		StartedAt:    time.Now(),
		LanguageCode: registry.Resolve(languageCode).Code,
		CategoryID:   registry.ResolveCategory(categoryID).ID,
	}
}

// Language resolves the active language entry.
func (s *State) Language() registry.Language {
	return registry.Resolve(s.LanguageCode)
}

// Category resolves the active category.
func (s *State) Category() registry.Category {
	return registry.ResolveCategory(s.CategoryID)
}

// SetLanguage switches the active language. Unknown codes fall back to
// English rather than leaving the session without a language.
func (s *State) SetLanguage(code string) registry.Language {
	lang := registry.Resolve(code)
	s.LanguageCode = lang.Code
	return lang
}

// SetCategory switches the active category. Unknown ids fall back to
// the general category.
func (s *State) SetCategory(id string) registry.Category {
	cat := registry.ResolveCategory(id)
	s.CategoryID = cat.ID
	return cat
}
