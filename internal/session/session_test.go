// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	st := New("id", "technical")

	if st.ID == "" {
		t.Error("session ID should be set")
	}
	if st.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
	if st.LanguageCode != "id" {
		t.Errorf("LanguageCode = %q, want id", st.LanguageCode)
	}
	if st.CategoryID != "technical" {
		t.Errorf("CategoryID = %q, want technical", st.CategoryID)
	}
	if st.Listening {
		t.Error("new session should not be listening")
	}
	if st.BaseURLOverride != "" {
		t.Error("new session should have no endpoint override")
	}
}

func TestNew_UnknownValuesFallBack(t *testing.T) {
	// The session invariant: always exactly one valid language and category.
	st := New("klingon", "starfleet")

	if st.LanguageCode != "en" {
		t.Errorf("LanguageCode = %q, want en fallback", st.LanguageCode)
	}
	if st.CategoryID != "general" {
		t.Errorf("CategoryID = %q, want general fallback", st.CategoryID)
	}
}

func TestSetLanguage(t *testing.T) {
	st := New("en", "general")

	lang := st.SetLanguage("th")
	if lang.Code != "th" || st.LanguageCode != "th" {
		t.Errorf("SetLanguage(th): entry=%q state=%q", lang.Code, st.LanguageCode)
	}

	// Unknown code falls back rather than unsetting the language.
	lang = st.SetLanguage("xx")
	if lang.Code != "en" || st.LanguageCode != "en" {
		t.Errorf("SetLanguage(xx): entry=%q state=%q, want en", lang.Code, st.LanguageCode)
	}
}

func TestSetCategory(t *testing.T) {
	st := New("en", "general")

	cat := st.SetCategory("billing")
	if cat.ID != "billing" || st.CategoryID != "billing" {
		t.Errorf("SetCategory(billing): entry=%q state=%q", cat.ID, st.CategoryID)
	}

	cat = st.SetCategory("bogus")
	if cat.ID != "general" || st.CategoryID != "general" {
		t.Errorf("SetCategory(bogus): entry=%q state=%q, want general", cat.ID, st.CategoryID)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New("en", "general")
	b := New("en", "general")
	if a.ID == b.ID {
		t.Error("two sessions share an ID")
	}
}
