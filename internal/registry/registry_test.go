// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"testing"
)

// =============================================================================
// LANGUAGE RESOLUTION TESTS
// =============================================================================

func TestResolve_KnownCodes(t *testing.T) {
	tests := []struct {
		code         string
		displayName  string
		speechLocale string
	}{
		{"en", "English", "en-US"},
		{"id", "Bahasa Indonesia", "id-ID"},
		{"ms", "Bahasa Malaysia", "ms-MY"},
		{"th", "ไทย (Thai)", "th-TH"},
		{"vi", "Tiếng Việt", "vi-VN"},
		{"tl", "Filipino", "fil-PH"},
		{"bn", "বাংলা (Bengali)", "bn-BD"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			l := Resolve(tc.code)
			if l.Code != tc.code {
				t.Errorf("Resolve(%q).Code = %q", tc.code, l.Code)
			}
			if l.DisplayName != tc.displayName {
				t.Errorf("Resolve(%q).DisplayName = %q, want %q", tc.code, l.DisplayName, tc.displayName)
			}
			if l.SpeechLocale != tc.speechLocale {
				t.Errorf("Resolve(%q).SpeechLocale = %q, want %q", tc.code, l.SpeechLocale, tc.speechLocale)
			}
		})
	}
}

func TestResolve_UnknownFallsBackToEnglish(t *testing.T) {
	for _, code := range []string{"", "xx", "EN", "en-US", "zz-ZZ"} {
		l := Resolve(code)
		if l.Code != DefaultLanguageCode {
			t.Errorf("Resolve(%q) = %q, want fallback to %q", code, l.Code, DefaultLanguageCode)
		}
	}
}

func TestResolve_EntriesComplete(t *testing.T) {
	for _, code := range Codes() {
		l := Resolve(code)
		if l.DisplayName == "" {
			t.Errorf("language %q has empty DisplayName", code)
		}
		if l.SpeechLocale == "" {
			t.Errorf("language %q has empty SpeechLocale", code)
		}
		if l.Placeholder == "" {
			t.Errorf("language %q has empty Placeholder", code)
		}
		if l.Greeting == "" {
			t.Errorf("language %q has empty Greeting", code)
		}
	}
}

func TestSpeechTag_Canonical(t *testing.T) {
	// Every speech locale must parse to a non-und BCP 47 tag.
	for _, code := range Codes() {
		l := Resolve(code)
		if tag := l.SpeechTag(); tag.IsRoot() {
			t.Errorf("language %q speech locale %q parses to the und tag", code, l.SpeechLocale)
		}
	}
}

func TestCodes_Order(t *testing.T) {
	codes := Codes()
	if len(codes) != 10 {
		t.Fatalf("Codes() returned %d entries, want 10", len(codes))
	}
	if codes[0] != "en" {
		t.Errorf("Codes()[0] = %q, want en (English leads the selector)", codes[0])
	}

	// Returned slice must be a copy - mutating it must not corrupt the registry.
	codes[0] = "mutated"
	if Codes()[0] != "en" {
		t.Error("Codes() exposes internal state")
	}
}

// =============================================================================
// CATEGORY TESTS
// =============================================================================

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 4 {
		t.Fatalf("Categories() returned %d entries, want 4", len(cats))
	}

	wantIDs := []string{"general", "technical", "account", "billing"}
	for i, want := range wantIDs {
		if cats[i].ID != want {
			t.Errorf("Categories()[%d].ID = %q, want %q", i, cats[i].ID, want)
		}
		if cats[i].Label == "" {
			t.Errorf("category %q has empty label", want)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	if got := ResolveCategory("billing"); got.ID != "billing" {
		t.Errorf("ResolveCategory(billing).ID = %q", got.ID)
	}
	if got := ResolveCategory("no-such-category"); got.ID != DefaultCategoryID {
		t.Errorf("ResolveCategory(unknown).ID = %q, want %q", got.ID, DefaultCategoryID)
	}
	if got := ResolveCategory(""); got.ID != DefaultCategoryID {
		t.Errorf("ResolveCategory(\"\").ID = %q, want %q", got.ID, DefaultCategoryID)
	}
}
