// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestRespond_InterpolatesUserMessage(t *testing.T) {
	r := New(rand.New(rand.NewSource(1)))
	for _, category := range []string{"general", "technical", "account", "billing"} {
		reply := r.Respond(category, "my printer is on fire")
		if !strings.Contains(reply, "my printer is on fire") {
			t.Errorf("category %s: reply %q does not contain the user message", category, reply)
		}
	}
}

func TestRespond_UnknownCategoryUsesGeneral(t *testing.T) {
	// Same seed, same draw: an unknown category must pick from the
	// general table exactly as "general" does.
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))

	if got, want := a.Respond("no-such-category", "hello"), b.Respond("general", "hello"); got != want {
		t.Errorf("unknown category reply %q, want general reply %q", got, want)
	}
}

func TestRespond_DeterministicWithSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(7)))
	b := New(rand.New(rand.NewSource(7)))
	for i := 0; i < 10; i++ {
		if got, want := a.Respond("technical", "x"), b.Respond("technical", "x"); got != want {
			t.Fatalf("draw %d diverged: %q vs %q", i, got, want)
		}
	}
}

func TestRespond_CoversAllTemplates(t *testing.T) {
	// With enough draws every template in a set should appear.
	r := New(rand.New(rand.NewSource(3)))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[r.Respond("general", "q")] = true
	}
	if len(seen) != len(templates["general"]) {
		t.Errorf("saw %d distinct general replies, want %d", len(seen), len(templates["general"]))
	}
}

func TestRespond_NilSource(t *testing.T) {
	r := New(nil)
	if r.Respond("general", "hi") == "" {
		t.Error("reply should never be empty")
	}
}

func TestTemplates_MinimumPerCategory(t *testing.T) {
	for id, set := range templates {
		if len(set) < 3 {
			t.Errorf("category %s has %d templates, want at least 3", id, len(set))
		}
		for i, tpl := range set {
			if strings.Count(tpl, "%s") != 1 {
				t.Errorf("category %s template %d must interpolate exactly one value", id, i)
			}
			if strings.Contains(fmt.Sprintf(tpl, "x"), "%!") {
				t.Errorf("category %s template %d has a malformed verb", id, i)
			}
		}
	}
}
