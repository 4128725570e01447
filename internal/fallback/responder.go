// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fallback

import (
	"fmt"
	"math/rand"
)

// =============================================================================
// RESPONSE TEMPLATES
// =============================================================================

// Templates per category. Each template interpolates the literal user
// message with a single %s verb. Unknown categories use the general set.
var templates = map[string][]string{
	"general": {
		"Thanks for reaching out about \"%s\". Our support service is offline right now, but a team member will follow up as soon as it recovers.",
		"I heard you say \"%s\". I can't reach the support service at the moment, so please try again shortly.",
		"You asked about \"%s\". The support service isn't responding right now; your question has been noted for when it comes back.",
		"Sorry, I can't process \"%s\" while the support service is down. It usually recovers within a few minutes.",
	},
	"technical": {
		"Your technical issue \"%s\" has been noted. While the service is offline, try restarting the application and checking your network connection.",
		"I couldn't reach technical support for \"%s\". A common first step is clearing cached data and signing in again.",
		"Technical support is temporarily unreachable, so I can't look into \"%s\" yet. Please keep the steps you took handy for when it's back.",
	},
	"account": {
		"I can't access account services right now, so \"%s\" will have to wait a moment. Password resets are also available from the sign-in page.",
		"Your account question \"%s\" has been saved. For urgent access problems, use the self-service reset link on the sign-in page.",
		"Account support is offline at the moment. Once it recovers I can help with \"%s\" — nothing about your account has changed in the meantime.",
	},
	"billing": {
		"Billing support is unavailable right now, so I couldn't check \"%s\". Recent invoices remain visible in your account history.",
		"I noted your billing question \"%s\". No charges are processed while the service is down, so there's nothing to worry about.",
		"I can't reach billing services to answer \"%s\" just now. Please try again shortly; your payment details are unaffected.",
	},
}

// =============================================================================
// RESPONDER
// =============================================================================

// Responder produces a canned bot reply when the remote service cannot.
// Selection among a category's templates is uniformly random through the
// injected source, so tests can pin the choice.
type Responder struct {
	rng *rand.Rand
}

// New creates a responder backed by the given randomness source.
// A nil source gets a time-seeded one.
func New(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Responder{rng: rng}
}

// Respond returns a reply for the given category, interpolating the
// user's message. Unknown categories fall back to the general table.
// It never fails.
func (r *Responder) Respond(category, userMessage string) string {
	set, ok := templates[category]
	if !ok {
		set = templates["general"]
	}
	tpl := set[r.rng.Intn(len(set))]
	return fmt.Sprintf(tpl, userMessage)
}

// Categories returns the category ids that have a dedicated template set.
func Categories() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	return ids
}
