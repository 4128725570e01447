// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"context"
	"errors"
	"testing"
)

// fakeRecognizer is a scripted backend for controller tests.
type fakeRecognizer struct {
	available bool
	startErr  error

	started     int
	stopped     int
	lastLocale  string
	lastChannel chan Event
}

func (f *fakeRecognizer) Available() bool { return f.available }

func (f *fakeRecognizer) Start(ctx context.Context, locale string) (<-chan Event, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started++
	f.lastLocale = locale
	f.lastChannel = make(chan Event, 8)
	return f.lastChannel, nil
}

func (f *fakeRecognizer) Stop() { f.stopped++ }

func TestController_UnavailableIsTerminal(t *testing.T) {
	ctl := NewController(&fakeRecognizer{available: false}, "en-US")
	if ctl.State() != StateUnavailable {
		t.Fatalf("state = %v, want unavailable", ctl.State())
	}
	events, err := ctl.Toggle(context.Background())
	if err != nil || events != nil {
		t.Errorf("Toggle in unavailable state should be a no-op, got (%v, %v)", events, err)
	}
	if ctl.State() != StateUnavailable {
		t.Errorf("state changed to %v", ctl.State())
	}
}

func TestController_NilRecognizerIsUnavailable(t *testing.T) {
	ctl := NewController(nil, "en-US")
	if ctl.State() != StateUnavailable {
		t.Errorf("state = %v, want unavailable", ctl.State())
	}
}

func TestController_ToggleStartsAndStops(t *testing.T) {
	rec := &fakeRecognizer{available: true}
	ctl := NewController(rec, "id-ID")

	events, err := ctl.Toggle(context.Background())
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if events == nil {
		t.Fatal("expected an event channel")
	}
	if ctl.State() != StateListening {
		t.Fatalf("state = %v, want listening", ctl.State())
	}
	if rec.lastLocale != "id-ID" {
		t.Errorf("locale = %q, want id-ID", rec.lastLocale)
	}

	// Second toggle stops rather than starting another capture.
	events, err = ctl.Toggle(context.Background())
	if err != nil || events != nil {
		t.Errorf("stopping toggle returned (%v, %v)", events, err)
	}
	if ctl.State() != StateIdle {
		t.Errorf("state = %v, want idle", ctl.State())
	}
	if rec.started != 1 || rec.stopped != 1 {
		t.Errorf("started=%d stopped=%d, want 1/1", rec.started, rec.stopped)
	}
}

func TestController_StartErrorStaysIdle(t *testing.T) {
	rec := &fakeRecognizer{available: true, startErr: errors.New("gateway down")}
	ctl := NewController(rec, "en-US")

	if _, err := ctl.Toggle(context.Background()); err == nil {
		t.Fatal("expected start error")
	}
	if ctl.State() != StateIdle {
		t.Errorf("state = %v, want idle after failed start", ctl.State())
	}
}

func TestController_LocaleTakesEffectOnNextStart(t *testing.T) {
	rec := &fakeRecognizer{available: true}
	ctl := NewController(rec, "en-US")

	ctl.Toggle(context.Background())
	ctl.SetLocale("th-TH")
	if rec.lastLocale != "en-US" {
		t.Errorf("running capture changed locale to %q", rec.lastLocale)
	}
	ctl.Toggle(context.Background()) // stop
	ctl.Toggle(context.Background()) // start again
	if rec.lastLocale != "th-TH" {
		t.Errorf("locale = %q, want th-TH", rec.lastLocale)
	}
}

func TestController_InterimAndFinalTranscript(t *testing.T) {
	rec := &fakeRecognizer{available: true}
	ctl := NewController(rec, "en-US")
	ctl.Toggle(context.Background())

	if final, _ := ctl.HandleEvent(Event{Type: EventTranscript, Transcript: "how do"}); final != "" {
		t.Errorf("interim event produced final %q", final)
	}
	if ctl.Interim() != "how do" {
		t.Errorf("interim = %q", ctl.Interim())
	}

	final, err := ctl.HandleEvent(Event{Type: EventTranscript, Transcript: "how do I reset", Final: true})
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if final != "how do I reset" {
		t.Errorf("final = %q", final)
	}
	if ctl.State() != StateIdle {
		t.Errorf("state = %v, want idle after final transcript", ctl.State())
	}
	if ctl.Interim() != "" {
		t.Errorf("interim not cleared: %q", ctl.Interim())
	}
}

func TestController_ErrorReturnsToIdle(t *testing.T) {
	rec := &fakeRecognizer{available: true}
	ctl := NewController(rec, "en-US")
	ctl.Toggle(context.Background())
	ctl.HandleEvent(Event{Type: EventTranscript, Transcript: "half a sen"})

	_, err := ctl.HandleEvent(Event{Type: EventError, Err: errors.New("microphone lost")})
	if err == nil {
		t.Fatal("expected the capture error back")
	}
	if ctl.State() != StateIdle {
		t.Errorf("state = %v, want idle", ctl.State())
	}
	if ctl.Interim() != "" {
		t.Errorf("interim survived the error: %q", ctl.Interim())
	}
}

func TestController_StopListeningDiscardsInterim(t *testing.T) {
	rec := &fakeRecognizer{available: true}
	ctl := NewController(rec, "en-US")
	ctl.Toggle(context.Background())
	ctl.HandleEvent(Event{Type: EventTranscript, Transcript: "never mind"})

	ctl.StopListening()
	if ctl.State() != StateIdle {
		t.Errorf("state = %v, want idle", ctl.State())
	}
	if ctl.Interim() != "" {
		t.Errorf("interim = %q, want empty", ctl.Interim())
	}

	// StopListening when already idle is safe.
	ctl.StopListening()
	if rec.stopped != 1 {
		t.Errorf("idle StopListening called the recognizer, stopped=%d", rec.stopped)
	}
}

func TestController_StaleEventsIgnored(t *testing.T) {
	rec := &fakeRecognizer{available: true}
	ctl := NewController(rec, "en-US")

	final, err := ctl.HandleEvent(Event{Type: EventTranscript, Transcript: "ghost", Final: true})
	if final != "" || err != nil {
		t.Errorf("idle controller handled a stale event: (%q, %v)", final, err)
	}
}
