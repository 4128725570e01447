// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// GATEWAY TEST SERVER
// =============================================================================

// captureCmd is a stand-in capture command producing finite raw audio.
const captureCmd = "head -c 32000 /dev/zero"

// newGatewayServer runs handler for each websocket session and returns
// the ws:// URL.
func newGatewayServer(t *testing.T, handler func(*websocket.Conn)) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func requireCaptureTool(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("head"); err != nil {
		t.Skip("no capture stand-in available on this system")
	}
}

// =============================================================================
// AVAILABILITY
// =============================================================================

func TestGatewayRecognizer_Available(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		capture string
		want    bool
	}{
		{"no url", "", "head -c 1 /dev/zero", false},
		{"no capture command", "ws://localhost:8090/asr", "", false},
		{"capture tool missing", "ws://localhost:8090/asr", "definitely-not-a-real-tool-xyz", false},
		{"configured", "ws://localhost:8090/asr", "head -c 1 /dev/zero", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				requireCaptureTool(t)
			}
			rec := NewGatewayRecognizer(GatewayConfig{URL: tt.url, CaptureCommand: tt.capture})
			require.Equal(t, tt.want, rec.Available())
		})
	}
}

func TestGatewayRecognizer_StartUnconfigured(t *testing.T) {
	rec := NewGatewayRecognizer(GatewayConfig{})
	events, err := rec.Start(context.Background(), "en-US")
	require.Error(t, err)
	require.Nil(t, events)
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

func TestGatewayRecognizer_FinalTranscript(t *testing.T) {
	requireCaptureTool(t)

	url := newGatewayServer(t, func(conn *websocket.Conn) {
		// The start frame arrives before any audio.
		var start map[string]any
		if err := conn.ReadJSON(&start); err != nil {
			return
		}
		require.Equal(t, "start", start["type"], "first frame must open the session")
		require.Equal(t, "th-TH", start["locale"])
		require.Equal(t, "pcm16", start["format"])
		require.EqualValues(t, 16000, start["rate"])

		conn.WriteJSON(resultFrame{Type: "transcript", Text: "interim", Final: false})
		conn.WriteJSON(resultFrame{Type: "transcript", Text: "reset my password", Final: true})
	})

	rec := NewGatewayRecognizer(GatewayConfig{URL: url, CaptureCommand: captureCmd})
	events, err := rec.Start(context.Background(), "th-TH")
	require.NoError(t, err)

	ev := <-events
	require.Equal(t, EventTranscript, ev.Type)
	require.Equal(t, "interim", ev.Transcript)
	require.False(t, ev.Final)

	ev = <-events
	require.Equal(t, EventTranscript, ev.Type)
	require.Equal(t, "reset my password", ev.Transcript)
	require.True(t, ev.Final)

	_, open := <-events
	require.False(t, open, "channel must close after the final transcript")
}

func TestGatewayRecognizer_ErrorFrame(t *testing.T) {
	requireCaptureTool(t)

	url := newGatewayServer(t, func(conn *websocket.Conn) {
		var start map[string]any
		if err := conn.ReadJSON(&start); err != nil {
			return
		}
		conn.WriteJSON(resultFrame{Type: "error", Message: "no speech detected"})
	})

	rec := NewGatewayRecognizer(GatewayConfig{URL: url, CaptureCommand: captureCmd})
	events, err := rec.Start(context.Background(), "en-US")
	require.NoError(t, err)

	ev := <-events
	require.Equal(t, EventError, ev.Type)
	require.EqualError(t, ev.Err, "no speech detected")

	_, open := <-events
	require.False(t, open)
}

func TestGatewayRecognizer_StopClosesSession(t *testing.T) {
	requireCaptureTool(t)

	url := newGatewayServer(t, func(conn *websocket.Conn) {
		var start map[string]any
		if err := conn.ReadJSON(&start); err != nil {
			return
		}
		// Never answer; the client stops locally.
		time.Sleep(2 * time.Second)
	})

	rec := NewGatewayRecognizer(GatewayConfig{URL: url, CaptureCommand: captureCmd})
	events, err := rec.Start(context.Background(), "en-US")
	require.NoError(t, err)

	rec.Stop()

	select {
	case _, open := <-events:
		// A local stop ends the session quietly or not at all with an
		// event, but the channel must close.
		for open {
			_, open = <-events
		}
	case <-time.After(3 * time.Second):
		t.Fatal("event channel did not close after Stop")
	}
}

func TestGatewayRecognizer_DialFailure(t *testing.T) {
	requireCaptureTool(t)

	rec := NewGatewayRecognizer(GatewayConfig{
		URL:              "ws://127.0.0.1:1/asr",
		CaptureCommand:   captureCmd,
		HandshakeTimeout: time.Second,
	})
	events, err := rec.Start(context.Background(), "en-US")
	require.Error(t, err)
	require.Nil(t, events)
}
