// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// =============================================================================
// SPEECH GATEWAY RECOGNIZER
// =============================================================================

// Audio format pushed to the gateway. Matches what common capture tools
// (arecord, sox, rec) emit with default 16 kHz mono settings.
const (
	audioFormat     = "pcm16"
	audioSampleRate = 16000
	audioChunkSize  = 3200 // 100ms of 16kHz mono pcm16
)

// startFrame opens a recognition session on the gateway.
type startFrame struct {
	Type   string `json:"type"`
	Locale string `json:"locale"`
	Format string `json:"format"`
	Rate   int    `json:"rate"`
}

// resultFrame is what the gateway sends back.
type resultFrame struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Final   bool   `json:"final,omitempty"`
	Message string `json:"message,omitempty"`
}

// GatewayConfig configures the websocket speech recognizer.
type GatewayConfig struct {
	// URL is the gateway endpoint, e.g. "ws://localhost:8090/asr".
	URL string
	// CaptureCommand records microphone audio to stdout as raw pcm16,
	// e.g. "arecord -f S16_LE -r 16000 -c 1 -t raw". Split on spaces.
	CaptureCommand string
	// HandshakeTimeout bounds the websocket dial. Zero means 10s.
	HandshakeTimeout time.Duration
}

// GatewayRecognizer captures microphone audio through an external
// command and streams it to a websocket speech gateway for
// transcription.
type GatewayRecognizer struct {
	config GatewayConfig
	dialer *websocket.Dialer

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewGatewayRecognizer creates a recognizer for the given gateway.
func NewGatewayRecognizer(config GatewayConfig) *GatewayRecognizer {
	timeout := config.HandshakeTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &GatewayRecognizer{
		config: config,
		dialer: &websocket.Dialer{HandshakeTimeout: timeout},
	}
}

// Available reports whether both a gateway URL and a working capture
// command are configured.
func (g *GatewayRecognizer) Available() bool {
	if g.config.URL == "" {
		return false
	}
	fields := strings.Fields(g.config.CaptureCommand)
	if len(fields) == 0 {
		return false
	}
	_, err := exec.LookPath(fields[0])
	return err == nil
}

// Start dials the gateway, launches the capture command, and streams
// audio until the context is cancelled or the gateway reports a final
// transcript. Events arrive on the returned channel, which is closed
// when the session ends.
func (g *GatewayRecognizer) Start(ctx context.Context, locale string) (<-chan Event, error) {
	if !g.Available() {
		return nil, errors.New("speech gateway is not configured")
	}

	runCtx, cancel := context.WithCancel(ctx)

	conn, resp, err := g.dialer.DialContext(runCtx, g.config.URL, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := conn.WriteJSON(startFrame{
		Type:   "start",
		Locale: locale,
		Format: audioFormat,
		Rate:   audioSampleRate,
	}); err != nil {
		conn.Close()
		cancel()
		return nil, err
	}

	fields := strings.Fields(g.config.CaptureCommand)
	capture := exec.CommandContext(runCtx, fields[0], fields[1:]...)
	stdout, err := capture.StdoutPipe()
	if err != nil {
		conn.Close()
		cancel()
		return nil, err
	}
	if err := capture.Start(); err != nil {
		conn.Close()
		cancel()
		return nil, err
	}

	g.mu.Lock()
	g.cancel = cancel
	g.mu.Unlock()

	events := make(chan Event, 8)

	// Context cancellation does not interrupt a blocked websocket read,
	// so close the connection when the session is cancelled.
	go func() {
		<-runCtx.Done()
		conn.Close()
	}()

	go g.pumpAudio(runCtx, conn, stdout)
	go g.readResults(runCtx, conn, capture, events, cancel)

	return events, nil
}

// Stop cancels the running session, if any.
func (g *GatewayRecognizer) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// pumpAudio forwards capture output to the gateway in fixed chunks.
func (g *GatewayRecognizer) pumpAudio(ctx context.Context, conn *websocket.Conn, audio io.Reader) {
	buf := make([]byte, audioChunkSize)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := audio.Read(buf)
		if n > 0 {
			if werr := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			// Capture ended: tell the gateway to finalize.
			conn.WriteJSON(startFrame{Type: "end"})
			return
		}
	}
}

// readResults turns gateway frames into events until the session ends.
func (g *GatewayRecognizer) readResults(ctx context.Context, conn *websocket.Conn, capture *exec.Cmd, events chan<- Event, cancel context.CancelFunc) {
	defer func() {
		cancel()
		conn.Close()
		capture.Wait()
		close(events)
	}()

	for {
		var frame resultFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				// Stopped locally, not an error worth surfacing.
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				events <- Event{Type: EventError, Err: err}
			} else {
				events <- Event{Type: EventEnd}
			}
			return
		}

		switch frame.Type {
		case "transcript":
			events <- Event{Type: EventTranscript, Transcript: frame.Text, Final: frame.Final}
			if frame.Final {
				return
			}
		case "error":
			events <- Event{Type: EventError, Err: errors.New(frame.Message)}
			return
		case "end":
			events <- Event{Type: EventEnd}
			return
		}
	}
}
