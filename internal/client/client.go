// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package client provides the HTTP client for the Bantuan chat backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the chat backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeHTTPStatus
	ErrTypeInvalidResponse
	ErrTypeBackend
)

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "support service is unreachable"}
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is the typed result of a chat request. A failed call is not a
// Go error at this layer: the conversation controller consumes failures
// the same way it consumes successes, so Send never returns an error.
type Outcome struct {
	// Response is the bot reply text. Set only on success.
	Response string

	// ErrorMessage is a human-readable failure description. Set only
	// on failure; the taxonomy is not finer than what the user sees.
	ErrorMessage string

	ok bool
}

// Success builds a successful outcome.
func Success(response string) Outcome {
	return Outcome{Response: response, ok: true}
}

// Failure builds a failed outcome.
func Failure(message string) Outcome {
	return Outcome{ErrorMessage: message}
}

// OK reports whether the call succeeded.
func (o Outcome) OK() bool {
	return o.ok
}

// =============================================================================
// WIRE FORMAT
// =============================================================================

// chatRequest is the JSON body for POST {base}/api/chat.
type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	Category string `json:"category"`
}

// chatResponse is the JSON body returned by the backend.
// Success carries status "success" and the reply in Response; anything
// else is a failure, optionally described in Error.
type chatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
	Error    string `json:"error"`
}

// healthResponse is the JSON body of GET {base}/api/health.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// Config holds configuration options for the chat backend client.
type Config struct {
	// Origin describes the deployment context used to resolve the
	// backend base URL on every call.
	Origin Origin

	// Timeout for chat requests (default: 30s).
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		Origin:  Origin{Scheme: "http", Host: "localhost"},
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client sends chat messages to the Bantuan backend and maps every
// possible failure - transport, HTTP status, malformed body, semantic
// error - to a Failure outcome. It performs no retries; fallback policy
// belongs to the conversation controller.
//
// The Client is safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// New creates a client with default configuration.
func New() *Client {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client with custom configuration.
func NewWithConfig(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL resolves the backend base URL for the current deployment
// context. Resolution is pure and evaluated per call; override is the
// session's ephemeral base URL override.
func (c *Client) BaseURL(override string) string {
	return ResolveBaseURL(c.config.Origin, override)
}

// Send posts one chat message and returns the typed outcome.
// The override parameter is the session's endpoint override (may be "").
func (c *Client) Send(ctx context.Context, message, languageCode, categoryID, override string) Outcome {
	body, err := json.Marshal(chatRequest{
		Message:  message,
		Language: languageCode,
		Category: categoryID,
	})
	if err != nil {
		return Failure("could not encode request: " + err.Error())
	}

	url := c.BaseURL(override) + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Failure("could not create request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Failure(ErrTimeout.Message)
		}
		return Failure(ErrUnreachable.Message)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Failure("support service returned " + resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Failure("could not read response: " + err.Error())
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Failure("support service sent an unreadable reply")
	}

	if parsed.Status != "success" {
		if parsed.Error != "" {
			return Failure(parsed.Error)
		}
		return Failure("support service reported a failure")
	}

	return Success(parsed.Response)
}

// Health checks the backend health endpoint. Unlike Send, callers want
// the raw error here to decide whether the service is reachable at all.
func (c *Client) Health(ctx context.Context, override string) error {
	url := c.BaseURL(override) + "/api/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeHTTPStatus,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}

	var parsed healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "unreadable health response", Cause: err}
	}
	if parsed.Status != "healthy" {
		return &ClientError{Type: ErrTypeBackend, Message: "backend reports status " + parsed.Status}
	}

	return nil
}
