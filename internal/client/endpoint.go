// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package client

import (
	"net"
	"strings"
)

// =============================================================================
// ENDPOINT RESOLUTION
// =============================================================================

// Fixed backend addresses per deployment context.
const (
	// LocalBaseURL is the Flask development server used when the client
	// runs against a local checkout.
	LocalBaseURL = "http://localhost:5000"

	// ProductionBaseURL is the hosted Bantuan backend paired with the
	// static-hosting deployment.
	ProductionBaseURL = "https://bantuan-backend.azurewebsites.net"

	// staticHostSuffix identifies the known static-hosting domain.
	staticHostSuffix = ".azurestaticapps.net"
)

// Origin describes where the client is running: the scheme and host of
// the surface the user loaded. For the TUI this comes from configuration;
// a web embedding would take it from the page origin.
type Origin struct {
	Scheme string
	Host   string
}

// String renders the origin as a base URL.
func (o Origin) String() string {
	scheme := o.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + o.Host
}

// ResolveBaseURL picks the backend base URL for an origin. Pure and
// side-effect free; evaluated on every call so an override applied
// mid-session takes effect immediately.
//
// Priority: local contexts (file loads, loopback hosts) pin the local
// development server; the known static-hosting domain pins the production
// backend; otherwise a session override wins; failing all that the origin
// serves its own backend.
func ResolveBaseURL(origin Origin, override string) string {
	if strings.EqualFold(origin.Scheme, "file") || IsLoopbackHost(origin.Host) {
		return LocalBaseURL
	}
	if strings.HasSuffix(strings.ToLower(hostname(origin.Host)), staticHostSuffix) {
		return ProductionBaseURL
	}
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return origin.String()
}

// IsLoopbackHost checks if a host string refers to the local machine.
// Accepts "localhost", any 127.0.0.0/8 address, "::1" and bracketed or
// port-qualified variants thereof.
func IsLoopbackHost(host string) bool {
	host = hostname(host)
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

// hostname strips an optional port and IPv6 brackets from a host string.
func hostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	return strings.ToLower(host)
}
