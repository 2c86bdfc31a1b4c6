// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/voice-notes/internal/adapter"
	"github.com/MKhiriev/voice-notes/internal/speech"
)

var (
	ErrUserQuit = errors.New("user quit")

	errInvalidDate = errors.New("dates look like 2026-05-01 or 2026-05-01 14:30")
)

// humanizeError turns transport and API errors into one line for the
// status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if c := speech.CapabilityOf(err); c != speech.Available {
		return c.Message()
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNotAuthenticated):
		return "Session expired or credentials are wrong. Sign in again."
	case errors.Is(err, adapter.ErrConflict):
		return "An account with this email already exists."
	case errors.Is(err, adapter.ErrNotFound):
		return "It was removed on the server. Reload with r."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable."
	}

	return err.Error()
}
