// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
)

// ErrUserQuit is returned by the login flow when the user exits the program
// instead of authenticating.
var ErrUserQuit = errors.New("user quit")

// humanizeTransportError rewrites low-level connectivity failures into a
// message a user can act on; everything else passes through unchanged.
func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrTimeout) {
		return "server did not respond in time"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "no network or the server is unavailable"
	}

	return err.Error()
}
