// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// note server.
//
// The primary abstraction is [ServerAdapter], which decouples the controller
// and UI layers from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
// Requests that exceed the configured timeout surface [ErrTimeout] so the UI
// can distinguish a slow server from a rejected request.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/notebook"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the note
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The embedded [notebook.RemoteNoteStore] and [notebook.RemoteBlobStore]
// interfaces make every adapter directly usable as the controller's remote
// backends.
type ServerAdapter interface {
	notebook.RemoteNoteStore
	notebook.RemoteBlobStore

	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) error

	// Version fetches the server's build version string.
	Version(ctx context.Context) (string, error)
}
