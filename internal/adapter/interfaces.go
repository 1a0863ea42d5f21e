// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

// Package adapter provides the transport layer for communicating with the
// datebook server.
//
// The primary abstraction is [ServerAdapter], which covers both collaborators
// the client session depends on: the identity provider (register, login,
// sign-out, current-principal lookups, watch notifications) and the document
// store (insert, query, update of owner-scoped documents). The package ships
// an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/jmoreno/datebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the datebook
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Register creates a new account with the given credentials. On success
	// the adapter stores the bearer token returned by the server, remembers
	// the signed-in principal, and notifies watchers. Returns [ErrConflict]
	// (wrapped) if the email is already taken.
	Register(ctx context.Context, email, password string) (models.Principal, error)

	// Login authenticates an existing account. On success the adapter stores
	// the bearer token, remembers the signed-in principal, and notifies
	// watchers. Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, email, password string) (models.Principal, error)

	// SignOut drops the stored token and principal and notifies watchers
	// with a nil principal. Safe to call when nobody is signed in.
	SignOut()

	// Current returns the signed-in principal, or false if nobody is
	// signed in.
	Current() (models.Principal, bool)

	// Watch registers fn to be called with the new principal after every
	// sign-in and with nil after every sign-out. The returned cancel
	// function removes the watcher; calling it more than once is a no-op.
	Watch(fn func(*models.Principal)) (cancel func())

	// Insert creates a document in the given collection, owned by the
	// signed-in principal. Returns the document with the server-assigned
	// ID and creation time filled in.
	Insert(ctx context.Context, collection string, fields map[string]string) (models.Document, error)

	// Query returns all documents in the given collection owned by the
	// signed-in principal, newest first.
	Query(ctx context.Context, collection string) ([]models.Document, error)

	// Update applies a partial field update to the identified document.
	// Returns [ErrNotFound] (wrapped) if the document does not exist or
	// belongs to another principal.
	Update(ctx context.Context, collection, id string, fields map[string]string) error
}
