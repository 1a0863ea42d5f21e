// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package http

import "errors"

// Sentinels for the shapes a broken "Authorization" header can take. The auth
// middleware answers 401 for all of them; they are separated so the log line
// says which part of the header was wrong.
var (
	// ErrEmptyAuthorizationHeader: the request carried no header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: a header that does not split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the "Bearer" scheme was present but nothing followed it.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
