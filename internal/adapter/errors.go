package adapter

import "errors"

// Sentinel errors for the status codes the datebook server answers with.
// mapHTTPError wraps the response body around one of these so callers can
// branch with [errors.Is] without inspecting status codes themselves.
var (
	// ErrBadRequest: malformed body or a failed required-field check.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized: no usable bearer token, or wrong credentials on login.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound: unknown collection, or no document with the given id.
	ErrNotFound = errors.New("not found")

	// ErrConflict: registration with an email that is already taken.
	ErrConflict = errors.New("conflict")

	// ErrInternalServerError: the server failed on its side.
	ErrInternalServerError = errors.New("internal server error")
)
