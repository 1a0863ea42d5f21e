// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package tui

import (
	"errors"
	"strings"

	"github.com/jmoreno/datebook/internal/adapter"
)

// humanizeServerError rewrites transport noise into something the user can
// act on; everything else passes through unchanged.
func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "wrong email or password"
	case errors.Is(err, adapter.ErrConflict):
		return "an account with this email already exists"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network, or the server is unreachable"
	}

	return err.Error()
}
