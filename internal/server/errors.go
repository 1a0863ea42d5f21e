// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package server

import "errors"

// errNoTransportConfigured is returned by NewServer when the configuration
// names no listen address, leaving nothing to run.
var errNoTransportConfigured = errors.New("no transport configured")
