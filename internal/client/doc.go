// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the shared session state, and the server
// adapter into a single process lifecycle: sign in, warm up the caches, run
// the main loop, and reset everything on sign-out.
package client
