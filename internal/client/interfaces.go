// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package client

// Client is the runnable surface of the terminal application: Run blocks
// through sign-in, the main loop, and any number of sign-out/sign-in cycles
// until the user quits.
type Client interface {
	Run() error
}
