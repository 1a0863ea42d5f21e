// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup.
//
// The client path tolerates an empty server section, so only obviously
// inconsistent combinations are rejected here; the server main fails fast on
// missing DSN or token material via the service constructors.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
