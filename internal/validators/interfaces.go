// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

// Package validators holds the input checks the document service runs before
// touching the store: collection names must be known, owner and document ids
// must be present, and required fields must be non-empty. Anything beyond
// "non-empty" (age ranges, date formats) is deliberately not checked here.
package validators

import "context"

// Validator checks one input value. The optional names restrict the check to
// specific fields of the value, which the document service uses to validate
// partial updates without demanding the full field set.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
