// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds presence checks for incoming requests.
//
// A [Validator] is injected into the service layer, which runs it before any
// store access or password hashing. Validation can be scoped to named fields.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
