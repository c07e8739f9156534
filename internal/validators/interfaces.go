// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks console form input before it is sent to the
// admin API.
//
// Core concepts:
//   - Validator: generic interface to validate a form value. Supports
//     optional field-level scoping for targeted validation, e.g. checking
//     only the email step of the password reset flow.
//   - FieldError: the failure of a single field, unwrapping to a sentinel.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
