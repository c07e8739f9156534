// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail         = errors.New("a valid email is required")
	ErrInvalidOTP           = errors.New("the code must be 4 to 8 digits")
	ErrEmptyPassword        = errors.New("password is required")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmptyName            = errors.New("name is required")
	ErrInvalidAttachmentURL = errors.New("attachment must be an absolute http(s) URL")
	ErrMissingID            = errors.New("record id is required")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
)

// FieldError names the form field that failed. It unwraps to one of the
// sentinels above so callers can match with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
