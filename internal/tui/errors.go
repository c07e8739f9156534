// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/saas-admin/internal/adapter"
	"github.com/MKhiriev/saas-admin/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var fe *validators.FieldError
	if errors.As(err, &fe) {
		return fe.Err.Error()
	}
	if _, ok := adapter.IsAPIError(err); ok || adapter.IsTransportError(err) {
		return adapter.UserMessage(err)
	}
	return err.Error()
}
