// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/saas-admin/internal/adapter"
)

// mapAPIError marks a 401 from any call made with a session as an expired
// session. The original error stays in the chain so its message can still
// be shown with adapter.UserMessage.
func mapAPIError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	return err
}

func formError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}
