// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSessionNotFound   = errors.New("no stored session")
	ErrSessionExpired    = errors.New("session expired, please sign in again")
	ErrNoTokenInResponse = errors.New("login response carries no token")
	ErrInvalidForm       = errors.New("invalid form")
)
