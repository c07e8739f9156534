// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import "errors"

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrDuplicateOperation = errors.New("operation already registered")
	ErrInvalidOperation   = errors.New("invalid operation descriptor")
	ErrInvalidArguments   = errors.New("invalid operation arguments")
	ErrMissingID          = errors.New("record id is required")
	ErrDecodeResponse     = errors.New("error decoding response body")
)
