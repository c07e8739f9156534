// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidCacheConfigs   = errors.New("invalid cache configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
