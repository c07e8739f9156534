// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tenant is an isolated customer account on the platform.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// NewTenant is the body of the create-tenant call.
type NewTenant struct {
	Name string `json:"name"`
}

// TenantUpdate renames a tenant. ID goes into the path, only Name is sent.
type TenantUpdate struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}
