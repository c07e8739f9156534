// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the console's use cases. Each service validates form
// input, calls the typed API client and translates failures into errors the
// console can act on (e.g. [ErrSessionExpired] sends the user back to the
// login page).
package service

import (
	"context"

	"github.com/MKhiriev/saas-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages the console session and the password reset flow.
type AuthService interface {
	// Login validates creds, signs in, and persists the returned token.
	// Cached results of a previous session are dropped.
	Login(ctx context.Context, creds models.Credentials) error

	// Logout deletes the stored token and drops every cached result.
	Logout(ctx context.Context) error

	// RestoreSession checks that a stored, unexpired token exists. An expired
	// token is deleted.
	RestoreSession(ctx context.Context) error

	// RequestPasswordReset asks the API to e-mail a one-time code and returns
	// the API's acknowledgement message.
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (string, error)

	// VerifyOTP checks the one-time code.
	VerifyOTP(ctx context.Context, req models.OTPVerification) (string, error)

	// ResetPassword sets the new password after a verified code.
	ResetPassword(ctx context.Context, req models.PasswordReset) (string, error)
}

// TenantService manages tenants.
type TenantService interface {
	List(ctx context.Context, params models.ListParams) (models.Page[models.Tenant], error)
	Create(ctx context.Context, tenant models.NewTenant) (models.Tenant, error)
	Update(ctx context.Context, update models.TenantUpdate) (models.Tenant, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeService manages super-admin accounts.
type EmployeeService interface {
	List(ctx context.Context, params models.ListParams) (models.Page[models.Employee], error)
	Create(ctx context.Context, employee models.NewEmployee) (models.Employee, error)
	Update(ctx context.Context, update models.EmployeeUpdate) (models.Employee, error)
	Delete(ctx context.Context, id string) error
}

// TemplateService manages pre-configured document templates.
type TemplateService interface {
	List(ctx context.Context, params models.ListParams) (models.Page[models.Template], error)
	Get(ctx context.Context, id string) (models.Template, error)
	Create(ctx context.Context, template models.NewTemplate) (models.Template, error)
	Update(ctx context.Context, update models.TemplateUpdate) (models.Template, error)
	Delete(ctx context.Context, id string) error
}
