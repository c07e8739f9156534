// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package api is the typed request/cache layer between the console and the
// remote admin REST API.
//
// Every call is described by a static [Operation]: its name, whether it is a
// [Query] or a [Mutation], a builder turning arguments into a request, and the
// cache tags it provides or invalidates. [Client] executes any registered
// operation through one generic path:
//
//   - queries are served from the [Cache] while fresh and fetched otherwise;
//   - mutations go straight to the transport and, on success, mark every
//     cached query result carrying one of their tags stale.
//
// Stale results are re-fetched lazily, on the next read.
package api

import (
	"context"

	"github.com/MKhiriev/saas-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_mock.go -package=mock

// API exposes one typed callable per operation.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (models.MessageResponse, error)
	VerifyOTP(ctx context.Context, req models.OTPVerification) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, req models.PasswordReset) (models.MessageResponse, error)

	CreateUser(ctx context.Context, employee models.NewEmployee) (models.Employee, error)
	GetAllEmployees(ctx context.Context, params models.ListParams) (models.Page[models.Employee], error)
	UpdateEmployee(ctx context.Context, update models.EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	CreateTenant(ctx context.Context, tenant models.NewTenant) (models.Tenant, error)
	GetAllTenants(ctx context.Context, params models.ListParams) (models.Page[models.Tenant], error)
	UpdateTenant(ctx context.Context, update models.TenantUpdate) (models.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	AddTemplate(ctx context.Context, template models.NewTemplate) (models.Template, error)
	GetTemplates(ctx context.Context, params models.ListParams) (models.Page[models.Template], error)
	GetTemplateByID(ctx context.Context, id string) (models.Template, error)
	UpdateTemplate(ctx context.Context, update models.TemplateUpdate) (models.Template, error)
	DeleteTemplate(ctx context.Context, id string) error

	// ResetCache drops every cached result.
	ResetCache()
}
