// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/store"
	"github.com/MKhiriev/saas-admin/internal/validators"
)

type Services struct {
	AuthService     AuthService
	TenantService   TenantService
	EmployeeService EmployeeService
	TemplateService TemplateService
}

func NewServices(client api.API, sessions store.SessionStore, validator validators.Validator, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(client, sessions, validator, logger),
		TenantService:   NewTenantService(client, validator, logger),
		EmployeeService: NewEmployeeService(client, validator, logger),
		TemplateService: NewTemplateService(client, validator, logger),
	}
}
