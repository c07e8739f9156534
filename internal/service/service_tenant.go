// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/validators"
	"github.com/MKhiriev/saas-admin/models"
)

type tenantService struct {
	api       api.API
	validator validators.Validator

	logger *logger.Logger
}

func NewTenantService(client api.API, validator validators.Validator, logger *logger.Logger) TenantService {
	return &tenantService{api: client, validator: validator, logger: logger}
}

func (s *tenantService) List(ctx context.Context, params models.ListParams) (models.Page[models.Tenant], error) {
	page, err := s.api.GetAllTenants(ctx, params)
	return page, mapAPIError(err)
}

func (s *tenantService) Create(ctx context.Context, tenant models.NewTenant) (models.Tenant, error) {
	if err := s.validator.Validate(ctx, tenant); err != nil {
		return models.Tenant{}, formError(err)
	}
	tenant.Name = strings.TrimSpace(tenant.Name)

	created, err := s.api.CreateTenant(ctx, tenant)
	if err != nil {
		return models.Tenant{}, mapAPIError(err)
	}

	s.logger.Info().Str("tenant_id", created.ID).Msg("tenant created")
	return created, nil
}

func (s *tenantService) Update(ctx context.Context, update models.TenantUpdate) (models.Tenant, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Tenant{}, formError(err)
	}
	update.Name = strings.TrimSpace(update.Name)

	updated, err := s.api.UpdateTenant(ctx, update)
	return updated, mapAPIError(err)
}

func (s *tenantService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.api.DeleteTenant(ctx, id); err != nil {
		return mapAPIError(err)
	}

	s.logger.Info().Str("tenant_id", id).Msg("tenant deleted")
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return formError(&validators.FieldError{Field: validators.FieldID, Err: validators.ErrMissingID})
	}
	return nil
}
