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

type templateService struct {
	api       api.API
	validator validators.Validator

	logger *logger.Logger
}

func NewTemplateService(client api.API, validator validators.Validator, logger *logger.Logger) TemplateService {
	return &templateService{api: client, validator: validator, logger: logger}
}

func (s *templateService) List(ctx context.Context, params models.ListParams) (models.Page[models.Template], error) {
	page, err := s.api.GetTemplates(ctx, params)
	return page, mapAPIError(err)
}

func (s *templateService) Get(ctx context.Context, id string) (models.Template, error) {
	if err := requireID(id); err != nil {
		return models.Template{}, err
	}

	tpl, err := s.api.GetTemplateByID(ctx, id)
	return tpl, mapAPIError(err)
}

func (s *templateService) Create(ctx context.Context, template models.NewTemplate) (models.Template, error) {
	if err := s.validator.Validate(ctx, template); err != nil {
		return models.Template{}, formError(err)
	}
	template.Name = strings.TrimSpace(template.Name)
	template.AttachmentFileURL = strings.TrimSpace(template.AttachmentFileURL)

	created, err := s.api.AddTemplate(ctx, template)
	if err != nil {
		return models.Template{}, mapAPIError(err)
	}

	s.logger.Info().Str("template_id", created.ID).Msg("template added")
	return created, nil
}

func (s *templateService) Update(ctx context.Context, update models.TemplateUpdate) (models.Template, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Template{}, formError(err)
	}
	update.AttachmentFileURL = strings.TrimSpace(update.AttachmentFileURL)

	updated, err := s.api.UpdateTemplate(ctx, update)
	return updated, mapAPIError(err)
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.api.DeleteTemplate(ctx, id); err != nil {
		return mapAPIError(err)
	}

	s.logger.Info().Str("template_id", id).Msg("template deleted")
	return nil
}
