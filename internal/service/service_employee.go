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

type employeeService struct {
	api       api.API
	validator validators.Validator

	logger *logger.Logger
}

func NewEmployeeService(client api.API, validator validators.Validator, logger *logger.Logger) EmployeeService {
	return &employeeService{api: client, validator: validator, logger: logger}
}

func (s *employeeService) List(ctx context.Context, params models.ListParams) (models.Page[models.Employee], error) {
	page, err := s.api.GetAllEmployees(ctx, params)
	return page, mapAPIError(err)
}

func (s *employeeService) Create(ctx context.Context, employee models.NewEmployee) (models.Employee, error) {
	if err := s.validator.Validate(ctx, employee); err != nil {
		return models.Employee{}, formError(err)
	}
	employee.Name = strings.TrimSpace(employee.Name)
	employee.Email = strings.TrimSpace(employee.Email)

	created, err := s.api.CreateUser(ctx, employee)
	if err != nil {
		return models.Employee{}, mapAPIError(err)
	}

	s.logger.Info().Str("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *employeeService) Update(ctx context.Context, update models.EmployeeUpdate) (models.Employee, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Employee{}, formError(err)
	}
	update.Name = trimmed(update.Name)
	update.Email = trimmed(update.Email)

	updated, err := s.api.UpdateEmployee(ctx, update)
	return updated, mapAPIError(err)
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		return mapAPIError(err)
	}

	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
