// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/mock"
	"github.com/MKhiriev/saas-admin/internal/validators"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := NewServices(mock.NewMockAPI(ctrl), mock.NewMockSessionStore(ctrl), validators.NewFormValidator(), logger.Nop())

	assert.NotNil(t, s.AuthService)
	assert.NotNil(t, s.TenantService)
	assert.NotNil(t, s.EmployeeService)
	assert.NotNil(t, s.TemplateService)
}
