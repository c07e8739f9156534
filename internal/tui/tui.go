// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the admin console on Bubble Tea: the sign-in and
// forgot-password pages, and a dashboard with Tenants, Employees and
// Templates sections.
package tui

import (
	"context"

	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.Services
	cache     Invalidator
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

func New(services *service.Services, cache Invalidator, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		cache:     cache,
		buildInfo: buildInfo,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
		logger:    logger,
	}
}

// LoginFlow runs the sign-in pages until the user signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(ctx, t.services.AuthService),
		pageForgot: NewForgotPasswordModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	t.logger.Info().Msg("login flow finished")
	return nil
}

// MainLoop runs the dashboard. It reports whether the session should end:
// the user logged out, or the API rejected the token.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services, t.cache)
	root := NewRootModel(map[string]tea.Model{"dashboard": model}, "dashboard", t.buildInfo)

	finalModel, err := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	dashboard, ok := result.current.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	if dashboard.expired {
		t.logger.Warn().Msg("session rejected by the API")
	}
	return dashboard.logout, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}
