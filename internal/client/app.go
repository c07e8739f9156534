// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/internal/tui"
)

type App struct {
	services *service.Services
	ui       UI
	workers  Workers

	logger *logger.Logger
}

func NewApp(services *service.Services, ui UI, workers Workers, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}
}

// Run starts the workers and alternates between signing in and the
// dashboard until the user quits.
func (a *App) Run(ctx context.Context) error {
	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}
	defer a.workers.Stop()

	for {
		if err := a.signIn(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Msg("signed out")
	}
}

func (a *App) signIn(ctx context.Context) error {
	err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Msg("session restored")
		return nil
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrSessionExpired):
		a.logger.Debug().Err(err).Msg("no usable session, starting login flow")
		return a.ui.LoginFlow(ctx)
	default:
		return fmt.Errorf("restore session: %w", err)
	}
}
