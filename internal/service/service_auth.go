// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/store"
	"github.com/MKhiriev/saas-admin/internal/utils"
	"github.com/MKhiriev/saas-admin/internal/validators"
	"github.com/MKhiriev/saas-admin/models"
)

type authService struct {
	api       api.API
	sessions  store.SessionStore
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewAuthService(client api.API, sessions store.SessionStore, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		api:       client,
		sessions:  sessions,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) error {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return formError(err)
	}

	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		// a 401 here means wrong credentials, not an expired session
		return err
	}

	token := resp.BearerToken()
	if token == "" {
		return ErrNoTokenInResponse
	}

	if err = a.sessions.Set(ctx, store.TokenKey, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	a.api.ResetCache()
	a.logger.Info().Str("email", creds.Email).Msg("signed in")

	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.api.ResetCache()

	if err := a.sessions.Delete(ctx, store.TokenKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}

	a.logger.Info().Msg("signed out")
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) error {
	token, err := a.sessions.Get(ctx, store.TokenKey)
	if errors.Is(err, store.ErrSessionValueNotFound) || (err == nil && token == "") {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}

	if utils.IsTokenExpired(token, a.now()) {
		if err = a.sessions.Delete(ctx, store.TokenKey); err != nil {
			a.logger.Warn().Err(err).Msg("failed to delete expired session token")
		}
		return ErrSessionExpired
	}

	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (string, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return "", formError(err)
	}

	resp, err := a.api.RequestPasswordReset(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (a *authService) VerifyOTP(ctx context.Context, req models.OTPVerification) (string, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return "", formError(err)
	}

	resp, err := a.api.VerifyOTP(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (a *authService) ResetPassword(ctx context.Context, req models.PasswordReset) (string, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return "", formError(err)
	}

	resp, err := a.api.ResetPassword(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}
