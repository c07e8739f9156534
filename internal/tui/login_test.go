// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/saas-admin/internal/adapter"
	"github.com/MKhiriev/saas-admin/internal/mock"
	"github.com/MKhiriev/saas-admin/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	ctx := context.Background()

	m := NewLoginModel(ctx, auth)
	m.inputs[0].SetValue(" admin@example.com ")
	m.inputs[1].SetValue("secret")

	auth.EXPECT().Login(ctx, models.Credentials{Email: "admin@example.com", Password: "secret"}).Return(nil)

	_, cmd := m.Update(keyEnter)
	assert.True(t, m.submitting)

	result := findMsg[LoginResult](t, cmd)
	require.NoError(t, result.Err)
	assert.Equal(t, "admin@example.com", result.Email)

	// a second enter while submitting is ignored
	_, cmd = m.Update(keyEnter)
	assert.Nil(t, cmd)
}

func TestLoginModel_ShowsAPIMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))
	m.submitting = true

	m.Update(LoginResult{Err: &adapter.APIError{StatusCode: 401, Message: "Invalid credentials"}})

	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid credentials", m.errMsg)
	assert.Contains(t, m.View(), "Invalid credentials")
}

func TestLoginModel_ForgotPasswordNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))
	m.inputs[0].SetValue("admin@example.com")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	nav := findMsg[NavigateTo](t, cmd)

	assert.Equal(t, pageForgot, nav.Page)
	assert.Equal(t, forgotPrefill{email: "admin@example.com"}, nav.Payload)
}

func TestLoginModel_PasswordResetNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))
	m.inputs[1].SetValue("old")

	m.Update(PasswordResetNotice{Email: "a@b.io", Message: "Password updated"})

	assert.Equal(t, "a@b.io", m.inputs[0].Value())
	assert.Empty(t, m.inputs[1].Value())
	assert.Equal(t, 1, m.focus)
	assert.Equal(t, "Password updated", m.status)
}

func TestRootModel_FinishesOnLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	auth := mock.NewMockAuthService(ctrl)

	root := NewRootModel(map[string]tea.Model{
		pageLogin:  NewLoginModel(ctx, auth),
		pageForgot: NewForgotPasswordModel(ctx, auth),
	}, pageLogin, models.NewAppBuildInfo("v1", "", ""))

	t.Run("failed login keeps the page", func(t *testing.T) {
		next, cmd := root.Update(LoginResult{Err: assert.AnError})
		assert.Nil(t, cmd)
		assert.False(t, next.(RootModel).loggedIn)
	})

	t.Run("navigate", func(t *testing.T) {
		next, _ := root.Update(NavigateTo{Page: pageForgot})
		assert.IsType(t, &ForgotPasswordModel{}, next.(RootModel).current)

		unchanged, _ := root.Update(NavigateTo{Page: "missing"})
		assert.IsType(t, &LoginModel{}, unchanged.(RootModel).current)
	})

	t.Run("build info window", func(t *testing.T) {
		next, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
		assert.Contains(t, next.View(), "Version: v1")
		assert.Contains(t, next.View(), "Commit: N/A")

		closed, _ := next.Update(keyEsc)
		assert.False(t, closed.(RootModel).showBuildInfo)
	})

	t.Run("successful login quits", func(t *testing.T) {
		next, cmd := root.Update(LoginResult{Email: "a@b.io"})
		assert.True(t, next.(RootModel).loggedIn)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.True(t, next.(RootModel).quitByUser)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}
