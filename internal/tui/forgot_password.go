// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type resetStep int

const (
	stepEmail resetStep = iota
	stepOTP
	stepNewPassword
)

func (s resetStep) String() string {
	switch s {
	case stepEmail:
		return "1/3 Email"
	case stepOTP:
		return "2/3 Verification code"
	default:
		return "3/3 New password"
	}
}

type forgotPrefill struct {
	email string
}

// ForgotPasswordModel walks the user through the reset flow: request a code
// by email, verify the code, then set a new password.
type ForgotPasswordModel struct {
	ctx  context.Context
	auth service.AuthService

	step       resetStep
	email      textinput.Model
	otp        textinput.Model
	password   textinput.Model
	confirm    textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewForgotPasswordModel(ctx context.Context, auth service.AuthService) *ForgotPasswordModel {
	newInput := func(placeholder string, limit int, secret bool) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		if secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		return in
	}

	m := &ForgotPasswordModel{
		ctx:      ctx,
		auth:     auth,
		email:    newInput("admin@example.com", 254, false),
		otp:      newInput("123456", 8, false),
		password: newInput("at least 8 characters", 256, true),
		confirm:  newInput("repeat password", 256, true),
	}
	m.email.Focus()
	return m
}

func (m *ForgotPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case forgotPrefill:
		m.reset()
		m.email.SetValue(msg.email)
		return m, nil
	case resetStepDoneMsg:
		return m.handleStepDone(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case key.Matches(msg, keys.fieldNext):
			m.cycleFocus(1)
			return m, nil
		case key.Matches(msg, keys.fieldPrev):
			m.cycleFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit()
		}
	}

	inputs := m.stepInputs()
	var cmd tea.Cmd
	*inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ForgotPasswordModel) handleStepDone(msg resetStepDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.status = msg.message
	switch msg.step {
	case stepEmail:
		m.setStep(stepOTP)
	case stepOTP:
		m.setStep(stepNewPassword)
	case stepNewPassword:
		notice := PasswordResetNotice{
			Email:   strings.TrimSpace(m.email.Value()),
			Message: "Password updated. Sign in with the new password.",
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: notice} }
	}
	return m, nil
}

func (m *ForgotPasswordModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	step := m.step
	email := strings.TrimSpace(m.email.Value())
	otp := strings.TrimSpace(m.otp.Value())
	password := m.password.Value()
	confirm := m.confirm.Value()

	return func() tea.Msg {
		var (
			message string
			err     error
		)
		switch step {
		case stepEmail:
			message, err = auth.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: email})
		case stepOTP:
			message, err = auth.VerifyOTP(ctx, models.OTPVerification{Email: email, OTP: otp})
		case stepNewPassword:
			message, err = auth.ResetPassword(ctx, models.PasswordReset{
				Email:           email,
				OTP:             otp,
				Password:        password,
				ConfirmPassword: confirm,
			})
		}
		return resetStepDoneMsg{step: step, message: message, err: err}
	}
}

func (m *ForgotPasswordModel) stepInputs() []*textinput.Model {
	switch m.step {
	case stepOTP:
		return []*textinput.Model{&m.otp}
	case stepNewPassword:
		return []*textinput.Model{&m.password, &m.confirm}
	default:
		return []*textinput.Model{&m.email}
	}
}

func (m *ForgotPasswordModel) setStep(step resetStep) {
	for _, in := range m.stepInputs() {
		in.Blur()
	}
	m.step = step
	m.focus = 0
	m.stepInputs()[0].Focus()
}

func (m *ForgotPasswordModel) cycleFocus(delta int) {
	inputs := m.stepInputs()
	inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(inputs)) % len(inputs)
	inputs[m.focus].Focus()
}

func (m *ForgotPasswordModel) reset() {
	m.email.SetValue("")
	m.otp.SetValue("")
	m.password.SetValue("")
	m.confirm.SetValue("")
	m.status = ""
	m.errMsg = ""
	m.submitting = false
	m.setStep(stepEmail)
}

func (m *ForgotPasswordModel) View() string {
	var b strings.Builder
	b.WriteString("Step: ")
	b.WriteString(m.step.String())
	b.WriteString("\n\n")

	switch m.step {
	case stepEmail:
		b.WriteString("Email            │ [" + m.email.View() + "]\n")
	case stepOTP:
		b.WriteString("Email            │ " + m.email.Value() + "\n")
		b.WriteString("Code             │ [" + m.otp.View() + "]\n")
	case stepNewPassword:
		b.WriteString("New password     │ [" + m.password.View() + "]\n")
		b.WriteString("Confirm password │ [" + m.confirm.View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Continue]\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back to sign in │ tab: next field │ enter: continue")
}
