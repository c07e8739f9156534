// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// Page names understood by RootModel.
const (
	pageLogin  = "login"
	pageForgot = "forgot"
)

// NavigateTo switches the active page of a RootModel. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page. A nil Err ends the login flow.
type LoginResult struct {
	Err   error
	Email string
}

// PasswordResetNotice is delivered to the login page after a successful
// password reset.
type PasswordResetNotice struct {
	Email   string
	Message string
}

type resetStepDoneMsg struct {
	step    resetStep
	message string
	err     error
}

type listLoadedMsg struct {
	seq   int
	rows  []row
	total *int
	err   error
}

type detailLoadedMsg struct {
	fields []detailField
	err    error
}

type mutationDoneMsg struct {
	action string
	err    error
}
