// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the login call.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful login. Services differ
// in the field they put the bearer token in, so both common spellings are
// decoded; use [LoginResponse.BearerToken] to read it.
type LoginResponse struct {
	Token       string `json:"token,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	Message     string `json:"message,omitempty"`
}

// BearerToken returns the session credential carried by the response, or an
// empty string when none was sent.
func (l LoginResponse) BearerToken() string {
	if l.Token != "" {
		return l.Token
	}
	return l.AccessToken
}

// PasswordResetRequest starts the forgotten-password flow.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// OTPVerification proves ownership of the e-mail address with the one-time
// code the service sent.
type OTPVerification struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// PasswordReset sets a new password once the OTP has been verified.
type PasswordReset struct {
	Email           string `json:"email"`
	OTP             string `json:"otp,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// MessageResponse is the generic acknowledgement body returned by the auth
// endpoints.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
}
