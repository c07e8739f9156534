// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/saas-admin/models"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewFormValidator(t *testing.T) {
	assert.NotPanics(t, func() {
		require.NotNil(t, NewFormValidator())
	})
}

func TestRegisterRules(t *testing.T) {
	tests := []struct {
		name    string
		rules   map[string]validator.Func
		wantErr bool
	}{
		{name: "custom rules", rules: customRules},
		{name: "empty tag", rules: map[string]validator.Func{"": absoluteHTTPURL}, wantErr: true},
		{name: "nil func", rules: map[string]validator.Func{ruleAbsHTTPURL: nil}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registerRules(validator.New(), tt.rules)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var c *models.Credentials
		require.ErrorIs(t, v.Validate(ctx, c), ErrUnsupportedType)
	})

	t.Run("pointer and value", func(t *testing.T) {
		c := models.Credentials{Email: "admin@example.com", Password: "secret"}
		require.NoError(t, v.Validate(ctx, c))
		require.NoError(t, v.Validate(ctx, &c))
	})

	t.Run("unknown field", func(t *testing.T) {
		c := models.Credentials{Email: "admin@example.com", Password: "secret"}
		require.ErrorIs(t, v.Validate(ctx, c, "nickname"), ErrUnknownField)
	})
}

func TestValidate_Credentials(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "a@b.io", Password: "short"}},
		{name: "email with spaces", creds: models.Credentials{Email: "  a@b.io ", Password: "x"}},
		{name: "empty email", creds: models.Credentials{Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "malformed email", creds: models.Credentials{Email: "not-an-email", Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "empty password", creds: models.Credentials{Email: "a@b.io"}, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FieldError(t *testing.T) {
	v := NewFormValidator()

	err := v.Validate(context.Background(), models.PasswordResetRequest{Email: "nope"})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldEmail, fe.Field)
	assert.Equal(t, "email: "+ErrInvalidEmail.Error(), err.Error())
}

func TestValidate_OTPVerification(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name    string
		otp     string
		wantErr error
	}{
		{name: "four digits", otp: "1234"},
		{name: "eight digits", otp: "12345678"},
		{name: "trimmed", otp: " 123456 "},
		{name: "empty", otp: "", wantErr: ErrInvalidOTP},
		{name: "too short", otp: "123", wantErr: ErrInvalidOTP},
		{name: "too long", otp: "123456789", wantErr: ErrInvalidOTP},
		{name: "letters", otp: "12ab", wantErr: ErrInvalidOTP},
		{name: "signed", otp: "-1234", wantErr: ErrInvalidOTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.OTPVerification{Email: "a@b.io", OTP: tt.otp})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PasswordReset(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	valid := models.PasswordReset{Email: "a@b.io", Password: "longenough", ConfirmPassword: "longenough"}
	require.NoError(t, v.Validate(ctx, valid))

	short := valid
	short.Password, short.ConfirmPassword = "short", "short"
	assert.ErrorIs(t, v.Validate(ctx, short), ErrPasswordTooShort)

	empty := valid
	empty.Password = ""
	assert.ErrorIs(t, v.Validate(ctx, empty), ErrEmptyPassword)

	mismatch := valid
	mismatch.ConfirmPassword = "different1"
	assert.ErrorIs(t, v.Validate(ctx, mismatch), ErrPasswordMismatch)

	t.Run("otp only checked when asked for", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, valid))
		assert.ErrorIs(t, v.Validate(ctx, valid, FieldOTP), ErrInvalidOTP)

		withOTP := valid
		withOTP.OTP = "4321"
		assert.NoError(t, v.Validate(ctx, withOTP, FieldEmail, FieldOTP, FieldPassword, FieldConfirmPassword))
	})

	t.Run("scoped to email step", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.PasswordReset{Email: "a@b.io"}, FieldEmail))
	})
}

func TestValidate_Tenants(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NewTenant{Name: "Acme"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NewTenant{Name: "   "}), ErrEmptyName)

	assert.NoError(t, v.Validate(ctx, models.TenantUpdate{ID: "t1", Name: "Acme"}))
	assert.ErrorIs(t, v.Validate(ctx, models.TenantUpdate{Name: "Acme"}), ErrMissingID)
	assert.ErrorIs(t, v.Validate(ctx, models.TenantUpdate{ID: "t1"}), ErrEmptyName)
}

func TestValidate_Employees(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		valid := models.NewEmployee{Name: "Ann", Email: "ann@example.com", Password: "password1"}
		assert.NoError(t, v.Validate(ctx, valid))

		noName := valid
		noName.Name = ""
		assert.ErrorIs(t, v.Validate(ctx, noName), ErrEmptyName)

		badEmail := valid
		badEmail.Email = "ann"
		assert.ErrorIs(t, v.Validate(ctx, badEmail), ErrInvalidEmail)

		shortPassword := valid
		shortPassword.Password = "1234567"
		assert.ErrorIs(t, v.Validate(ctx, shortPassword), ErrPasswordTooShort)
	})

	t.Run("update", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.EmployeeUpdate{ID: "e1", Name: strPtr("Ann")}))
		assert.NoError(t, v.Validate(ctx, models.EmployeeUpdate{ID: "e1", Email: strPtr("ann@example.com")}))
		assert.ErrorIs(t, v.Validate(ctx, models.EmployeeUpdate{ID: "e1"}), ErrNoFieldsToUpdate)
		assert.ErrorIs(t, v.Validate(ctx, models.EmployeeUpdate{Name: strPtr("Ann")}), ErrMissingID)
		assert.ErrorIs(t, v.Validate(ctx, models.EmployeeUpdate{ID: "e1", Name: strPtr(" ")}), ErrEmptyName)
		assert.ErrorIs(t, v.Validate(ctx, models.EmployeeUpdate{ID: "e1", Email: strPtr("x")}), ErrInvalidEmail)
	})
}

func TestValidate_Templates(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "https", url: "https://cdn.example.com/t.pdf"},
		{name: "http", url: "http://files.local/t.docx"},
		{name: "empty", url: "", wantErr: ErrInvalidAttachmentURL},
		{name: "relative", url: "/files/t.pdf", wantErr: ErrInvalidAttachmentURL},
		{name: "ftp", url: "ftp://example.com/t.pdf", wantErr: ErrInvalidAttachmentURL},
		{name: "no host", url: "https://", wantErr: ErrInvalidAttachmentURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.NewTemplate{Name: "NDA", AttachmentFileURL: tt.url})
			upd := v.Validate(ctx, models.TemplateUpdate{ID: "tpl1", AttachmentFileURL: tt.url})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.NoError(t, upd)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, upd, tt.wantErr)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, models.NewTemplate{AttachmentFileURL: "https://x.io/a"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.TemplateUpdate{AttachmentFileURL: "https://x.io/a"}), ErrMissingID)
}
