// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/MKhiriev/saas-admin/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of a form.
// They match the JSON names the API uses for the same fields.
const (
	FieldID              = "id"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldOTP             = "otp"
	FieldName            = "name"
	FieldAttachmentURL   = "attachmentFileUrl"
)

const (
	tagEmail       = "required,email"
	tagOTP         = "required,number,min=4,max=8"
	tagNewPassword = "min=8"
	tagRequired    = "required"
	tagAttachment  = "required," + ruleAbsHTTPURL
)

// FormValidator implements Validator for every form the console submits:
// Credentials, PasswordResetRequest, OTPVerification, PasswordReset,
// NewTenant, TenantUpdate, NewEmployee, EmployeeUpdate, NewTemplate and
// TemplateUpdate. Values and non-nil pointers are both accepted.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs a FormValidator backed by go-playground's
// validator with the console's custom rules registered.
//
// It panics if a custom rule cannot be registered: the rule set is fixed at
// compile time, so a failure is a programming error.
func NewFormValidator() Validator {
	validate := validator.New()
	if err := registerRules(validate, customRules); err != nil {
		panic(err)
	}

	return &FormValidator{validate: validate}
}

const ruleAbsHTTPURL = "abs_http_url"

var customRules = map[string]validator.Func{
	ruleAbsHTTPURL: absoluteHTTPURL,
}

func registerRules(validate *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q rule: %w", tag, err)
		}
	}
	return nil
}

// Validate dispatches on the dynamic type of obj. When fields is empty the
// full form is checked; otherwise only the named fields are, which lets a
// multi-step form validate the step it is on.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := indirect(obj).(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case models.PasswordResetRequest:
		return v.validatePasswordResetRequest(value, fields...)
	case models.OTPVerification:
		return v.validateOTPVerification(value, fields...)
	case models.PasswordReset:
		return v.validatePasswordReset(value, fields...)
	case models.NewTenant:
		return v.validateNewTenant(value, fields...)
	case models.TenantUpdate:
		return v.validateTenantUpdate(value, fields...)
	case models.NewEmployee:
		return v.validateNewEmployee(value, fields...)
	case models.EmployeeUpdate:
		return v.validateEmployeeUpdate(value, fields...)
	case models.NewTemplate:
		return v.validateNewTemplate(value, fields...)
	case models.TemplateUpdate:
		return v.validateTemplateUpdate(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = v.check(f, strings.TrimSpace(c.Email), tagEmail, ErrInvalidEmail)
		case FieldPassword:
			// existing passwords may predate the length rule
			err = v.check(f, c.Password, tagRequired, ErrEmptyPassword)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validatePasswordResetRequest(r models.PasswordResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		if f != FieldEmail {
			return ErrUnknownField
		}
		if err := v.check(f, strings.TrimSpace(r.Email), tagEmail, ErrInvalidEmail); err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateOTPVerification(o models.OTPVerification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldOTP}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = v.check(f, strings.TrimSpace(o.Email), tagEmail, ErrInvalidEmail)
		case FieldOTP:
			err = v.check(f, strings.TrimSpace(o.OTP), tagOTP, ErrInvalidOTP)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validatePasswordReset(r models.PasswordReset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = v.check(f, strings.TrimSpace(r.Email), tagEmail, ErrInvalidEmail)
		case FieldOTP:
			err = v.check(f, strings.TrimSpace(r.OTP), tagOTP, ErrInvalidOTP)
		case FieldPassword:
			err = v.checkNewPassword(f, r.Password)
		case FieldConfirmPassword:
			err = v.checkConfirmation(r.Password, r.ConfirmPassword)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateNewTenant(t models.NewTenant, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		if f != FieldName {
			return ErrUnknownField
		}
		if err := v.check(f, strings.TrimSpace(t.Name), tagRequired, ErrEmptyName); err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateTenantUpdate(t models.TenantUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = v.check(f, strings.TrimSpace(t.ID), tagRequired, ErrMissingID)
		case FieldName:
			err = v.check(f, strings.TrimSpace(t.Name), tagRequired, ErrEmptyName)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateNewEmployee(e models.NewEmployee, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = v.check(f, strings.TrimSpace(e.Name), tagRequired, ErrEmptyName)
		case FieldEmail:
			err = v.check(f, strings.TrimSpace(e.Email), tagEmail, ErrInvalidEmail)
		case FieldPassword:
			err = v.checkNewPassword(f, e.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateEmployeeUpdate(e models.EmployeeUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldEmail}
		if e.Name == nil && e.Email == nil {
			return ErrNoFieldsToUpdate
		}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = v.check(f, strings.TrimSpace(e.ID), tagRequired, ErrMissingID)
		case FieldName:
			if e.Name != nil {
				err = v.check(f, strings.TrimSpace(*e.Name), tagRequired, ErrEmptyName)
			}
		case FieldEmail:
			if e.Email != nil {
				err = v.check(f, strings.TrimSpace(*e.Email), tagEmail, ErrInvalidEmail)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateNewTemplate(t models.NewTemplate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAttachmentURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = v.check(f, strings.TrimSpace(t.Name), tagRequired, ErrEmptyName)
		case FieldAttachmentURL:
			err = v.check(f, strings.TrimSpace(t.AttachmentFileURL), tagAttachment, ErrInvalidAttachmentURL)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateTemplateUpdate(t models.TemplateUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldAttachmentURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = v.check(f, strings.TrimSpace(t.ID), tagRequired, ErrMissingID)
		case FieldAttachmentURL:
			err = v.check(f, strings.TrimSpace(t.AttachmentFileURL), tagAttachment, ErrInvalidAttachmentURL)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) checkNewPassword(field, password string) error {
	if password == "" {
		return &FieldError{Field: field, Err: ErrEmptyPassword}
	}
	return v.check(field, password, tagNewPassword, ErrPasswordTooShort)
}

func (v *FormValidator) checkConfirmation(password, confirmation string) error {
	if err := v.validate.VarWithValue(confirmation, password, "eqfield"); err != nil {
		return &FieldError{Field: FieldConfirmPassword, Err: ErrPasswordMismatch}
	}
	return nil
}

// check runs a go-playground tag against a single value and reports a rule
// violation as a FieldError carrying sentinel.
func (v *FormValidator) check(field string, value any, tag string, sentinel error) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		return &FieldError{Field: field, Err: sentinel}
	}
	return fmt.Errorf("validating %s: %w", field, err)
}

func absoluteHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// indirect unwraps a non-nil pointer so the type switch only lists values.
func indirect(obj any) any {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer {
		return obj
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
