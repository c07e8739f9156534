// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/saas-admin/models"
)

// Kind distinguishes reads, whose results are cached, from writes, which
// invalidate cached reads.
type Kind int

const (
	Query Kind = iota + 1
	Mutation
)

func (k Kind) String() string {
	switch k {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	default:
		return "unknown"
	}
}

// Tag labels cached query results for bulk invalidation.
type Tag string

const (
	TagTenants    Tag = "Tenants"
	TagSuperAdmin Tag = "SuperAdmin"
	TagTemplate   Tag = "template"
)

// Operation names.
const (
	OpLogin                = "login"
	OpRequestPasswordReset = "requestPasswordReset"
	OpVerifyOTP            = "verifyOtp"
	OpResetPassword        = "resetPassword"
	OpCreateUser           = "createUser"
	OpGetAllEmployees      = "getAllEmployees"
	OpUpdateEmployee       = "updateEmployee"
	OpDeleteEmployee       = "deleteEmployee"
	OpCreateTenant         = "createTenant"
	OpGetAllTenants        = "getAllTenants"
	OpUpdateTenant         = "updateTenant"
	OpDeleteTenant         = "deleteTenant"
	OpAddTemplate          = "addTemplate"
	OpGetTemplates         = "getTemplates"
	OpGetTemplateByID      = "getTemplateById"
	OpUpdateTemplate       = "updateTemplate"
	OpDeleteTemplate       = "deleteTemplate"
)

// List defaults applied when ListParams leaves Page or Limit unset.
const (
	DefaultPage          = 1
	DefaultLimit         = 5
	DefaultTemplateLimit = 10
)

// BuildFunc turns operation arguments into a request.
type BuildFunc func(args any) (models.Request, error)

// Operation is the static descriptor of one API call.
type Operation struct {
	Name        string
	Kind        Kind
	Build       BuildFunc
	Provides    []Tag
	Invalidates []Tag
}

// DefaultOperations returns the operation table of the admin API. authPrefix
// is prepended to the /auth routes; pass "" to mount them at the root.
func DefaultOperations(authPrefix string) []Operation {
	auth := strings.TrimRight(authPrefix, "/") + "/auth"

	return []Operation{
		{
			Name:  OpLogin,
			Kind:  Mutation,
			Build: withBody[models.Credentials](http.MethodPost, auth+"/login"),
		},
		{
			Name:  OpRequestPasswordReset,
			Kind:  Mutation,
			Build: withBody[models.PasswordResetRequest](http.MethodPost, auth+"/forget-password"),
		},
		{
			Name:  OpVerifyOTP,
			Kind:  Mutation,
			Build: withBody[models.OTPVerification](http.MethodPatch, auth+"/verify-reset-token"),
		},
		{
			Name:  OpResetPassword,
			Kind:  Mutation,
			Build: withBody[models.PasswordReset](http.MethodPatch, auth+"/reset-password"),
		},

		{
			Name:        OpCreateUser,
			Kind:        Mutation,
			Build:       withBody[models.NewEmployee](http.MethodPost, "/super-admin"),
			Invalidates: []Tag{TagSuperAdmin},
		},
		{
			Name:     OpGetAllEmployees,
			Kind:     Query,
			Build:    list("/super-admin", DefaultLimit),
			Provides: []Tag{TagSuperAdmin},
		},
		{
			Name: OpUpdateEmployee,
			Kind: Mutation,
			Build: func(args any) (models.Request, error) {
				upd, err := argsAs[models.EmployeeUpdate](args)
				if err != nil {
					return models.Request{}, err
				}
				return withID(http.MethodPatch, "/super-admin/", upd.ID, upd)
			},
			Invalidates: []Tag{TagSuperAdmin},
		},
		{
			Name:        OpDeleteEmployee,
			Kind:        Mutation,
			Build:       byID(http.MethodDelete, "/super-admin/"),
			Invalidates: []Tag{TagSuperAdmin},
		},

		{
			Name:        OpCreateTenant,
			Kind:        Mutation,
			Build:       withBody[models.NewTenant](http.MethodPost, "/tenants"),
			Invalidates: []Tag{TagTenants},
		},
		{
			Name:     OpGetAllTenants,
			Kind:     Query,
			Build:    list("/tenants/all/", DefaultLimit),
			Provides: []Tag{TagTenants},
		},
		{
			Name: OpUpdateTenant,
			Kind: Mutation,
			Build: func(args any) (models.Request, error) {
				upd, err := argsAs[models.TenantUpdate](args)
				if err != nil {
					return models.Request{}, err
				}
				return withID(http.MethodPatch, "/tenants/", upd.ID, upd)
			},
			Invalidates: []Tag{TagTenants},
		},
		{
			Name:        OpDeleteTenant,
			Kind:        Mutation,
			Build:       byID(http.MethodDelete, "/tenants/"),
			Invalidates: []Tag{TagTenants},
		},

		{
			Name:        OpAddTemplate,
			Kind:        Mutation,
			Build:       withBody[models.NewTemplate](http.MethodPost, "/pre-configured-template"),
			Invalidates: []Tag{TagTemplate},
		},
		{
			Name:     OpGetTemplates,
			Kind:     Query,
			Build:    list("/pre-configured-template/admin/all", DefaultTemplateLimit),
			Provides: []Tag{TagTemplate},
		},
		{
			Name:     OpGetTemplateByID,
			Kind:     Query,
			Build:    byID(http.MethodGet, "/pre-configured-template/admin/one/"),
			Provides: []Tag{TagTemplate},
		},
		{
			Name: OpUpdateTemplate,
			Kind: Mutation,
			Build: func(args any) (models.Request, error) {
				upd, err := argsAs[models.TemplateUpdate](args)
				if err != nil {
					return models.Request{}, err
				}
				return withID(http.MethodPatch, "/pre-configured-template/", upd.ID, upd)
			},
			Invalidates: []Tag{TagTemplate},
		},
		{
			Name:        OpDeleteTemplate,
			Kind:        Mutation,
			Build:       byID(http.MethodDelete, "/pre-configured-template/"),
			Invalidates: []Tag{TagTemplate},
		},
	}
}

func argsAs[T any](args any) (T, error) {
	v, ok := args.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, got %T", ErrInvalidArguments, zero, args)
	}
	return v, nil
}

func withBody[T any](method, path string) BuildFunc {
	return func(args any) (models.Request, error) {
		body, err := argsAs[T](args)
		if err != nil {
			return models.Request{}, err
		}
		return models.Request{Method: method, URL: path, Body: body}, nil
	}
}

func byID(method, prefix string) BuildFunc {
	return func(args any) (models.Request, error) {
		id, err := argsAs[string](args)
		if err != nil {
			return models.Request{}, err
		}
		return withID(method, prefix, id, nil)
	}
}

func withID(method, prefix, id string, body any) (models.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Request{}, ErrMissingID
	}
	return models.Request{Method: method, URL: prefix + url.PathEscape(id), Body: body}, nil
}

func list(path string, defaultLimit int) BuildFunc {
	return func(args any) (models.Request, error) {
		var params models.ListParams
		if args != nil {
			p, err := argsAs[models.ListParams](args)
			if err != nil {
				return models.Request{}, err
			}
			params = p
		}
		return models.Request{Method: http.MethodGet, URL: listURL(path, params, defaultLimit)}, nil
	}
}

// listURL renders path?page=&limit=[&name=]. The name filter is added only
// when it is not blank.
func listURL(path string, params models.ListParams, defaultLimit int) string {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	u := fmt.Sprintf("%s?page=%d&limit=%d", path, page, limit)
	if name := strings.TrimSpace(params.Name); name != "" {
		u += "&name=" + url.QueryEscape(name)
	}
	return u
}
