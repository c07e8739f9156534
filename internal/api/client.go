// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/saas-admin/internal/adapter"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/utils"
	"github.com/MKhiriev/saas-admin/models"
)

// Client executes registered operations through a shared transport and cache.
type Client struct {
	registry  *Registry
	transport adapter.Transport
	cache     *Cache
	logger    *logger.Logger
}

var _ API = (*Client)(nil)

func NewClient(registry *Registry, transport adapter.Transport, cache *Cache, logger *logger.Logger) *Client {
	return &Client{
		registry:  registry,
		transport: transport,
		cache:     cache,
		logger:    logger,
	}
}

// Cache returns the cache the client reads through.
func (c *Client) Cache() *Cache {
	return c.cache
}

// Execute runs the operation registered under name with args and returns the
// raw response body.
//
// Failures are returned, never panicked: *adapter.APIError for a non-2xx
// response, *adapter.TransportError when no response arrived, or an error
// wrapping ErrUnknownOperation / ErrInvalidArguments before anything is sent.
func (c *Client) Execute(ctx context.Context, name string, args any) ([]byte, error) {
	op, ok := c.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	req, err := op.Build(args)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", name, err)
	}

	ctx = utils.WithOperation(ctx, name)

	if op.Kind == Query {
		key := CacheKey{Operation: name, Method: req.Method, URL: req.URL}
		return c.cache.GetOrFetch(ctx, key, op.Provides, func(ctx context.Context) ([]byte, error) {
			return c.transport.Do(ctx, req)
		})
	}

	return c.mutate(ctx, op, req)
}

type mutationResult struct {
	body []byte
	err  error
}

// mutate sends req detached from ctx so that an abandoned caller does not
// cancel the request; the invalidation still happens once it succeeds.
func (c *Client) mutate(ctx context.Context, op Operation, req models.Request) ([]byte, error) {
	done := make(chan mutationResult, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		body, err := c.transport.Do(detached, req)
		if err == nil && len(op.Invalidates) > 0 {
			n := c.cache.Invalidate(op.Invalidates...)
			c.logger.Debug().
				Str("operation", op.Name).
				Int("stale", n).
				Msg("mutation invalidated cached queries")
		}
		done <- mutationResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.body, res.err
	}
}

// execute runs name and decodes the body into T. An empty body yields the
// zero value of T.
func execute[T any](ctx context.Context, c *Client, name string, args any) (T, error) {
	var out T

	body, err := c.Execute(ctx, name, args)
	if err != nil {
		return out, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err = json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%w (%s): %w", ErrDecodeResponse, name, err)
	}

	return out, nil
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	return execute[models.LoginResponse](ctx, c, OpLogin, creds)
}

func (c *Client) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (models.MessageResponse, error) {
	return execute[models.MessageResponse](ctx, c, OpRequestPasswordReset, req)
}

func (c *Client) VerifyOTP(ctx context.Context, req models.OTPVerification) (models.MessageResponse, error) {
	return execute[models.MessageResponse](ctx, c, OpVerifyOTP, req)
}

func (c *Client) ResetPassword(ctx context.Context, req models.PasswordReset) (models.MessageResponse, error) {
	return execute[models.MessageResponse](ctx, c, OpResetPassword, req)
}

func (c *Client) CreateUser(ctx context.Context, employee models.NewEmployee) (models.Employee, error) {
	return execute[models.Employee](ctx, c, OpCreateUser, employee)
}

func (c *Client) GetAllEmployees(ctx context.Context, params models.ListParams) (models.Page[models.Employee], error) {
	return execute[models.Page[models.Employee]](ctx, c, OpGetAllEmployees, params)
}

func (c *Client) UpdateEmployee(ctx context.Context, update models.EmployeeUpdate) (models.Employee, error) {
	return execute[models.Employee](ctx, c, OpUpdateEmployee, update)
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	_, err := c.Execute(ctx, OpDeleteEmployee, id)
	return err
}

func (c *Client) CreateTenant(ctx context.Context, tenant models.NewTenant) (models.Tenant, error) {
	return execute[models.Tenant](ctx, c, OpCreateTenant, tenant)
}

func (c *Client) GetAllTenants(ctx context.Context, params models.ListParams) (models.Page[models.Tenant], error) {
	return execute[models.Page[models.Tenant]](ctx, c, OpGetAllTenants, params)
}

func (c *Client) UpdateTenant(ctx context.Context, update models.TenantUpdate) (models.Tenant, error) {
	return execute[models.Tenant](ctx, c, OpUpdateTenant, update)
}

func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	_, err := c.Execute(ctx, OpDeleteTenant, id)
	return err
}

func (c *Client) AddTemplate(ctx context.Context, template models.NewTemplate) (models.Template, error) {
	return execute[models.Template](ctx, c, OpAddTemplate, template)
}

func (c *Client) GetTemplates(ctx context.Context, params models.ListParams) (models.Page[models.Template], error) {
	return execute[models.Page[models.Template]](ctx, c, OpGetTemplates, params)
}

func (c *Client) GetTemplateByID(ctx context.Context, id string) (models.Template, error) {
	return execute[models.Template](ctx, c, OpGetTemplateByID, id)
}

func (c *Client) UpdateTemplate(ctx context.Context, update models.TemplateUpdate) (models.Template, error) {
	return execute[models.Template](ctx, c, OpUpdateTemplate, update)
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	_, err := c.Execute(ctx, OpDeleteTemplate, id)
	return err
}

func (c *Client) ResetCache() {
	c.cache.Reset()
}
