// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/saas-admin/internal/adapter"
	"github.com/MKhiriev/saas-admin/internal/config"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/store"
	"github.com/MKhiriev/saas-admin/internal/utils"
	"github.com/MKhiriev/saas-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ───────────────────────────────────────────────────────────────────

type fakeTransport struct {
	mu       sync.Mutex
	requests []models.Request
	ops      []string
	respond  func(req models.Request) ([]byte, error)
}

func (f *fakeTransport) Do(ctx context.Context, req models.Request) ([]byte, error) {
	op, _ := utils.GetOperationFromContext(ctx)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.ops = append(f.ops, op)
	respond := f.respond
	f.mu.Unlock()

	if respond == nil {
		return []byte(`{}`), nil
	}
	return respond(req)
}

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, tr adapter.Transport) *Client {
	t.Helper()
	reg, err := NewDefaultRegistry("")
	require.NoError(t, err)
	return NewClient(reg, tr, NewCache(logger.Nop()), logger.Nop())
}

var sampleArgs = map[string]any{
	OpLogin:                models.Credentials{Email: "root@example.com", Password: "secret"},
	OpRequestPasswordReset: models.PasswordResetRequest{Email: "root@example.com"},
	OpVerifyOTP:            models.OTPVerification{Email: "root@example.com", OTP: "123456"},
	OpResetPassword:        models.PasswordReset{Email: "root@example.com", OTP: "123456", Password: "newpass12", ConfirmPassword: "newpass12"},
	OpCreateUser:           models.NewEmployee{Name: "Ann", Email: "ann@example.com", Password: "password1"},
	OpGetAllEmployees:      models.ListParams{Page: 1, Limit: 5},
	OpUpdateEmployee:       models.EmployeeUpdate{ID: "e-42", Name: strPtr("Ann B")},
	OpDeleteEmployee:       "e-7",
	OpCreateTenant:         models.NewTenant{Name: "Globex"},
	OpGetAllTenants:        models.ListParams{Page: 2, Limit: 5, Name: "Acme"},
	OpUpdateTenant:         models.TenantUpdate{ID: "t-99", Name: "Initech"},
	OpDeleteTenant:         "t-3",
	OpAddTemplate:          models.NewTemplate{Name: "NDA", AttachmentFileURL: "https://files.example.com/nda.pdf"},
	OpGetTemplates:         models.ListParams{Name: "NDA"},
	OpGetTemplateByID:      "tpl-1",
	OpUpdateTemplate:       models.TemplateUpdate{ID: "tpl-1", AttachmentFileURL: "https://files.example.com/v2.pdf"},
	OpDeleteTemplate:       "tpl-9",
}

// ── execute ─────────────────────────────────────────────────────────────────

func TestExecute_UnknownOperation(t *testing.T) {
	tr := &fakeTransport{}
	c := newTestClient(t, tr)

	_, err := c.Execute(context.Background(), "getEverything", nil)

	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Zero(t, tr.count())
}

func TestExecute_InvalidArgumentsSendNothing(t *testing.T) {
	tr := &fakeTransport{}
	c := newTestClient(t, tr)

	_, err := c.Execute(context.Background(), OpUpdateTenant, models.NewTenant{Name: "x"})

	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Zero(t, tr.count())
}

func TestExecute_LabelsContextWithOperation(t *testing.T) {
	tr := &fakeTransport{}
	c := newTestClient(t, tr)

	_, err := c.Execute(context.Background(), OpGetTemplateByID, "tpl-1")
	require.NoError(t, err)

	assert.Equal(t, []string{OpGetTemplateByID}, tr.ops)
}

func TestExecute_EverySampleBuilds(t *testing.T) {
	reg, err := NewDefaultRegistry("")
	require.NoError(t, err)

	for _, name := range reg.Names() {
		args, ok := sampleArgs[name]
		require.True(t, ok, "missing sample for %s", name)

		op, _ := reg.Lookup(name)
		_, err := op.Build(args)
		assert.NoError(t, err, name)
	}
}

// For every mutation tagged T, a successful call marks every cached query
// result tagged T stale, whatever the arguments.
func TestMutations_InvalidateEveryQueryOfTheirTags(t *testing.T) {
	reg, err := NewDefaultRegistry("")
	require.NoError(t, err)

	var queries, mutations []Operation
	for _, name := range reg.Names() {
		op, _ := reg.Lookup(name)
		if op.Kind == Query {
			queries = append(queries, op)
		} else if len(op.Invalidates) > 0 {
			mutations = append(mutations, op)
		}
	}
	require.Len(t, mutations, 9)

	for _, mut := range mutations {
		t.Run(mut.Name, func(t *testing.T) {
			tr := &fakeTransport{respond: func(models.Request) ([]byte, error) { return []byte(`[]`), nil }}
			c := newTestClient(t, tr)
			ctx := context.Background()

			// warm every query, with two argument sets each where possible
			for _, q := range queries {
				_, err := c.Execute(ctx, q.Name, sampleArgs[q.Name])
				require.NoError(t, err)
				if _, isList := sampleArgs[q.Name].(models.ListParams); isList {
					_, err = c.Execute(ctx, q.Name, models.ListParams{Page: 7})
					require.NoError(t, err)
				}
			}

			_, err := c.Execute(ctx, mut.Name, sampleArgs[mut.Name])
			require.NoError(t, err)

			for _, tag := range []Tag{TagTenants, TagSuperAdmin, TagTemplate} {
				wantStale := false
				for _, inv := range mut.Invalidates {
					wantStale = wantStale || inv == tag
				}
				keys := c.Cache().Keys(tag)
				require.NotEmpty(t, keys)
				for _, key := range keys {
					stale, cached := c.Cache().Stale(key)
					require.True(t, cached)
					assert.Equal(t, wantStale, stale, "%s after %s", key, mut.Name)
				}
			}
		})
	}
}

func TestMutation_FailureDoesNotInvalidate(t *testing.T) {
	tr := &fakeTransport{}
	c := newTestClient(t, tr)
	ctx := context.Background()

	_, err := c.GetAllTenants(ctx, models.ListParams{})
	require.NoError(t, err)

	tr.respond = func(models.Request) ([]byte, error) {
		return nil, &adapter.APIError{StatusCode: http.StatusConflict, Message: "Tenant already exists"}
	}
	_, err = c.CreateTenant(ctx, models.NewTenant{Name: "Acme"})
	assert.ErrorIs(t, err, adapter.ErrConflict)

	stale, cached := c.Cache().Stale(CacheKey{Operation: OpGetAllTenants, Method: http.MethodGet, URL: "/tenants/all/?page=1&limit=5"})
	assert.True(t, cached)
	assert.False(t, stale)
}

func TestMutation_AbandonedCallerStillInvalidates(t *testing.T) {
	release := make(chan struct{})
	tr := &fakeTransport{}
	c := newTestClient(t, tr)

	_, err := c.GetAllTenants(context.Background(), models.ListParams{})
	require.NoError(t, err)

	tr.respond = func(models.Request) ([]byte, error) {
		<-release
		return []byte(`{"id":"t1","name":"NewName"}`), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.UpdateTenant(ctx, models.TenantUpdate{ID: "t1", Name: "NewName"})
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	key := CacheKey{Operation: OpGetAllTenants, Method: http.MethodGet, URL: "/tenants/all/?page=1&limit=5"}
	assert.Eventually(t, func() bool {
		stale, _ := c.Cache().Stale(key)
		return stale
	}, time.Second, 5*time.Millisecond)
}

func TestExecute_EmptyBodyDecodesToZero(t *testing.T) {
	tr := &fakeTransport{respond: func(models.Request) ([]byte, error) { return nil, nil }}
	c := newTestClient(t, tr)

	tenant, err := c.UpdateTenant(context.Background(), models.TenantUpdate{ID: "t1", Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, models.Tenant{}, tenant)

	resp, err := c.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Empty(t, resp.Message)
}

func TestExecute_DecodeError(t *testing.T) {
	tr := &fakeTransport{respond: func(models.Request) ([]byte, error) { return []byte(`{"id":`), nil }}
	c := newTestClient(t, tr)

	_, err := c.GetTemplateByID(context.Background(), "tpl-1")
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestExecute_TransportErrorIsDistinct(t *testing.T) {
	netErr := &adapter.TransportError{Method: http.MethodGet, URL: "/tenants", Err: errors.New("connection refused")}
	tr := &fakeTransport{respond: func(models.Request) ([]byte, error) { return nil, netErr }}
	c := newTestClient(t, tr)

	_, err := c.GetAllTenants(context.Background(), models.ListParams{})

	require.Error(t, err)
	assert.True(t, adapter.IsTransportError(err))
	_, isAPI := adapter.IsAPIError(err)
	assert.False(t, isAPI)
	assert.Equal(t, 0, c.Cache().Len())
}

func TestResetCache(t *testing.T) {
	tr := &fakeTransport{}
	c := newTestClient(t, tr)

	_, err := c.GetTemplates(context.Background(), models.ListParams{})
	require.NoError(t, err)
	require.Equal(t, 1, c.Cache().Len())

	c.ResetCache()
	assert.Equal(t, 0, c.Cache().Len())
}

// ── end to end against an HTTP server ───────────────────────────────────────

type fakeAPI struct {
	tenantListHits atomic.Int32
	lastQuery      atomic.Value
	authHeaders    chan string
}

func (f *fakeAPI) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if f.authHeaders != nil {
				f.authHeaders <- req.Header.Get("Authorization")
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var creds models.Credentials
		_ = json.NewDecoder(req.Body).Decode(&creds)
		if creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid credentials", "statusCode": 401})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"token": "abc"})
	})
	r.Get("/tenants/all/", func(w http.ResponseWriter, req *http.Request) {
		hit := f.tenantListHits.Add(1)
		f.lastQuery.Store(req.URL.RawQuery)
		name := "Acme"
		if hit > 1 {
			name = "NewName"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  []models.Tenant{{ID: "t1", Name: name}},
			"total": 6,
		})
	})
	r.Patch("/tenants/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(req.Body).Decode(&body)
		if _, hasID := body["id"]; hasID {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": []string{"property id should not exist"}})
			return
		}
		writeJSON(w, http.StatusOK, models.Tenant{ID: chi.URLParam(req, "id"), Name: body["name"].(string)})
	})
	r.Delete("/tenants/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/super-admin", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal Server Error"})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newE2EClient(t *testing.T, srv *httptest.Server, sessions store.SessionStore) *Client {
	t.Helper()
	tr, err := adapter.NewHTTPTransport(
		config.ClientAdapter{BaseURL: srv.URL},
		store.NewTokenSource(sessions, logger.Nop()),
		logger.Nop(),
	)
	require.NoError(t, err)
	return newTestClient(t, tr)
}

func TestEndToEnd_TenantsListInvalidatedByUpdate(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.routes())
	defer srv.Close()

	c := newE2EClient(t, srv, store.NewMemorySessionStore())
	ctx := context.Background()
	params := models.ListParams{Page: 2, Limit: 5, Name: "Acme"}

	page, err := c.GetAllTenants(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "page=2&limit=5&name=Acme", api.lastQuery.Load())
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Acme", page.Items[0].Name)
	require.NotNil(t, page.Total)
	assert.Equal(t, 6, *page.Total)

	key := CacheKey{Operation: OpGetAllTenants, Method: http.MethodGet, URL: "/tenants/all/?page=2&limit=5&name=Acme"}
	stale, cached := c.Cache().Stale(key)
	require.True(t, cached)
	assert.False(t, stale)
	assert.Equal(t, []CacheKey{key}, c.Cache().Keys(TagTenants))

	// served from cache
	_, err = c.GetAllTenants(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.tenantListHits.Load())

	updated, err := c.UpdateTenant(ctx, models.TenantUpdate{ID: "t1", Name: "NewName"})
	require.NoError(t, err)
	assert.Equal(t, models.Tenant{ID: "t1", Name: "NewName"}, updated)

	stale, _ = c.Cache().Stale(key)
	assert.True(t, stale)
	assert.Equal(t, int32(1), api.tenantListHits.Load(), "invalidation is lazy")

	page, err = c.GetAllTenants(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.tenantListHits.Load())
	assert.Equal(t, "NewName", page.Items[0].Name)
}

func TestEndToEnd_AuthorizationHeader(t *testing.T) {
	api := &fakeAPI{authHeaders: make(chan string, 4)}
	srv := httptest.NewServer(api.routes())
	defer srv.Close()

	sessions := store.NewMemorySessionStore()
	c := newE2EClient(t, srv, sessions)
	ctx := context.Background()

	require.NoError(t, c.DeleteTenant(ctx, "t1"))
	assert.Empty(t, <-api.authHeaders)

	require.NoError(t, sessions.Set(ctx, store.TokenKey, "abc"))
	require.NoError(t, c.DeleteTenant(ctx, "t1"))
	assert.Equal(t, "Bearer abc", <-api.authHeaders)
}

func TestEndToEnd_ErrorMessages(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.routes())
	defer srv.Close()

	c := newE2EClient(t, srv, store.NewMemorySessionStore())
	ctx := context.Background()

	_, err := c.Login(ctx, models.Credentials{Email: "root@example.com", Password: "wrong"})
	apiErr, ok := adapter.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = c.GetAllEmployees(ctx, models.ListParams{})
	apiErr, ok = adapter.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, adapter.FallbackErrorMessage, apiErr.Message)

	resp, err := c.Login(ctx, models.Credentials{Email: "root@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.BearerToken())
}
