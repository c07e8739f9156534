// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/mock"
	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/internal/validators"
	"github.com/MKhiriev/saas-admin/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeInvalidator struct {
	tags []api.Tag
}

func (f *fakeInvalidator) Invalidate(tags ...api.Tag) int {
	f.tags = append(f.tags, tags...)
	return len(tags)
}

type dashboardDeps struct {
	tenants   *mock.MockTenantService
	employees *mock.MockEmployeeService
	templates *mock.MockTemplateService
	cache     *fakeInvalidator
}

func newTestDashboard(t *testing.T) (dashboardModel, dashboardDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := dashboardDeps{
		tenants:   mock.NewMockTenantService(ctrl),
		employees: mock.NewMockEmployeeService(ctrl),
		templates: mock.NewMockTemplateService(ctrl),
		cache:     &fakeInvalidator{},
	}
	services := &service.Services{
		AuthService:     mock.NewMockAuthService(ctrl),
		TenantService:   deps.tenants,
		EmployeeService: deps.employees,
		TemplateService: deps.templates,
	}
	return newDashboardModel(context.Background(), services, deps.cache), deps
}

func step(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	d, ok := next.(dashboardModel)
	require.True(t, ok)
	return d, cmd
}

// load delivers the list result produced by cmd.
func load(t *testing.T, m dashboardModel, cmd tea.Cmd) dashboardModel {
	t.Helper()
	m, _ = step(t, m, findMsg[listLoadedMsg](t, cmd))
	return m
}

func intPtr(n int) *int { return &n }

func tenantPage(total int, names ...string) models.Page[models.Tenant] {
	page := models.Page[models.Tenant]{Total: intPtr(total)}
	for i, name := range names {
		page.Items = append(page.Items, models.Tenant{ID: fmt.Sprintf("t%d", i+1), Name: name})
	}
	return page
}

func TestDashboard_InitialLoad(t *testing.T) {
	m, deps := newTestDashboard(t)
	ctx := context.Background()

	deps.tenants.EXPECT().List(ctx, models.ListParams{Page: 1, Limit: api.DefaultLimit}).
		Return(tenantPage(7, "Acme", "Globex"), nil)

	require.True(t, m.loading)
	m = load(t, m, m.Init())

	assert.False(t, m.loading)
	require.Len(t, m.rows, 2)
	assert.Equal(t, "t1", m.rows[0].id)

	view := m.View()
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "Page 1 of 2 (7 records)")
}

func TestDashboard_Pagination(t *testing.T) {
	m, deps := newTestDashboard(t)
	ctx := context.Background()

	gomock.InOrder(
		deps.tenants.EXPECT().List(ctx, models.ListParams{Page: 1, Limit: 5}).
			Return(tenantPage(7, "a", "b", "c", "d", "e"), nil),
		deps.tenants.EXPECT().List(ctx, models.ListParams{Page: 2, Limit: 5}).
			Return(tenantPage(7, "f", "g"), nil),
	)

	m = load(t, m, m.Init())
	m.idx = 3

	m, cmd := step(t, m, keyRight)
	assert.Equal(t, 2, m.page)
	assert.Equal(t, 0, m.idx)
	assert.True(t, m.loading)

	// the current rows stay on screen while the next page loads, and a late
	// answer for an earlier request is dropped
	stale, _ := step(t, m, listLoadedMsg{seq: 0, rows: []row{{id: "old"}}})
	assert.Equal(t, m.rows, stale.rows)
	require.Len(t, stale.rows, 5)
	assert.Equal(t, "t1", stale.rows[0].id)
	assert.True(t, stale.loading)

	m = load(t, m, cmd)
	assert.Len(t, m.rows, 2)

	// 2*5 >= 7, so there is no third page
	_, cmd = step(t, m, keyRight)
	assert.Nil(t, cmd)
}

func TestDashboard_EmptyPageStepsBack(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.page = 3
	m.loading = true

	deps.tenants.EXPECT().List(gomock.Any(), models.ListParams{Page: 2, Limit: 5}).
		Return(tenantPage(6, "f"), nil)

	m, cmd := step(t, m, listLoadedMsg{seq: m.seq, total: intPtr(6)})
	assert.Equal(t, 2, m.page)

	m = load(t, m, cmd)
	assert.Len(t, m.rows, 1)
}

func TestDashboard_Filter(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.loading = false
	m.page = 2

	deps.tenants.EXPECT().List(gomock.Any(), models.ListParams{Page: 1, Limit: 5, Name: "acme"}).
		Return(tenantPage(1, "Acme"), nil)

	m, _ = step(t, m, keyRunes("/"))
	require.True(t, m.filtering)

	m.filter.SetValue("  acme ")
	m, cmd := step(t, m, keyEnter)
	assert.False(t, m.filtering)
	assert.Equal(t, "acme", m.appliedQ)
	assert.Equal(t, 1, m.page)

	m = load(t, m, cmd)
	assert.Contains(t, m.View(), "Filter: acme")
}

func TestDashboard_SwitchTab(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.loading = false
	m.appliedQ = "acme"

	deps.templates.EXPECT().List(gomock.Any(), models.ListParams{Page: 1, Limit: api.DefaultTemplateLimit}).
		Return(models.Page[models.Template]{Items: []models.Template{{ID: "tpl1", Name: "Welcome", AttachmentFileURL: "https://cdn.example.com/w.pdf"}}}, nil)

	m, cmd := step(t, m, keyRunes("3"))
	assert.Equal(t, tabTemplates, m.tab)
	assert.Empty(t, m.appliedQ)

	m = load(t, m, cmd)
	assert.Contains(t, m.View(), "Welcome")
	assert.Contains(t, m.View(), "Page 1")

	// same tab is a no-op
	_, cmd = step(t, m, keyRunes("3"))
	assert.Nil(t, cmd)
}

func TestDashboard_TemplateDetail(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.tab = tabTemplates
	m.loading = false
	m.rows = []row{{id: "tpl1", cells: []string{"tpl1", "Welcome", ""}}}

	deps.templates.EXPECT().Get(gomock.Any(), "tpl1").
		Return(models.Template{ID: "tpl1", Name: "Welcome", AttachmentFileURL: "https://cdn.example.com/w.pdf"}, nil)

	m, cmd := step(t, m, keyEnter)
	require.True(t, m.showDetail)
	assert.True(t, m.loading)

	m, _ = step(t, m, findMsg[detailLoadedMsg](t, cmd))
	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "https://cdn.example.com/w.pdf")
	assert.Contains(t, view, "Description")

	m, _ = step(t, m, keyEsc)
	assert.False(t, m.showDetail)
}

func TestDashboard_CreateTenant(t *testing.T) {
	m, deps := newTestDashboard(t)
	ctx := context.Background()
	m.loading = false

	gomock.InOrder(
		deps.tenants.EXPECT().Create(ctx, models.NewTenant{Name: "Initech"}).
			Return(models.Tenant{ID: "t3", Name: "Initech"}, nil),
		deps.tenants.EXPECT().List(ctx, models.ListParams{Page: 1, Limit: 5}).
			Return(tenantPage(1, "Initech"), nil),
	)

	m, _ = step(t, m, keyRunes("n"))
	require.NotNil(t, m.form)
	assert.Nil(t, m.form.target)

	m.form.inputs[0].SetValue("Initech")
	m, cmd := step(t, m, keyEnter)
	assert.True(t, m.form.submitting)

	m, cmd = step(t, m, findMsg[mutationDoneMsg](t, cmd))
	assert.Nil(t, m.form)
	assert.Equal(t, "Created", m.status)

	m = load(t, m, cmd)
	assert.Len(t, m.rows, 1)
}

func TestDashboard_FormValidationError(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.loading = false

	formErr := fmt.Errorf("%w: %w", service.ErrInvalidForm,
		&validators.FieldError{Field: validators.FieldName, Err: validators.ErrEmptyName})
	deps.tenants.EXPECT().Create(gomock.Any(), models.NewTenant{Name: ""}).
		Return(models.Tenant{}, formErr)

	m, _ = step(t, m, keyRunes("n"))
	m, cmd := step(t, m, keyEnter)
	m, cmd = step(t, m, findMsg[mutationDoneMsg](t, cmd))

	assert.Nil(t, cmd)
	require.NotNil(t, m.form)
	assert.False(t, m.form.submitting)
	assert.Equal(t, validators.ErrEmptyName.Error(), m.form.errMsg)

	m, _ = step(t, m, keyEsc)
	assert.Nil(t, m.form)
}

func TestDashboard_EditEmployeeSendsChangedFields(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.tab = tabEmployees
	m.loading = false
	employee := models.Employee{ID: "e1", Name: "Ann", Email: "ann@example.com"}
	m.rows = []row{{id: "e1", cells: []string{"e1", "Ann", "ann@example.com"}, item: employee}}

	email := "ann@acme.io"
	deps.employees.EXPECT().Update(gomock.Any(), models.EmployeeUpdate{ID: "e1", Email: &email}).
		Return(models.Employee{ID: "e1", Name: "Ann", Email: email}, nil)
	deps.employees.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.Page[models.Employee]{}, nil)

	m, _ = step(t, m, keyRunes("e"))
	require.NotNil(t, m.form)
	require.NotNil(t, m.form.target)
	assert.Equal(t, []string{"Ann", "ann@example.com"}, m.form.values())

	m.form.inputs[1].SetValue(email)
	m, cmd := step(t, m, keyEnter)
	m, cmd = step(t, m, findMsg[mutationDoneMsg](t, cmd))
	assert.Equal(t, "Saved", m.status)
	assert.Nil(t, m.form)

	m = load(t, m, cmd)
	assert.False(t, m.loading)
}

func TestDashboard_Delete(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.loading = false
	m.rows = []row{{id: "t1", cells: []string{"t1", "Acme", "-"}}}

	t.Run("cancel", func(t *testing.T) {
		next, _ := step(t, m, keyRunes("d"))
		require.NotNil(t, next.confirm)
		assert.Contains(t, next.View(), `Delete "Acme"?`)

		next, cmd := step(t, next, keyRunes("n"))
		assert.Nil(t, next.confirm)
		assert.Nil(t, cmd)
	})

	t.Run("confirm", func(t *testing.T) {
		deps.tenants.EXPECT().Delete(gomock.Any(), "t1").Return(nil)
		deps.tenants.EXPECT().List(gomock.Any(), gomock.Any()).Return(tenantPage(0), nil)

		next, _ := step(t, m, keyRunes("d"))
		next, cmd := step(t, next, keyRunes("y"))
		assert.Nil(t, next.confirm)

		next, cmd = step(t, next, findMsg[mutationDoneMsg](t, cmd))
		assert.Equal(t, "Deleted", next.status)
		next = load(t, next, cmd)
		assert.Contains(t, next.View(), "No records")
	})
}

func TestDashboard_SessionExpired(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.loading = true

	m, cmd := step(t, m, listLoadedMsg{seq: m.seq, err: fmt.Errorf("%w: 401", service.ErrSessionExpired)})

	assert.True(t, m.expired)
	assert.True(t, m.logout)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDashboard_ListErrorIsShown(t *testing.T) {
	m, _ := newTestDashboard(t)

	m, cmd := step(t, m, listLoadedMsg{seq: m.seq, err: errors.New("boom")})

	assert.Nil(t, cmd)
	assert.False(t, m.logout)
	assert.Contains(t, m.View(), "Error: boom")
}

func TestDashboard_RefreshInvalidatesCurrentTag(t *testing.T) {
	m, deps := newTestDashboard(t)
	m.loading = false
	m.tab = tabEmployees

	deps.employees.EXPECT().List(gomock.Any(), models.ListParams{Page: 1, Limit: 5}).
		Return(models.Page[models.Employee]{}, nil)

	m, cmd := step(t, m, keyRunes("r"))
	assert.Equal(t, []api.Tag{api.TagSuperAdmin}, deps.cache.tags)
	assert.Equal(t, "Refreshed", m.status)
	load(t, m, cmd)
}

func TestDashboard_CopyID(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.loading = false
	m.rows = []row{{id: "t1", cells: []string{"t1", "Acme", "-"}}}

	var copied string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	m, _ = step(t, m, keyRunes("c"))
	assert.Equal(t, "t1", copied)
	assert.Equal(t, "Copied t1", m.status)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = step(t, m, keyRunes("c"))
	assert.Equal(t, "Copy failed: no clipboard", m.errMsg)
}

func TestDashboard_QuitAndLogout(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.loading = false

	quit, cmd := step(t, m, keyRunes("q"))
	assert.False(t, quit.logout)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	out, cmd := step(t, m, keyRunes("L"))
	assert.True(t, out.logout)
	assert.False(t, out.expired)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
