// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/models"
)

type tab int

const (
	tabTenants tab = iota
	tabEmployees
	tabTemplates
)

type column struct {
	title string
	width int
}

// row is one line of a list screen. item holds the decoded record.
type row struct {
	id    string
	cells []string
	item  any
}

type detailField struct {
	label string
	value string
}

type formField struct {
	label  string
	value  string
	secret bool
}

// resource adapts one admin service to the dashboard's list screen.
type resource interface {
	title() string
	tag() api.Tag
	columns() []column
	list(ctx context.Context, params models.ListParams) ([]row, *int, error)
	detail(ctx context.Context, r row) ([]detailField, error)
	createFields() []formField
	editFields(r row) []formField
	create(ctx context.Context, values []string) error
	update(ctx context.Context, r row, values []string) error
	delete(ctx context.Context, id string) error
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// ── Tenants ──────────────────────────────────────────────────────────────────

type tenantResource struct {
	svc service.TenantService
}

func (tenantResource) title() string { return "Tenants" }
func (tenantResource) tag() api.Tag  { return api.TagTenants }

func (tenantResource) columns() []column {
	return []column{{"ID", 26}, {"Name", 30}, {"Created", 16}}
}

func (r tenantResource) list(ctx context.Context, params models.ListParams) ([]row, *int, error) {
	page, err := r.svc.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]row, 0, len(page.Items))
	for _, t := range page.Items {
		rows = append(rows, row{id: t.ID, cells: []string{t.ID, t.Name, formatTime(t.CreatedAt)}, item: t})
	}
	return rows, page.Total, nil
}

func (tenantResource) detail(_ context.Context, r row) ([]detailField, error) {
	t := r.item.(models.Tenant)
	return []detailField{
		{"ID", t.ID},
		{"Name", t.Name},
		{"Created", formatTime(t.CreatedAt)},
		{"Updated", formatTime(t.UpdatedAt)},
	}, nil
}

func (tenantResource) createFields() []formField {
	return []formField{{label: "Name"}}
}

func (tenantResource) editFields(r row) []formField {
	return []formField{{label: "Name", value: r.item.(models.Tenant).Name}}
}

func (r tenantResource) create(ctx context.Context, values []string) error {
	_, err := r.svc.Create(ctx, models.NewTenant{Name: values[0]})
	return err
}

func (r tenantResource) update(ctx context.Context, target row, values []string) error {
	_, err := r.svc.Update(ctx, models.TenantUpdate{ID: target.id, Name: values[0]})
	return err
}

func (r tenantResource) delete(ctx context.Context, id string) error {
	return r.svc.Delete(ctx, id)
}

// ── Employees ────────────────────────────────────────────────────────────────

type employeeResource struct {
	svc service.EmployeeService
}

func (employeeResource) title() string { return "Employees" }
func (employeeResource) tag() api.Tag  { return api.TagSuperAdmin }

func (employeeResource) columns() []column {
	return []column{{"ID", 26}, {"Name", 22}, {"Email", 28}}
}

func (r employeeResource) list(ctx context.Context, params models.ListParams) ([]row, *int, error) {
	page, err := r.svc.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]row, 0, len(page.Items))
	for _, e := range page.Items {
		rows = append(rows, row{id: e.ID, cells: []string{e.ID, e.Name, e.Email}, item: e})
	}
	return rows, page.Total, nil
}

func (employeeResource) detail(_ context.Context, r row) ([]detailField, error) {
	e := r.item.(models.Employee)
	return []detailField{
		{"ID", e.ID},
		{"Name", e.Name},
		{"Email", e.Email},
		{"Role", orDash(e.Role)},
		{"Created", formatTime(e.CreatedAt)},
	}, nil
}

func (employeeResource) createFields() []formField {
	return []formField{{label: "Name"}, {label: "Email"}, {label: "Password", secret: true}}
}

func (employeeResource) editFields(r row) []formField {
	e := r.item.(models.Employee)
	return []formField{{label: "Name", value: e.Name}, {label: "Email", value: e.Email}}
}

func (r employeeResource) create(ctx context.Context, values []string) error {
	_, err := r.svc.Create(ctx, models.NewEmployee{Name: values[0], Email: values[1], Password: values[2]})
	return err
}

// update sends only the fields that changed.
func (r employeeResource) update(ctx context.Context, target row, values []string) error {
	current := target.item.(models.Employee)
	upd := models.EmployeeUpdate{ID: target.id}
	if name := values[0]; strings.TrimSpace(name) != current.Name {
		upd.Name = &name
	}
	if email := values[1]; strings.TrimSpace(email) != current.Email {
		upd.Email = &email
	}
	_, err := r.svc.Update(ctx, upd)
	return err
}

func (r employeeResource) delete(ctx context.Context, id string) error {
	return r.svc.Delete(ctx, id)
}

// ── Templates ────────────────────────────────────────────────────────────────

type templateResource struct {
	svc service.TemplateService
}

func (templateResource) title() string { return "Templates" }
func (templateResource) tag() api.Tag  { return api.TagTemplate }

func (templateResource) columns() []column {
	return []column{{"ID", 26}, {"Name", 24}, {"Attachment", 30}}
}

func (r templateResource) list(ctx context.Context, params models.ListParams) ([]row, *int, error) {
	page, err := r.svc.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]row, 0, len(page.Items))
	for _, t := range page.Items {
		rows = append(rows, row{id: t.ID, cells: []string{t.ID, t.Name, t.AttachmentFileURL}, item: t})
	}
	return rows, page.Total, nil
}

// detail reads the template by id so the view reflects the latest version.
func (r templateResource) detail(ctx context.Context, target row) ([]detailField, error) {
	t, err := r.svc.Get(ctx, target.id)
	if err != nil {
		return nil, err
	}
	return []detailField{
		{"ID", t.ID},
		{"Name", t.Name},
		{"Description", orDash(t.Description)},
		{"Attachment", t.AttachmentFileURL},
		{"Created", formatTime(t.CreatedAt)},
	}, nil
}

func (templateResource) createFields() []formField {
	return []formField{{label: "Name"}, {label: "Description"}, {label: "Attachment URL"}}
}

func (templateResource) editFields(r row) []formField {
	return []formField{{label: "Attachment URL", value: r.item.(models.Template).AttachmentFileURL}}
}

func (r templateResource) create(ctx context.Context, values []string) error {
	_, err := r.svc.Create(ctx, models.NewTemplate{Name: values[0], Description: strings.TrimSpace(values[1]), AttachmentFileURL: values[2]})
	return err
}

func (r templateResource) update(ctx context.Context, target row, values []string) error {
	_, err := r.svc.Update(ctx, models.TemplateUpdate{ID: target.id, AttachmentFileURL: values[0]})
	return err
}

func (r templateResource) delete(ctx context.Context, id string) error {
	return r.svc.Delete(ctx, id)
}
