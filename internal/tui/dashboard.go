// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Invalidator marks cached results stale. *api.Cache implements it.
type Invalidator interface {
	Invalidate(tags ...api.Tag) int
}

var writeClipboard = clipboard.WriteAll

type dashboardModel struct {
	ctx       context.Context
	auth      service.AuthService
	resources []resource
	cache     Invalidator

	tab       tab
	page      int
	filter    textinput.Model
	filtering bool
	appliedQ  string

	seq     int
	rows    []row
	total   *int
	idx     int
	loading bool
	spinner spinner.Model

	status string
	errMsg string

	form       *formModel
	confirm    *confirmModel
	details    []detailField
	showDetail bool

	logout  bool
	expired bool
}

func newDashboardModel(ctx context.Context, services *service.Services, cache Invalidator) dashboardModel {
	filter := textinput.New()
	filter.Placeholder = "filter by name"
	filter.CharLimit = 128
	filter.Width = 30

	return dashboardModel{
		ctx:  ctx,
		auth: services.AuthService,
		resources: []resource{
			tabTenants:   tenantResource{svc: services.TenantService},
			tabEmployees: employeeResource{svc: services.EmployeeService},
			tabTemplates: templateResource{svc: services.TemplateService},
		},
		cache:   cache,
		page:    1,
		filter:  filter,
		loading: true,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init loads the first tab. The model is created with loading set, so the
// request carries the initial sequence number.
func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) current() resource {
	return m.resources[m.tab]
}

func (m dashboardModel) pageSize() int {
	if m.tab == tabTemplates {
		return api.DefaultTemplateLimit
	}
	return api.DefaultLimit
}

func (m dashboardModel) selected() (row, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.idx], true
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if len(msg.rows) == 0 && m.page > 1 {
			m.page--
			return m.reload()
		}
		m.errMsg = ""
		m.rows = msg.rows
		m.total = msg.total
		m.idx = min(max(m.idx, 0), max(len(m.rows)-1, 0))
		return m, nil
	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showDetail = false
			return m.fail(msg.err)
		}
		m.details = msg.fields
		return m, nil
	case mutationDoneMsg:
		return m.handleMutationDone(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			form, cmd, _ := m.form.update(msg)
			m.form = &form
			return m, cmd
		}
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.form != nil:
		return m.updateForm(keyMsg)
	case m.filtering:
		return m.updateFilter(keyMsg)
	case m.showDetail:
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextTab):
		return m.switchTab((m.tab + 1) % tab(len(m.resources)))
	case key.Matches(msg, keys.prevTab):
		return m.switchTab((m.tab + tab(len(m.resources)) - 1) % tab(len(m.resources)))
	case msg.String() == "1", msg.String() == "2", msg.String() == "3":
		return m.switchTab(tab(msg.String()[0] - '1'))
	case key.Matches(msg, keys.prevPage):
		if m.page > 1 {
			m.page--
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.nextPage):
		if m.hasNextPage() {
			m.page++
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.filter):
		m.filtering = true
		m.filter.SetValue(m.appliedQ)
		m.filter.CursorEnd()
		return m, m.filter.Focus()
	case key.Matches(msg, keys.refresh):
		if m.cache != nil {
			m.cache.Invalidate(m.current().tag())
		}
		m.status = "Refreshed"
		return m.reload()
	case key.Matches(msg, keys.newItem):
		form := newFormModel("NEW "+strings.ToUpper(strings.TrimSuffix(m.current().title(), "s")), m.current().createFields(), nil)
		m.form = &form
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if r, ok := m.selected(); ok {
			return m.openEdit(r)
		}
	case key.Matches(msg, keys.delete):
		if r, ok := m.selected(); ok {
			m.confirm = &confirmModel{message: r.cells[1], target: r}
		}
	case key.Matches(msg, keys.copy):
		if r, ok := m.selected(); ok {
			return m.copyID(r.id)
		}
	case key.Matches(msg, keys.enter):
		if r, ok := m.selected(); ok {
			m.showDetail = true
			m.details = nil
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdDetail(r))
		}
		m.status = "Nothing selected"
	}

	return m, nil
}

func (m dashboardModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.selected()
	if !ok {
		m.showDetail = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.showDetail = false
	case key.Matches(msg, keys.copy):
		return m.copyID(r.id)
	case key.Matches(msg, keys.edit):
		m.showDetail = false
		return m.openEdit(r)
	case key.Matches(msg, keys.delete):
		m.showDetail = false
		m.confirm = &confirmModel{message: r.cells[1], target: r}
	}
	return m, nil
}

func (m dashboardModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		m.appliedQ = strings.TrimSpace(m.filter.Value())
		m.page = 1
		m.idx = 0
		return m.reload()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.form = nil
		return m, nil
	}

	form, cmd, submit := m.form.update(msg)
	if submit {
		form.submitting = true
		form.errMsg = ""
		m.form = &form
		return m, m.cmdSave(form.target, form.values())
	}
	m.form = &form
	return m, cmd
}

func (m dashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		target := m.confirm.target
		m.confirm = nil
		return m, m.cmdDelete(target.id)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m dashboardModel) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.form != nil && !errors.Is(msg.err, service.ErrSessionExpired) {
			m.form.submitting = false
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.fail(msg.err)
	}

	m.form = nil
	m.errMsg = ""
	m.status = msg.action
	// the mutation marked the list stale; reading it again refetches
	return m.reload()
}

func (m dashboardModel) switchTab(t tab) (tea.Model, tea.Cmd) {
	if t == m.tab {
		return m, nil
	}
	m.tab = t
	m.page = 1
	m.idx = 0
	m.rows = nil
	m.total = nil
	m.appliedQ = ""
	m.filter.SetValue("")
	m.status = ""
	m.errMsg = ""
	return m.reload()
}

func (m dashboardModel) openEdit(r row) (tea.Model, tea.Cmd) {
	form := newFormModel("EDIT "+strings.ToUpper(strings.TrimSuffix(m.current().title(), "s"))+": "+r.cells[1], m.current().editFields(r), &r)
	m.form = &form
	return m, textinput.Blink
}

func (m dashboardModel) copyID(id string) (tea.Model, tea.Cmd) {
	if err := writeClipboard(id); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.status = "Copied " + id
	return m, nil
}

// fail shows err, or ends the dashboard when the session is no longer valid.
func (m dashboardModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		m.expired = true
		m.logout = true
		return m, tea.Quit
	}
	m.status = ""
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m dashboardModel) hasNextPage() bool {
	if m.total != nil {
		return m.page*m.pageSize() < *m.total
	}
	return len(m.rows) >= m.pageSize()
}

func (m dashboardModel) reload() (dashboardModel, tea.Cmd) {
	m.seq++
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	res := m.current()
	seq := m.seq
	params := models.ListParams{Page: m.page, Limit: m.pageSize(), Name: m.appliedQ}

	return func() tea.Msg {
		rows, total, err := res.list(ctx, params)
		return listLoadedMsg{seq: seq, rows: rows, total: total, err: err}
	}
}

func (m dashboardModel) cmdDetail(r row) tea.Cmd {
	ctx := m.ctx
	res := m.current()

	return func() tea.Msg {
		fields, err := res.detail(ctx, r)
		return detailLoadedMsg{fields: fields, err: err}
	}
}

func (m dashboardModel) cmdSave(target *row, values []string) tea.Cmd {
	ctx := m.ctx
	res := m.current()

	return func() tea.Msg {
		if target == nil {
			return mutationDoneMsg{action: "Created", err: res.create(ctx, values)}
		}
		return mutationDoneMsg{action: "Saved", err: res.update(ctx, *target, values)}
	}
}

func (m dashboardModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	res := m.current()

	return func() tea.Msg {
		return mutationDoneMsg{action: "Deleted", err: res.delete(ctx, id)}
	}
}

func (m dashboardModel) View() string {
	if m.form != nil {
		return m.form.View()
	}
	if m.showDetail {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString("Filter: [" + m.filter.View() + "]\n\n")
	} else if m.appliedQ != "" {
		b.WriteString("Filter: " + m.appliedQ + "\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n\n")
	}

	b.WriteString(m.viewTable())
	b.WriteString("\n")
	b.WriteString(m.viewPager())

	out := renderPage("SAAS ADMIN", strings.TrimRight(b.String(), "\n"),
		"tab/1-3: section │ ←/→: page │ /: filter │ n: new │ e: edit │ d: delete │ c: copy id │ r: refresh │ enter: open │ L: logout │ q: quit")
	if m.confirm != nil {
		out += "\n\n" + m.confirm.View()
	}
	return out
}

func (m dashboardModel) viewTabs() string {
	parts := make([]string, 0, len(m.resources))
	for i, res := range m.resources {
		label := fmt.Sprintf("%d %s", i+1, res.title())
		if tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m dashboardModel) viewTable() string {
	cols := m.current().columns()

	var b strings.Builder
	b.WriteString("  ")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(" │ ")
		}
		b.WriteString(padRight(c.title, c.width))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 2+sumWidths(cols)+3*(len(cols)-1)))
	b.WriteString("\n")

	if len(m.rows) == 0 && !m.loading {
		b.WriteString("  No records\n")
		return b.String()
	}

	for i, r := range m.rows {
		if i == m.idx {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		for j, c := range cols {
			if j > 0 {
				b.WriteString(" │ ")
			}
			cell := ""
			if j < len(r.cells) {
				cell = r.cells[j]
			}
			b.WriteString(padRight(fitText(cell, c.width), c.width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashboardModel) viewPager() string {
	if m.total != nil {
		pages := (*m.total + m.pageSize() - 1) / m.pageSize()
		return fmt.Sprintf("Page %d of %d (%d records)", m.page, max(pages, 1), *m.total)
	}
	return fmt.Sprintf("Page %d", m.page)
}

func (m dashboardModel) viewDetail() string {
	title := strings.ToUpper(strings.TrimSuffix(m.current().title(), "s"))
	if m.loading {
		return renderPage(title, m.spinner.View()+" Loading...", "esc: back")
	}

	width := 0
	for _, f := range m.details {
		width = max(width, len([]rune(f.label)))
	}

	var b strings.Builder
	for _, f := range m.details {
		b.WriteString(padRight(f.label, width))
		b.WriteString(" │ ")
		b.WriteString(f.value)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ c: copy id │ e: edit │ d: delete")
}

func sumWidths(cols []column) int {
	total := 0
	for _, c := range cols {
		total += c.width
	}
	return total
}
