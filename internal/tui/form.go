// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a vertical list of labelled inputs used for create and edit.
type formModel struct {
	title      string
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	// target is the row being edited, nil when creating.
	target *row
}

func newFormModel(title string, fields []formField, target *row) formModel {
	m := formModel{title: title, target: target}
	for i, f := range fields {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 512
		in.SetValue(f.value)
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}
		m.labels = append(m.labels, f.label)
		m.inputs = append(m.inputs, in)
	}
	return m
}

func (m formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

// update handles navigation and typing. submit reports that enter was pressed.
func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.fieldNext):
			m.setFocus(m.focus + 1)
			return m, nil, false
		case key.Matches(keyMsg, keys.fieldPrev):
			m.setFocus(m.focus - 1)
			return m, nil, false
		case key.Matches(keyMsg, keys.enter):
			return m, nil, !m.submitting
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, false
}

func (m *formModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formModel) View() string {
	width := 0
	for _, l := range m.labels {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(padRight(m.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}
