// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	refresh   key.Binding
	filter    key.Binding
	yes       key.Binding
	no        key.Binding
	forgot    key.Binding
	fieldNext key.Binding
	fieldPrev key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l")),
	nextTab:   key.NewBinding(key.WithKeys("tab")),
	prevTab:   key.NewBinding(key.WithKeys("shift+tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	filter:    key.NewBinding(key.WithKeys("/")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	forgot:    key.NewBinding(key.WithKeys("ctrl+f")),
	fieldNext: key.NewBinding(key.WithKeys("tab", "down")),
	fieldPrev: key.NewBinding(key.WithKeys("shift+tab", "up")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
}
