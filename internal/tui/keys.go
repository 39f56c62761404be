// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	logout     key.Binding
	newTask    key.Binding
	edit       key.Binding
	toggle     key.Binding
	delete     key.Binding
	copy       key.Binding
	retry      key.Binding
	buildInfo  key.Binding
	switchForm key.Binding
	status     key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	prevPage:   key.NewBinding(key.WithKeys("left", "pgup")),
	nextPage:   key.NewBinding(key.WithKeys("right", "pgdown")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("l")),
	newTask:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	toggle:     key.NewBinding(key.WithKeys("t", " ")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	retry:      key.NewBinding(key.WithKeys("r")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	switchForm: key.NewBinding(key.WithKeys("ctrl+n")),
	status:     key.NewBinding(key.WithKeys("ctrl+t")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
