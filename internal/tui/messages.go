// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/models"
)

type routeChangedMsg struct {
	location router.Location
	decision router.Decision
}

type sessionBootedMsg struct{}

type notificationMsg struct {
	note service.Notification
}

type toastExpiredMsg struct {
	id int
}

type signInDoneMsg struct {
	err error
}

type signUpDoneMsg struct {
	err error
}

type tasksLoadedMsg struct {
	page   int
	result models.TasksPage
	err    error
}

type taskToggledMsg struct {
	id  string
	err error
}

type taskDeletedMsg struct {
	id  string
	err error
}

type taskLoadedMsg struct {
	task models.Task
	err  error
}

type taskSavedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type refreshTickMsg struct{}
