// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
)

// Services groups the client services.
type Services struct {
	Auth     AuthService
	Tasks    TaskService
	Notifier *ChannelNotifier
}

// NewServices builds the services over one HTTP client, credential store and
// query cache.
func NewServices(client *adapter.Client, tokens store.TokenStore, c *cache.Cache, log *logger.Logger) *Services {
	notifier := NewChannelNotifier(16)

	return &Services{
		Auth:     NewAuthService(adapter.NewAuthAPI(client), tokens, c, notifier, log),
		Tasks:    NewTaskService(adapter.NewTasksAPI(client), c, notifier, log),
		Notifier: notifier,
	}
}
