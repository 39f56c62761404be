// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/session"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/internal/tui"
	"github.com/MKhiriev/go-task-manager/internal/workers"
	"github.com/MKhiriev/go-task-manager/models"
)

var _ Client = (*App)(nil)

// App owns every long-lived component of the client.
type App struct {
	storages *store.ClientStorages
	http     *adapter.Client
	cache    *cache.Cache
	services *service.Services
	session  *session.Session
	router   *router.Router
	workers  *workers.Workers
	ui       UI

	logger *logger.Logger
}

// NewApp builds the client from cfg. The storage falls back to memory when
// the database cannot be opened, so only an unusable API URL is fatal.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	log.Info().Msg("creating client app...")

	storages := store.NewClientStorages(cfg.Storage, log)

	httpClient, err := adapter.NewClient(cfg.Adapter, storages.Tokens, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create http client: %w", err)
	}

	c := cache.New(log)
	services := service.NewServices(httpClient, storages.Tokens, c, log)
	sess := session.New(services.Auth, c, services.Notifier, log)
	r := router.New(sess, log)

	// a 401 anywhere ends the session: credential, cache and user go together
	httpClient.OnUnauthorized(sess.HandleUnauthorized)
	httpClient.SetNavigator(r)
	sess.SetNavigator(r)
	sess.Subscribe(func(session.Snapshot) { r.Refresh() })

	app := &App{
		storages: storages,
		http:     httpClient,
		cache:    c,
		services: services,
		session:  sess,
		router:   r,
		workers:  workers.NewWorkers(cfg.Workers, c, log),
		logger:   log,
	}

	app.ui = tui.New(tui.Deps{
		Session:   sess,
		Router:    r,
		Auth:      services.Auth,
		Tasks:     services.Tasks,
		Notes:     services.Notifier.C(),
		PageSize:  cfg.App.PageSize,
		BuildInfo: buildInfo,
		Logger:    log,
	})

	return app, nil
}

// Run starts the background workers and shows the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing storage")
		}
	}()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
