// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
)

type server struct {
	http   *httpServer
	logger *logger.Logger
}

// NewServer creates the HTTP server for handler. An empty listen address
// is an error.
func NewServer(handler http.Handler, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}

	return &server{
		http:   newHTTPServer(handler, cfg, logger),
		logger: logger,
	}, nil
}

func (s *server) Addr() string {
	return s.http.server.Addr
}

func (s *server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.http.listen()
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	s.http.shutdown()
	<-listenErr
	s.logger.Info().Msg("task API stopped")
	return nil
}
