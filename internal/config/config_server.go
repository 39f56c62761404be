// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration of the in-memory development backend.
type ServerConfig struct {
	HTTPAddress    string
	TokenSignKey   string
	TokenDuration  time.Duration
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates the development backend config from the
// merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenDuration:  cfg.Server.TokenDuration,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return serverCfg, serverCfg.validate()
}
