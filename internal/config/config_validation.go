// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api url %q", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.GCInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	if cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidServerConfigs)
	}

	if cfg.TokenDuration <= 0 || cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
