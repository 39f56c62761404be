// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source is merged.
const (
	DefaultAPIURL          = "https://task-manager-backend-6bjm.onrender.com"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDSN             = "task-manager.db"
	DefaultPageSize        = 5
	DefaultRefreshInterval = time.Minute
	DefaultGCInterval      = time.Minute
	DefaultServerAddress   = "localhost:8080"
	DefaultTokenDuration   = time.Hour
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client UI settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the REST API endpoint settings. It has no prefix: the
	// base URL is selected by the single API_URL variable.
	Adapter Adapter

	// Storage holds the local persistent storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds settings of the development backend.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client UI settings.
type App struct {
	// PageSize is the number of tasks shown per dashboard page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// LogFile is the path the client writes its log to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the outbound HTTP settings.
type Adapter struct {
	// APIURL is the base URL of the task-manager REST API.
	// Env: API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout is the fixed timeout of every outbound request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs the
// credential store.
type DB struct {
	// DSN is the SQLite file path (or ":memory:").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds intervals of the client's background workers.
type Workers struct {
	// RefreshInterval is how often stale queries are refreshed silently.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// GCInterval is how often idle cache entries are collected.
	// Env: WORKERS_GC_INTERVAL
	GCInterval time.Duration `env:"GC_INTERVAL"`
}

// Server holds settings of the in-memory development backend.
type Server struct {
	// HTTPAddress is the TCP address the backend listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the HMAC key used to sign issued bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is how long an issued token stays valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RequestTimeout bounds handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{PageSize: DefaultPageSize},
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
			GCInterval:      DefaultGCInterval,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			TokenDuration:  DefaultTokenDuration,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
