// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a api base url
//	-t request timeout (e.g., "10s")
//	-d local database DSN
//	-c/-config json file path with configs
//	-page-size tasks per dashboard page
//	-log-file client log file
//	-refresh-interval stale query refresh interval
//	-gc-interval cache collection interval
//	-server-address dev backend address in format [host]:[port]
//	-token-sign-key dev backend token signing key
//	-token-duration dev backend token duration (e.g., "1h")
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiURL          string
		requestTimeout  time.Duration
		databaseDSN     string
		jsonConfigPath  string
		pageSize        int
		logFile         string
		refreshInterval time.Duration
		gcInterval      time.Duration
		serverAddress   NetAddress
		tokenSignKey    string
		tokenDuration   time.Duration
	)

	fs := flag.NewFlagSet("task-manager", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiURL, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&pageSize, "page-size", 0, "Tasks per page")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Stale query refresh interval")
	fs.DurationVar(&gcInterval, "gc-interval", 0, "Cache collection interval")
	fs.Var(&serverAddress, "server-address", "Dev backend address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Dev backend token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Dev backend token duration (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PageSize: pageSize,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Workers: Workers{
			RefreshInterval: refreshInterval,
			GCInterval:      gcInterval,
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
