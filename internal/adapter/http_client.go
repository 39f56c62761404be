// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/go-resty/resty/v2"
)

// SignInPath is where the client sends the user after an authorization
// failure.
const SignInPath = "/signin"

const requestIDHeader = "X-Request-ID"

// Client is the configured HTTP client shared by all API modules.
type Client struct {
	http   *utils.HTTPClient
	tokens store.TokenStore
	ids    utils.IDFunc

	mu           sync.RWMutex
	navigator    Navigator
	unauthorized []func()

	logger *logger.Logger
}

// NewClient constructs the HTTP client for the API at cfg.APIURL.
// It normalises and validates the base URL and installs the request and
// response middleware:
//   - every request carries "Authorization: Bearer <token>" when tokens
//     holds a credential, and an X-Request-ID;
//   - every 401 response removes the credential, runs the listeners
//     registered with OnUnauthorized and navigates to [SignInPath] unless
//     the current route is public.
func NewClient(cfg config.ClientAdapter, tokens store.TokenStore, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	c := &Client{
		http:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		ids:    utils.NewID,
		logger: log,
	}
	c.http.OnBeforeRequest(c.authorize)
	c.http.OnAfterResponse(c.handleUnauthorized)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetNavigator installs the router used for the post-401 redirect. The
// router is built after the client, so it is attached late.
func (c *Client) SetNavigator(n Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigator = n
}

// OnUnauthorized registers fn to run synchronously whenever a response has
// status 401, after the credential was removed.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorized = append(c.unauthorized, fn)
}

// R returns a new request bound to ctx.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// Timeout returns the fixed per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.GetClient().Timeout
}

func (c *Client) authorize(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(requestIDHeader, c.ids())

	token, ok := c.tokens.Get(req.Context())
	if !ok || token == "" {
		return nil
	}

	req.SetHeader("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	c.logger.Warn().
		Str("func", "Client.handleUnauthorized").
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Msg("request unauthorized, dropping credential")

	c.tokens.Remove(resp.Request.Context())

	c.mu.RLock()
	listeners := append([]func(){}, c.unauthorized...)
	navigator := c.navigator
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}

	if navigator != nil && !navigator.IsPublic() {
		navigator.Navigate(SignInPath)
	}

	return nil
}
