// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-manager/models"
)

// ErrMalformedResponse is returned when a 2xx body cannot be decoded into the
// expected shape.
var ErrMalformedResponse = errors.New("malformed response")

type authAPI struct {
	client *Client
}

// NewAuthAPI returns the [AuthAPI] over client.
func NewAuthAPI(client *Client) AuthAPI {
	return &authAPI{client: client}
}

func (a *authAPI) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	resp, err := a.client.R(ctx).
		SetBody(req).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, mapTransportError("sign up", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeUser(resp.Body()), nil
}

func (a *authAPI) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthData, error) {
	var result models.AuthResponse

	resp, err := a.client.R(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signin")
	if err != nil {
		return models.AuthData{}, mapTransportError("sign in", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthData{}, err
	}

	return result.Data, nil
}

func (a *authAPI) SignOut(ctx context.Context) error {
	resp, err := a.client.R(ctx).Post("/api/auth/signout")
	if err != nil {
		return mapTransportError("sign out", err)
	}

	return mapHTTPError(resp)
}

func (a *authAPI) CurrentUser(ctx context.Context) (models.User, error) {
	var result models.CurrentUserResponse

	resp, err := a.client.R(ctx).
		SetResult(&result).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, mapTransportError("current user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if result.Data.User == nil {
		return models.User{}, fmt.Errorf("current user: %w: missing data.user", ErrMalformedResponse)
	}

	return *result.Data.User, nil
}

// decodeUser accepts both a bare user object and the {"data":{"user":...}}
// envelope; deployments of the API differ in what sign-up returns.
func decodeUser(body []byte) models.User {
	var envelope models.CurrentUserResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data.User != nil {
		return *envelope.Data.User
	}

	var user models.User
	_ = json.Unmarshal(body, &user)
	return user
}
