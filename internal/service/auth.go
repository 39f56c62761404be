// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/internal/validators"
	"github.com/MKhiriev/go-task-manager/models"
)

type authService struct {
	api       adapter.AuthAPI
	tokens    store.TokenStore
	cache     *cache.Cache
	notifier  Notifier
	validator validators.Validator
	queries   Queries

	logger *logger.Logger
}

// NewAuthService returns the [AuthService] over api.
func NewAuthService(api adapter.AuthAPI, tokens store.TokenStore, c *cache.Cache, notifier Notifier, log *logger.Logger) AuthService {
	return &authService{
		api:       api,
		tokens:    tokens,
		cache:     c,
		notifier:  notifier,
		validator: validators.NewAuthValidator(),
		queries:   DefaultQueries(),
		logger:    log,
	}
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	if !a.tokens.Has(ctx) {
		return models.User{}, ErrNoCredential
	}

	user, err := cache.Query(ctx, a.cache, cache.CurrentUserKey(), a.queries.CurrentUser, a.fetchCurrentUser)
	if err != nil {
		return models.User{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

func (a *authService) RefetchCurrentUser(ctx context.Context) (models.User, error) {
	if !a.tokens.Has(ctx) {
		return models.User{}, ErrNoCredential
	}

	a.cache.InvalidateKey(cache.CurrentUserKey())
	return a.CurrentUser(ctx)
}

func (a *authService) fetchCurrentUser(ctx context.Context) (models.User, error) {
	user, err := a.api.CurrentUser(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		a.tokens.Remove(ctx)
	}
	return user, err
}

func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	data, err := a.api.SignIn(ctx, req)
	if err != nil {
		a.notifier.Notify(Failure(ErrorMessage(err, MsgSignInFailed)))
		return models.User{}, fmt.Errorf("sign in: %w", err)
	}

	if !store.IsValidToken(data.Token) {
		a.logger.Warn().Str("func", "authService.SignIn").Msg("server returned a malformed token")
		a.notifier.Notify(Failure(MsgSignInFailed))
		return models.User{}, ErrInvalidToken
	}

	// the previous account's data must not survive into the new session
	a.cache.Clear()
	a.tokens.Set(ctx, data.Token)
	a.cache.InvalidateKey(cache.CurrentUserKey())

	if exp, ok := utils.PeekTokenExpiry(data.Token); ok {
		a.logger.Info().Str("func", "authService.SignIn").Time("expires_at", exp).Msg("signed in")
	}

	a.notifier.Notify(Success(MsgSignedIn))
	return data.User, nil
}

func (a *authService) SignUp(ctx context.Context, form models.SignUpForm) (models.User, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	user, err := a.api.SignUp(ctx, form.Request())
	if err != nil {
		a.notifier.Notify(Failure(ErrorMessage(err, MsgSignUpFailed)))
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}

	a.notifier.Notify(Success(MsgSignedUp))
	return user, nil
}

func (a *authService) SignOut(ctx context.Context) {
	if a.tokens.Has(ctx) {
		if err := a.api.SignOut(ctx); err != nil {
			a.logger.Debug().Err(err).Str("func", "authService.SignOut").Msg("server sign-out failed, clearing local session anyway")
		}
	}

	a.cache.Clear()
	a.tokens.Remove(ctx)

	a.notifier.Notify(Success(MsgSignedOut))
}

func (a *authService) HasToken(ctx context.Context) bool {
	return a.tokens.Has(ctx)
}
