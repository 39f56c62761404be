// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/internal/validators"
	"github.com/MKhiriev/go-task-manager/models"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is the iss claim of issued tokens.
const TokenIssuer = "task-manager"

// Pagination bounds of the task list.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// Backend holds all accounts and tasks. It is safe for concurrent use.
type Backend struct {
	mu      sync.RWMutex
	users   map[string]*userRecord
	byEmail map[string]string
	tasks   map[string]models.Task
	// task ids in creation order
	order []string

	signKey       string
	tokenDuration time.Duration
	bcryptCost    int

	authValidator validators.Validator
	taskValidator validators.Validator
	ids           utils.IDFunc
	now           func() time.Time

	logger *logger.Logger
}

// New returns an empty backend signing tokens with cfg.TokenSignKey.
func New(cfg config.ServerConfig, log *logger.Logger) *Backend {
	return &Backend{
		users:         make(map[string]*userRecord),
		byEmail:       make(map[string]string),
		tasks:         make(map[string]models.Task),
		signKey:       cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		bcryptCost:    bcrypt.DefaultCost,
		authValidator: validators.NewAuthValidator(),
		taskValidator: validators.NewTaskValidator(),
		ids:           utils.NewID,
		now:           time.Now,
		logger:        log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers an account. An empty role becomes User.
func (b *Backend) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if err := b.authValidator.Validate(ctx, req); err != nil {
		return models.User{}, &ValidationError{Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), b.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	email := normalizeEmail(req.Email)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, taken := b.byEmail[email]; taken {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:    b.ids(),
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Role:  req.Role,
	}
	b.users[user.ID] = &userRecord{user: user, passwordHash: hash}
	b.byEmail[email] = user.ID

	return user, nil
}

// SignIn checks the credentials and issues a bearer token.
func (b *Backend) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthData, error) {
	if err := b.authValidator.Validate(ctx, req); err != nil {
		return models.AuthData{}, &ValidationError{Err: err}
	}

	b.mu.RLock()
	rec, ok := b.users[b.byEmail[normalizeEmail(req.Email)]]
	b.mu.RUnlock()
	if !ok {
		return models.AuthData{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)); err != nil {
		return models.AuthData{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(TokenIssuer, rec.user.ID, b.tokenDuration, b.signKey)
	if err != nil {
		return models.AuthData{}, fmt.Errorf("issue token: %w", err)
	}

	return models.AuthData{Token: token, User: rec.user}, nil
}

// Authenticate resolves a bearer token to its account.
func (b *Backend) Authenticate(_ context.Context, token string) (models.User, error) {
	userID, err := utils.ValidateAndParseJWTToken(token, b.signKey, TokenIssuer)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return b.User(userID)
}

// User returns the account with id.
func (b *Backend) User(id string) (models.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return rec.user, nil
}
