// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// resolves it through [Backend.Authenticate] and stores the user id in the
// request context under [utils.UserIDCtxKey]. Every rejection is a 401 with
// the JSON error envelope, which the client treats as an expired session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgAuthorizationRequired, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgAuthorizationRequired, http.StatusUnauthorized)
			return
		}

		user, err := h.backend.Authenticate(r.Context(), token)
		if err != nil {
			log.Err(err).Msg("rejected bearer token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the account the request was authenticated as. A
// failure writes a 401 and reports false.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return models.User{}, false
	}

	user, err := h.backend.User(userID)
	if err != nil {
		// the account was removed after the token was issued
		logger.FromRequest(r).Err(err).Str("user_id", userID).Send()
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return models.User{}, false
	}

	return user, true
}
