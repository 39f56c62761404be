// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.backend.SignUp(r.Context(), req)
	if err != nil {
		writeBackendError(w, r, err, "sign-up failed")
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user registered")

	utils.WriteJSON(w, models.CurrentUserResponse{
		Status: models.StatusSuccess,
		Data:   models.CurrentUserData{User: &user},
	}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	data, err := h.backend.SignIn(r.Context(), req)
	if err != nil {
		writeBackendError(w, r, err, "sign-in failed")
		return
	}

	log.Debug().Str("user_id", data.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{Status: models.StatusSuccess, Data: data}, http.StatusOK)
}

// signOut only acknowledges: tokens are stateless and expire on their own.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignedOut}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{
		Status: models.StatusSuccess,
		Data:   models.CurrentUserData{User: &user},
	}, http.StatusOK)
}
