// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/go-chi/chi/v5"
)

// queryInt returns the integer query parameter name, or 0 when it is absent
// or malformed. The backend clamps out-of-range values.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	page := h.backend.ListTasks(r.Context(), user, queryInt(r, "page"), queryInt(r, "limit"))
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	task, err := h.backend.GetTask(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, r, err, "get task failed")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createTask").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	task, err := h.backend.CreateTask(r.Context(), user, req)
	if err != nil {
		writeBackendError(w, r, err, "create task failed")
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	req.ID = chi.URLParam(r, "id")

	task, err := h.backend.UpdateTask(r.Context(), user, req)
	if err != nil {
		writeBackendError(w, r, err, "update task failed")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.backend.DeleteTask(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, r, err, "delete task failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTaskDeleted}, http.StatusOK)
}

func (h *Handler) toggleTaskStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	task, err := h.backend.ToggleStatus(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, r, err, "toggle task status failed")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}
