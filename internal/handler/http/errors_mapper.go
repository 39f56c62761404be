// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/fakeapi"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	fakeapi.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	fakeapi.ErrInvalidToken:       {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	fakeapi.ErrUserNotFound:       {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	fakeapi.ErrEmailTaken:         {http.StatusConflict, app.MsgEmailTaken},
	fakeapi.ErrTaskNotFound:       {http.StatusNotFound, app.MsgTaskNotFound},
	fakeapi.ErrAdminOnly:          {http.StatusForbidden, app.MsgAdminOnly},
	fakeapi.ErrInvalidData:        {http.StatusBadRequest, app.MsgInvalidDataProvided},
}

// responseFromError returns the status code and message for a backend error.
// Validation failures carry the validator's message.
func responseFromError(err error) errorResponse {
	var validationErr *fakeapi.ValidationError
	if errors.As(err, &validationErr) {
		return errorResponse{http.StatusBadRequest, validationErr.Err.Error()}
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeBackendError logs err and writes the matching error envelope.
func writeBackendError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
