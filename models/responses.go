// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope statuses used by the API.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MessageResponse is the generic acknowledgement body, e.g. the result of
// DELETE /api/tasks/:id.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body the API sends with any non-2xx status. Message is
// surfaced to the user verbatim when present.
type ErrorResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}
