// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-manager/models"
	"github.com/go-resty/resty/v2"
)

// maxMessageLength caps the body text used as an error message when the
// server did not send JSON (e.g. an HTML error page from a proxy).
const maxMessageLength = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: extractMessage(resp.Body())}
}

func extractMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		return strings.TrimSpace(errResp.Message)
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxMessageLength || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}

func mapTransportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrNetwork, err)
}
