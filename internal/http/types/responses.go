// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/lti-service/pkg/lti"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to its status and a message that never carries
// token or claim contents.
func WriteError(w http.ResponseWriter, err error) int {
	status := lti.HTTPStatus(err)
	WriteJSON(w, status, &ErrorResponse{Status: status, Message: lti.PublicMessage(err)})
	return status
}

// WriteStatus answers with a fixed status and message.
func WriteStatus(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, &ErrorResponse{Status: status, Message: message})
}
