// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package toolconfig

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lti-service/internal/http/types"
	"github.com/canonical/lti-service/internal/logging"
)

type API struct {
	config *Configuration

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/config", a.configuration)
}

func (a *API) configuration(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, a.config)
}

func NewAPI(config *Configuration, logger logging.LoggerInterface) *API {
	a := new(API)

	a.config = config

	a.logger = logger

	return a
}
