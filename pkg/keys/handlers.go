// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package keys

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
)

const jwksCacheMaxAge = 3600

type API struct {
	manager ManagerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/jwks", a.jwks)
	mux.Get("/.well-known/jwks.json", a.jwks)
}

func (a *API) jwks(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "keys.API.jwks")
	defer span.End()

	set, err := a.manager.GetPublicKeySet(ctx)
	if err != nil {
		a.logger.Errorf("failed to get public key set: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(set)
	if err != nil {
		a.logger.Errorf("failed to encode JWKS: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", jwksCacheMaxAge))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(data)
}

func NewAPI(manager ManagerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.manager = manager

	a.tracer = tracer
	a.logger = logger

	return a
}
