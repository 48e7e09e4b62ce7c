// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lti-service/internal/http/types"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/version"
)

const readyTimeout = 2 * time.Second

type Status struct {
	Version string `json:"version"`
	// SigningKeyPersisted is false while the tool signs with a generated key,
	// platforms then lose the key set on every restart.
	SigningKeyPersisted bool `json:"signing_key_persisted"`
}

type API struct {
	dependencies map[string]PingerInterface
	keys         KeyStateInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	s := Status{Version: version.Version}
	if a.keys != nil {
		s.SigningKeyPersisted = a.keys.Persisted()
	}

	httptypes.WriteJSON(w, http.StatusOK, s)
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	for name, dep := range a.dependencies {
		if err := dep.Ping(ctx); err != nil {
			a.logger.Errorf("%s is not ready: %v", name, err)
			httptypes.WriteStatus(w, http.StatusServiceUnavailable, name+" unavailable")
			return
		}
	}

	httptypes.WriteStatus(w, http.StatusOK, "ok")
}

func NewAPI(dependencies map[string]PingerInterface, keys KeyStateInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies
	a.keys = keys

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
