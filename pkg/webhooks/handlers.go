// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lti-service/internal/http/types"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
)

type API struct {
	service ServiceInterface
	tracer  tracing.TracingInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router, middlewares ...func(http.Handler) http.Handler) {
	mux.With(middlewares...).Post("/webhooks/assessment-completion", a.assessmentCompletion)
}

// assessmentCompletion answers 200 once the grade is stored, the passback
// outcome is part of the body.
func (a *API) assessmentCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.assessmentCompletion")
	defer span.End()

	var req AssessmentCompletion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteStatus(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := a.service.HandleAssessmentCompletion(ctx, &req)
	if err != nil {
		if status := httptypes.WriteError(w, err); status >= http.StatusInternalServerError {
			a.logger.Errorf("assessment completion failed: %v", err)
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}
