// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplinking

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/pkg/lti"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router, middlewares ...func(http.Handler) http.Handler) {
	mux.With(middlewares...).Post(SelectPath, a.selectContent)
}

func (a *API) selectContent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "deeplinking.API.selectContent")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		http.Error(w, lti.PublicMessage(lti.ErrBadRequest), http.StatusBadRequest)
		return
	}

	resp, err := a.service.Select(ctx, r.PostFormValue("session"), r.PostFormValue("package_id"))
	if err != nil {
		status := lti.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			a.logger.Errorf("deep linking selection failed: %v", err)
		} else {
			a.logger.Debugf("deep linking selection rejected: %v", err)
		}
		http.Error(w, lti.PublicMessage(err), status)
		return
	}

	var buf bytes.Buffer
	if err := autoSubmitTemplate.Execute(&buf, resp); err != nil {
		a.logger.Errorf("failed to render deep linking response: %v", err)
		http.Error(w, lti.PublicMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Errorf("failed to write deep linking response: %v", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.logger = logger

	return a
}
