// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ltiservices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lti-service/internal/http/types"
	"github.com/canonical/lti-service/internal/identity"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

type API struct {
	client ClientInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the AGS and NRPS proxies. The middlewares must
// load the launch session into the request context.
func (a *API) RegisterEndpoints(mux chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r := mux.With(middlewares...)

	r.Get("/nrps/{contextId}", a.membership)
	r.Get("/lineitems/{contextId}", a.lineItems)
	r.Post("/scores/{lineitemId}", a.score)
}

// sessionClaims returns the launch claims of the request session.
func (a *API) sessionClaims(w http.ResponseWriter, r *http.Request) (*types.LaunchSession, *lti.LaunchClaims, bool) {
	session, ok := identity.SessionFromContext(r.Context())
	if !ok {
		httptypes.WriteStatus(w, http.StatusUnauthorized, "missing launch session")
		return nil, nil, false
	}

	claims, err := lti.ParseLaunchClaims(session.Claims)
	if err != nil {
		a.logger.Errorf("failed to decode claims of session %s: %v", session.ID, err)
		httptypes.WriteStatus(w, http.StatusInternalServerError, "internal error")
		return nil, nil, false
	}

	return session, claims, true
}

func sameContext(contextID string, session *types.LaunchSession, claims *lti.LaunchClaims) bool {
	if contextID == "" {
		return false
	}
	if contextID == session.ContextID {
		return true
	}
	return claims.Context != nil && claims.Context.ID == contextID
}

func (a *API) membership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "ltiservices.API.membership")
	defer span.End()

	session, claims, ok := a.sessionClaims(w, r)
	if !ok {
		return
	}

	if !sameContext(chi.URLParam(r, "contextId"), session, claims) {
		a.logger.Security().AuthzFailure(session.ID, r.URL.Path)
		httptypes.WriteStatus(w, http.StatusForbidden, "session does not belong to this context")
		return
	}

	if claims.NRPS == nil {
		httptypes.WriteStatus(w, http.StatusNotFound, "platform did not grant roster access")
		return
	}

	membership := a.client.GetContextMembership(ctx, claims)
	if membership == nil {
		httptypes.WriteError(w, lti.ErrRemoteService)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, membership)
}

func (a *API) lineItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "ltiservices.API.lineItems")
	defer span.End()

	session, claims, ok := a.sessionClaims(w, r)
	if !ok {
		return
	}

	if !sameContext(chi.URLParam(r, "contextId"), session, claims) {
		a.logger.Security().AuthzFailure(session.ID, r.URL.Path)
		httptypes.WriteStatus(w, http.StatusForbidden, "session does not belong to this context")
		return
	}

	if claims.AGS == nil || claims.AGS.LineItems == "" {
		httptypes.WriteStatus(w, http.StatusNotFound, "platform did not grant line item access")
		return
	}

	items := a.client.GetLineItems(ctx, claims)
	if items == nil {
		httptypes.WriteError(w, lti.ErrRemoteService)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, items)
}

// allowedLineItem reports whether the launch granted access to the line item.
func allowedLineItem(lineItem string, claims *lti.LaunchClaims) bool {
	if claims.AGS == nil || lineItem == "" {
		return false
	}
	if lineItem == claims.AGS.LineItem {
		return true
	}

	container := claims.AGS.LineItems
	if i := strings.IndexByte(container, '?'); i >= 0 {
		container = container[:i]
	}

	return container != "" && strings.HasPrefix(lineItem, strings.TrimSuffix(container, "/")+"/")
}

func (a *API) score(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "ltiservices.API.score")
	defer span.End()

	session, claims, ok := a.sessionClaims(w, r)
	if !ok {
		return
	}

	lineItem, err := url.PathUnescape(chi.URLParam(r, "lineitemId"))
	if err != nil {
		httptypes.WriteError(w, fmt.Errorf("%w: invalid line item", lti.ErrBadRequest))
		return
	}

	if !allowedLineItem(lineItem, claims) || !claims.AGS.HasScope(lti.ScopeScore) {
		a.logger.Security().AuthzFailure(session.ID, r.URL.Path)
		httptypes.WriteStatus(w, http.StatusForbidden, "session does not grant access to this line item")
		return
	}

	score := new(ScoreSubmission)
	if err := json.NewDecoder(r.Body).Decode(score); err != nil {
		httptypes.WriteError(w, fmt.Errorf("%w: invalid score body", lti.ErrBadRequest))
		return
	}

	score.LineItemID = lineItem
	if score.UserID == "" {
		score.UserID = claims.Subject
	}
	if score.Timestamp.IsZero() {
		score.Timestamp = time.Now().UTC()
	}
	if score.ActivityProgress == "" {
		score.ActivityProgress = ActivityProgressCompleted
	}
	if score.GradingProgress == "" {
		score.GradingProgress = GradingProgressFullyGraded
	}

	if err := a.client.SubmitGrade(ctx, claims, score); err != nil {
		if status := httptypes.WriteError(w, err); status >= http.StatusInternalServerError {
			a.logger.Errorf("score submission for session %s failed: %v", session.ID, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func NewAPI(client ClientInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.client = client

	a.tracer = tracer
	a.logger = logger

	return a
}
