// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/pkg/lti"
)

const (
	stateCookieName   = "lti_state"
	stateCookieMaxAge = 5 * time.Minute
)

type API struct {
	service    ServiceInterface
	negotiator NegotiatorInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterEndpoints mounts login and launch, middlewares wrap both routes.
func (a *API) RegisterEndpoints(mux chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r := mux.With(middlewares...)

	r.Get("/login", a.login)
	r.Post("/login", a.login)
	r.Post("/launch", a.launch)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "launch.API.login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		http.Error(w, lti.PublicMessage(lti.ErrBadRequest), http.StatusBadRequest)
		return
	}

	resp, err := a.service.Login(ctx, &LoginRequest{
		Issuer:         r.FormValue("iss"),
		LoginHint:      r.FormValue("login_hint"),
		TargetLinkURI:  r.FormValue("target_link_uri"),
		LTIMessageHint: r.FormValue("lti_message_hint"),
		ClientID:       r.FormValue("client_id"),
		DeploymentID:   r.FormValue("lti_deployment_id"),
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    resp.State,
		Path:     "/",
		MaxAge:   int(stateCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	http.Redirect(w, r, resp.RedirectURL, http.StatusFound)
}

func (a *API) launch(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "launch.API.launch")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		http.Error(w, lti.PublicMessage(lti.ErrBadRequest), http.StatusBadRequest)
		return
	}

	req := &LaunchRequest{
		IDToken: r.PostFormValue("id_token"),
		State:   r.PostFormValue("state"),
	}
	if c, err := r.Cookie(stateCookieName); err == nil {
		req.CookieState = c.Value
	}

	result, err := a.service.Launch(ctx, req)
	if err != nil {
		a.fail(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	switch msg := result.Message.(type) {
	case *lti.ResourceLinkLaunch:
		http.Redirect(w, r, result.RedirectURL, http.StatusFound)
	case *lti.DeepLinkingRequest:
		if err := a.negotiator.RenderSelection(ctx, w, result.Session, msg); err != nil {
			a.logger.Errorf("failed to render content selection: %v", err)
			http.Error(w, lti.PublicMessage(err), http.StatusInternalServerError)
		}
	default:
		a.logger.Errorf("unhandled launch message %T", msg)
		http.Error(w, lti.PublicMessage(nil), http.StatusInternalServerError)
	}
}

// fail answers with a generic message, details only go to the debug log.
func (a *API) fail(w http.ResponseWriter, err error) {
	status := lti.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		a.logger.Errorf("launch request failed: %v", err)
	} else {
		a.logger.Debugf("launch request rejected: %v", err)
	}

	http.Error(w, lti.PublicMessage(err), status)
}

func NewAPI(service ServiceInterface, negotiator NegotiatorInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.negotiator = negotiator

	a.tracer = tracer
	a.logger = logger

	return a
}
