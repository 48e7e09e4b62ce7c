// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/lti-service/internal/identity"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/ratelimit"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/pkg/authentication"
	"github.com/canonical/lti-service/pkg/deeplinking"
	"github.com/canonical/lti-service/pkg/keys"
	"github.com/canonical/lti-service/pkg/launch"
	"github.com/canonical/lti-service/pkg/ltiservices"
	"github.com/canonical/lti-service/pkg/metrics"
	"github.com/canonical/lti-service/pkg/status"
	"github.com/canonical/lti-service/pkg/toolconfig"
	"github.com/canonical/lti-service/pkg/webhooks"
)

// APIs groups the endpoint sets served by the tool.
type APIs struct {
	Launch      *launch.API
	DeepLinking *deeplinking.API
	Services    *ltiservices.API
	Webhooks    *webhooks.API
	Keys        *keys.API
	ToolConfig  *toolconfig.API
	Status      *status.API
}

func NewRouter(
	apis APIs,
	identityMiddleware *identity.Middleware,
	webhookAuth *authentication.Middleware,
	limiter *ratelimit.Limiter,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	apis.Status.RegisterEndpoints(router)

	apis.Keys.RegisterEndpoints(router)
	apis.ToolConfig.RegisterEndpoints(router)
	apis.Launch.RegisterEndpoints(router, limiter.Middleware)
	apis.DeepLinking.RegisterEndpoints(router, limiter.Middleware)
	apis.Services.RegisterEndpoints(router, limiter.Middleware, identityMiddleware.HTTPMiddleware)
	apis.Webhooks.RegisterEndpoints(router, webhookAuth.Authenticate())

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
