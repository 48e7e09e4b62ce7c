// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"crypto/subtle"
	"net/http"
	"strings"

	httptypes "github.com/canonical/lti-service/internal/http/types"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
)

// Middleware guards internal endpoints, such as the assessment completion
// hook, with a shared bearer token.
type Middleware struct {
	token []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests without the shared token. With no token
// configured every request passes.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(m.token) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.logger.Security().AuthnFailure("anonymous", "missing bearer token on "+r.URL.Path)
				m.unauthorizedResponse(w, "missing authorization header")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), m.token) != 1 {
				m.logger.Security().AuthnFailure("anonymous", "invalid bearer token on "+r.URL.Path)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	httptypes.WriteStatus(w, http.StatusUnauthorized, message)
}

func NewMiddleware(token string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		token:   []byte(token),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
