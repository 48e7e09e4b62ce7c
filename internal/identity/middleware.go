// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
)

// HeaderName carries the launch session id on calls made by the application.
const HeaderName = "X-LTI-Session"

type contextKey struct{}

// SessionFromContext returns the launch session loaded by the middleware.
func SessionFromContext(ctx context.Context) (*types.LaunchSession, bool) {
	s, ok := ctx.Value(contextKey{}).(*types.LaunchSession)
	return s, ok && s != nil
}

// WithSession stores a launch session in the context.
func WithSession(ctx context.Context, s *types.LaunchSession) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

type Middleware struct {
	storage StorageInterface
	ttl     time.Duration
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewMiddleware accepts launch sessions younger than ttl, a non positive ttl
// never expires them.
func NewMiddleware(s StorageInterface, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: s,
		ttl:     ttl,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) expired(session *types.LaunchSession) bool {
	return m.ttl > 0 && m.now().Sub(session.CreatedAt) > m.ttl
}

// HTTPMiddleware rejects requests without a known, unexpired launch session.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		sessionID := r.Header.Get(HeaderName)
		if sessionID == "" {
			m.logger.Security().AuthzFailure("anonymous", r.URL.Path)
			http.Error(w, "missing launch session", http.StatusUnauthorized)
			return
		}

		session, err := m.storage.GetLaunchSession(ctx, sessionID)
		if errors.Is(err, storage.ErrNotFound) {
			m.logger.Security().AuthzFailure(sessionID, r.URL.Path)
			http.Error(w, "unknown launch session", http.StatusUnauthorized)
			return
		}
		if err != nil {
			m.logger.Errorf("failed to load launch session: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if m.expired(session) {
			m.logger.Security().AuthzFailure(sessionID, r.URL.Path)
			http.Error(w, "expired launch session", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
	})
}
