// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"
	appName          = "lti-service"
)

// SecurityLogger writes OWASP style security events, one event name per call.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, level string, fields ...zap.Field) {
	fields = append(fields,
		zap.String(securityEventKey, name),
		zap.String("appid", appName),
		zap.String("type", "security"),
		zap.String("level", level),
	)
	s.l.Info(name, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "WARN")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "WARN")
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event("authn_login_fail:"+subject, "WARN", zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.event("authz_fail:"+subject+","+resource, "CRITICAL")
}

func (s *SecurityLogger) ReplayDetected(issuer string) {
	s.event("authn_token_reuse:"+issuer, "CRITICAL")
}

func (s *SecurityLogger) KeyGenerated(kid string) {
	s.event("crypto_key_generated:"+kid, "WARN")
}
