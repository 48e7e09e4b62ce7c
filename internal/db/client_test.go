// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
)

func newTestClient() *DBClient {
	logger := logging.NewNoopLogger()

	d := new(DBClient)
	d.tracer = tracing.NewNoopTracer()
	d.monitor = monitoring.NewNoopMonitor("test", logger)
	d.logger = logger

	return d
}

func TestDBClient_WithTx(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name        string
		fn          func(context.Context) error
		expectedErr error
	}{
		{name: "no statements", fn: func(context.Context) error { return nil }},
		{name: "callback error", fn: func(context.Context) error { return boom }, expectedErr: boom},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var seen *pendingTx

			err := newTestClient().WithTx(context.Background(), func(ctx context.Context) error {
				seen = pendingTxFromContext(ctx)
				return test.fn(ctx)
			})

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}
			if seen == nil {
				t.Fatal("expected a pending transaction in the callback context")
			}
			if seen.started() {
				t.Error("transaction started without any statement")
			}
		})
	}
}

func TestPendingTxFromContext(t *testing.T) {
	if pendingTxFromContext(context.Background()) != nil {
		t.Error("expected no pending transaction in a fresh context")
	}
}

func TestNewDBClientInvalidDSN(t *testing.T) {
	logger := logging.NewNoopLogger()

	_, err := NewDBClient(Config{DSN: "postgres://%zz"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	if err == nil {
		t.Fatal("expected an invalid DSN error")
	}
}
