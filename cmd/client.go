// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lti-service/internal/db"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
)

// cliDependencies returns the instrumentation used by the admin commands,
// which only log errors and never trace.
func cliDependencies() (tracing.TracingInterface, monitoring.MonitorInterface, logging.LoggerInterface) {
	logger := logging.NewLogger("error")
	return tracing.NewNoopTracer(), monitoring.NewNoopMonitor("lti-service-cli", logger), logger
}

// getStorage opens the database named by the --dsn flag and returns the
// client, to be closed by the caller, together with the storage layer.
func getStorage(cmd *cobra.Command) (*db.DBClient, *storage.Storage, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return nil, nil, fmt.Errorf("--dsn is required")
	}

	tracer, monitor, logger := cliDependencies()

	dbClient, err := db.NewDBClient(db.Config{
		DSN:             dsn,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}, tracer, monitor, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return dbClient, storage.NewStorage(dbClient, tracer, monitor, logger), nil
}
