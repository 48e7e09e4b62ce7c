// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// NewProvider returns a goose provider over the embedded postgres migrations.
func NewProvider(db *sql.DB, opts ...goose.ProviderOption) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Pending reports whether migrations are left to apply and the current
// schema version.
func Pending(ctx context.Context, db *sql.DB) (bool, int64, error) {
	provider, err := NewProvider(db, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return false, 0, err
	}

	pending, err := provider.HasPending(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to check pending migrations: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return pending, 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return pending, version, nil
}
