// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_db.go -source=./interfaces.go

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// DBClientInterface is what the storage layer and the admin commands need
// from the connection pool.
type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	WithTx(context.Context, func(context.Context) error) error
	Ping(context.Context) error
	Close()
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
