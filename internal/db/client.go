// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
)

// txTimeout bounds a transaction opened by WithTx, it is detached from the
// caller context so a cancelled request cannot leave it half applied.
const txTimeout = 30 * time.Second

type txKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// pendingTx is opened on the first statement run inside WithTx.
type pendingTx struct {
	db     *sql.DB
	tx     TxInterface
	cancel context.CancelFunc
	done   bool
}

func (p *pendingTx) begin() (TxInterface, error) {
	if p.tx != nil {
		return p.tx, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	p.tx = tx
	p.cancel = cancel

	return tx, nil
}

func (p *pendingTx) started() bool {
	return p.tx != nil
}

func pendingTxFromContext(ctx context.Context) *pendingTx {
	p, _ := ctx.Value(txKey{}).(*pendingTx)
	return p
}

// DBClient runs squirrel statements on a pgx pool opened through database/sql.
type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder bound to the transaction of ctx, when WithTx
// opened one, or to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if p := pendingTxFromContext(ctx); p != nil {
		tx, err := p.begin()
		if err == nil {
			return builder.RunWith(tx)
		}
		d.logger.Errorf("failed to begin transaction, running outside of it: %v", err)
	}

	return builder.RunWith(d.db)
}

// WithTx runs fn with a context whose statements share one transaction. The
// transaction is only opened if fn touches the database, it is committed when
// fn succeeds and rolled back otherwise.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	p := &pendingTx{db: d.db}

	defer func() {
		if p.started() && !p.done {
			if err := p.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to roll back transaction: %v", err)
			}
		}
		if p.cancel != nil {
			p.cancel()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, p)); err != nil {
		return err
	}

	if !p.started() {
		return nil
	}

	if err := p.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	p.done = true

	return nil
}

// Ping checks the database is reachable, used by the readiness check.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	tags := map[string]string{"component": "database"}

	if err := d.db.PingContext(ctx); err != nil {
		_ = d.monitor.SetDependencyAvailability(tags, 0)
		return err
	}

	_ = d.monitor.SetDependencyAvailability(tags, 1)
	return nil
}

// SQL exposes the underlying handle for the migration provider.
func (d *DBClient) SQL() *sql.DB {
	return d.db
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens the pool described by cfg and checks it can connect.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		// otelpgx picks up the global tracer provider set by internal/tracing
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
