// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/lti-service/internal/db"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	platformColumns = []string{"id", "issuer", "name", "client_id", "auth_login_url", "auth_token_url", "key_set_url", "deployment_ids", "auth_config", "created_at"}
	contextColumns  = []string{"id", "platform_id", "lms_context_id", "type", "title", "label", "created_at"}
	userColumns     = []string{"id", "platform_id", "subject", "given_name", "family_name", "name", "email", "roles", "created_at"}
	tenantColumns   = []string{"id", "platform_id", "name", "domain", "config", "active", "created_at"}
	sessionColumns  = []string{"id", "platform_id", "context_id", "user_id", "tenant_id", "message_type", "package_id", "claims", "created_at"}
	gradeColumns    = []string{"id", "session_id", "user_id", "line_item_id", "score", "max_score", "status", "submitted_at", "updated_at"}
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func marshalJSON(v any, fallback string) (string, error) {
	switch t := v.(type) {
	case json.RawMessage:
		if len(t) == 0 {
			return fallback, nil
		}
		return string(t), nil
	case []string:
		if t == nil {
			return fallback, nil
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalStrings(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPlatform(row rowScanner) (*types.Platform, error) {
	var (
		p           types.Platform
		deployments []byte
		authConfig  []byte
	)

	if err := row.Scan(&p.ID, &p.Issuer, &p.Name, &p.ClientID, &p.AuthLoginURL, &p.AuthTokenURL, &p.KeySetURL, &deployments, &authConfig, &p.CreatedAt); err != nil {
		return nil, err
	}

	ids, err := unmarshalStrings(deployments)
	if err != nil {
		return nil, fmt.Errorf("failed to decode deployment ids: %w", err)
	}

	p.DeploymentIDs = ids
	p.AuthConfig = json.RawMessage(authConfig)

	return &p, nil
}

func (s *Storage) CreatePlatform(ctx context.Context, p *types.Platform) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePlatform")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate platform ID: %w", err)
	}

	deployments, err := marshalJSON(p.DeploymentIDs, "[]")
	if err != nil {
		return nil, fmt.Errorf("failed to encode deployment ids: %w", err)
	}

	authConfig, err := marshalJSON(p.AuthConfig, "{}")
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth config: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("platforms").
		Columns(platformColumns[:9]...).
		Values(id, p.Issuer, p.Name, p.ClientID, p.AuthLoginURL, p.AuthTokenURL, p.KeySetURL, deployments, authConfig).
		Suffix("RETURNING " + strings.Join(platformColumns, ", ")).
		QueryRowContext(ctx)

	platform, err := scanPlatform(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "platform issuer already registered")
		}
		return nil, fmt.Errorf("failed to insert platform: %w", err)
	}

	return platform, nil
}

func (s *Storage) GetPlatformByIssuer(ctx context.Context, issuer string) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlatformByIssuer")
	defer span.End()

	return s.getPlatform(ctx, sq.Eq{"issuer": issuer})
}

// UpdatePlatformConfig replaces the operator managed settings of the platform
// registered for p.Issuer, name and id are kept.
func (s *Storage) UpdatePlatformConfig(ctx context.Context, p *types.Platform) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePlatformConfig")
	defer span.End()

	deployments, err := marshalJSON(p.DeploymentIDs, "[]")
	if err != nil {
		return nil, fmt.Errorf("failed to encode deployment ids: %w", err)
	}

	authConfig, err := marshalJSON(p.AuthConfig, "{}")
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth config: %w", err)
	}

	row := s.db.Statement(ctx).
		Update("platforms").
		SetMap(map[string]any{
			"client_id":      p.ClientID,
			"auth_login_url": p.AuthLoginURL,
			"auth_token_url": p.AuthTokenURL,
			"key_set_url":    p.KeySetURL,
			"deployment_ids": deployments,
			"auth_config":    authConfig,
		}).
		Where(sq.Eq{"issuer": p.Issuer}).
		Suffix("RETURNING " + strings.Join(platformColumns, ", ")).
		QueryRowContext(ctx)

	platform, err := scanPlatform(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update platform: %w", err)
	}

	return platform, nil
}

func (s *Storage) getPlatform(ctx context.Context, where sq.Eq) (*types.Platform, error) {
	row := s.db.Statement(ctx).
		Select(platformColumns...).
		From("platforms").
		Where(where).
		QueryRowContext(ctx)

	p, err := scanPlatform(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}

	return p, nil
}

func (s *Storage) ListPlatforms(ctx context.Context) ([]*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlatforms")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(platformColumns...).
		From("platforms").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []*types.Platform
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return platforms, nil
}

func scanContext(row rowScanner) (*types.Context, error) {
	var (
		c   types.Context
		raw []byte
	)

	if err := row.Scan(&c.ID, &c.PlatformID, &c.LMSContextID, &raw, &c.Title, &c.Label, &c.CreatedAt); err != nil {
		return nil, err
	}

	t, err := unmarshalStrings(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode context type: %w", err)
	}
	c.Type = t

	return &c, nil
}

func (s *Storage) CreateContext(ctx context.Context, c *types.Context) (*types.Context, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContext")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate context ID: %w", err)
	}

	contextType, err := marshalJSON(c.Type, "[]")
	if err != nil {
		return nil, fmt.Errorf("failed to encode context type: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("contexts").
		Columns(contextColumns[:6]...).
		Values(id, c.PlatformID, c.LMSContextID, contextType, c.Title, c.Label).
		Suffix("RETURNING " + strings.Join(contextColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanContext(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "context already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "platform does not exist")
		}
		return nil, fmt.Errorf("failed to insert context: %w", err)
	}

	return created, nil
}

func (s *Storage) GetContext(ctx context.Context, platformID, lmsContextID string) (*types.Context, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetContext")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(contextColumns...).
		From("contexts").
		Where(sq.Eq{"platform_id": platformID, "lms_context_id": lmsContextID}).
		QueryRowContext(ctx)

	c, err := scanContext(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get context: %w", err)
	}

	return c, nil
}

func scanUser(row rowScanner) (*types.User, error) {
	var (
		u   types.User
		raw []byte
	)

	if err := row.Scan(&u.ID, &u.PlatformID, &u.Subject, &u.GivenName, &u.FamilyName, &u.Name, &u.Email, &raw, &u.CreatedAt); err != nil {
		return nil, err
	}

	roles, err := unmarshalStrings(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode roles: %w", err)
	}
	u.Roles = roles

	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	roles, err := marshalJSON(u.Roles, "[]")
	if err != nil {
		return nil, fmt.Errorf("failed to encode roles: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns(userColumns[:8]...).
		Values(id, u.PlatformID, u.Subject, u.GivenName, u.FamilyName, u.Name, u.Email, roles).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "user already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "platform does not exist")
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (s *Storage) GetUser(ctx context.Context, platformID, subject string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"platform_id": platformID, "subject": subject}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func scanTenant(row rowScanner) (*types.Tenant, error) {
	var (
		t   types.Tenant
		raw []byte
	)

	if err := row.Scan(&t.ID, &t.PlatformID, &t.Name, &t.Domain, &raw, &t.Active, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Config = json.RawMessage(raw)

	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	config, err := marshalJSON(t.Config, "{}")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tenant config: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns(tenantColumns[:6]...).
		Values(id, t.PlatformID, t.Name, t.Domain, config, t.Active).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "tenant already exists for platform")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "platform does not exist")
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenantByPlatformID(ctx context.Context, platformID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByPlatformID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"platform_id": platformID}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func scanSession(row rowScanner) (*types.LaunchSession, error) {
	var (
		ls  types.LaunchSession
		raw []byte
	)

	if err := row.Scan(&ls.ID, &ls.PlatformID, &ls.ContextID, &ls.UserID, &ls.TenantID, &ls.MessageType, &ls.PackageID, &raw, &ls.CreatedAt); err != nil {
		return nil, err
	}
	ls.Claims = json.RawMessage(raw)

	return &ls, nil
}

// CreateLaunchSession stores a session, the ID is kept when the caller provides one.
func (s *Storage) CreateLaunchSession(ctx context.Context, ls *types.LaunchSession) (*types.LaunchSession, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLaunchSession")
	defer span.End()

	id := ls.ID
	if id == "" {
		id = uuid.NewString()
	}

	claims, err := marshalJSON(ls.Claims, "{}")
	if err != nil {
		return nil, fmt.Errorf("failed to encode claims: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("launch_sessions").
		Columns(sessionColumns[:8]...).
		Values(id, ls.PlatformID, ls.ContextID, ls.UserID, ls.TenantID, ls.MessageType, ls.PackageID, claims).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanSession(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "launch session references missing entities")
		}
		return nil, fmt.Errorf("failed to insert launch session: %w", err)
	}

	return created, nil
}

func (s *Storage) GetLaunchSession(ctx context.Context, id string) (*types.LaunchSession, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLaunchSession")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(sessionColumns...).
		From("launch_sessions").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	ls, err := scanSession(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get launch session: %w", err)
	}

	return ls, nil
}

func scanGrade(row rowScanner) (*types.Grade, error) {
	var (
		g      types.Grade
		status string
	)

	if err := row.Scan(&g.ID, &g.SessionID, &g.UserID, &g.LineItemID, &g.Score, &g.MaxScore, &status, &g.SubmittedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Status = types.GradeStatus(status)

	return &g, nil
}

// CreateGrade inserts a new grade row, every submission gets its own row.
func (s *Storage) CreateGrade(ctx context.Context, g *types.Grade) (*types.Grade, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGrade")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate grade ID: %w", err)
	}

	status := g.Status
	if status == "" {
		status = types.GradeStatusPending
	}

	row := s.db.Statement(ctx).
		Insert("grades").
		Columns(gradeColumns[:7]...).
		Values(id, g.SessionID, g.UserID, g.LineItemID, g.Score, g.MaxScore, string(status)).
		Suffix("RETURNING " + strings.Join(gradeColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanGrade(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "grade references missing session or user")
		}
		return nil, fmt.Errorf("failed to insert grade: %w", err)
	}

	return created, nil
}

func (s *Storage) UpdateGradeStatus(ctx context.Context, id string, status types.GradeStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateGradeStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("grades").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
