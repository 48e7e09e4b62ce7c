// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/lti-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_storage.go -source=./interfaces.go

type StorageInterface interface {
	CreatePlatform(ctx context.Context, p *types.Platform) (*types.Platform, error)
	GetPlatformByIssuer(ctx context.Context, issuer string) (*types.Platform, error)
	UpdatePlatformConfig(ctx context.Context, p *types.Platform) (*types.Platform, error)
	ListPlatforms(ctx context.Context) ([]*types.Platform, error)

	CreateContext(ctx context.Context, c *types.Context) (*types.Context, error)
	GetContext(ctx context.Context, platformID, lmsContextID string) (*types.Context, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUser(ctx context.Context, platformID, subject string) (*types.User, error)

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByPlatformID(ctx context.Context, platformID string) (*types.Tenant, error)

	CreateLaunchSession(ctx context.Context, s *types.LaunchSession) (*types.LaunchSession, error)
	GetLaunchSession(ctx context.Context, id string) (*types.LaunchSession, error)

	CreateGrade(ctx context.Context, g *types.Grade) (*types.Grade, error)
	UpdateGradeStatus(ctx context.Context, id string, status types.GradeStatus) error
}
