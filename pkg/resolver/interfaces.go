// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_resolver.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the resolver.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreatePlatform(ctx context.Context, p *types.Platform) (*types.Platform, error)
	GetPlatformByIssuer(ctx context.Context, issuer string) (*types.Platform, error)
	UpdatePlatformConfig(ctx context.Context, p *types.Platform) (*types.Platform, error)
	CreateContext(ctx context.Context, c *types.Context) (*types.Context, error)
	GetContext(ctx context.Context, platformID, lmsContextID string) (*types.Context, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUser(ctx context.Context, platformID, subject string) (*types.User, error)
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByPlatformID(ctx context.Context, platformID string) (*types.Tenant, error)
}

type ServiceInterface interface {
	Resolve(ctx context.Context, claims *lti.LaunchClaims, registration *types.Platform) (*LaunchContext, error)
}
