// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

// LaunchContext holds the durable identities a launch resolved to.
type LaunchContext struct {
	Platform *types.Platform
	Context  *types.Context
	User     *types.User
	Tenant   *types.Tenant
}

var _ ServiceInterface = (*Service)(nil)

// Service maps verified claims to rows, creating the ones that do not exist.
// Every step is idempotent by natural key and no transaction spans them, a
// partially resolved launch is completed by the next one.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Resolve(ctx context.Context, claims *lti.LaunchClaims, registration *types.Platform) (*LaunchContext, error) {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.Resolve")
	defer span.End()

	platform, err := s.ResolvePlatform(ctx, claims, registration)
	if err != nil {
		return nil, err
	}

	lc, err := s.ResolveContext(ctx, platform, claims)
	if err != nil {
		return nil, err
	}

	user, err := s.ResolveUser(ctx, platform, claims)
	if err != nil {
		return nil, err
	}

	tenant, err := s.ResolveTenant(ctx, platform)
	if err != nil {
		return nil, err
	}

	return &LaunchContext{Platform: platform, Context: lc, User: user, Tenant: tenant}, nil
}

// ResolvePlatform returns the platform row for the token issuer. An unseen
// issuer is created from its registration with the name announced in the
// tool_platform claim. A stored row whose settings drifted from the
// registration is updated in place.
func (s *Service) ResolvePlatform(ctx context.Context, claims *lti.LaunchClaims, registration *types.Platform) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.ResolvePlatform")
	defer span.End()

	p, err := s.storage.GetPlatformByIssuer(ctx, claims.Issuer)
	if err == nil {
		if registration == nil || p.SameConfig(registration) {
			return p, nil
		}

		updated, err := s.storage.UpdatePlatformConfig(ctx, registration)
		if err != nil {
			return nil, fmt.Errorf("failed to update platform configuration: %w", err)
		}

		s.logger.Infof("updated configuration of platform %s", updated.Issuer)

		return updated, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up platform: %w", err)
	}

	if registration == nil {
		return nil, lti.ErrUnknownIssuer
	}

	candidate := *registration
	candidate.Issuer = claims.Issuer
	candidate.Name = claims.PlatformName()
	// the registration client id is the one the token audience was checked against
	if candidate.ClientID == "" {
		candidate.ClientID = claims.ClientID()
	}

	p, err = s.storage.CreatePlatform(ctx, &candidate)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.storage.GetPlatformByIssuer(ctx, claims.Issuer)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}

	s.logger.Infof("registered platform %s on first launch", p.Issuer)

	return p, nil
}

// ResolveContext finds or creates the course context. Launches without a
// context claim are scoped to their deployment.
func (s *Service) ResolveContext(ctx context.Context, platform *types.Platform, claims *lti.LaunchClaims) (*types.Context, error) {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.ResolveContext")
	defer span.End()

	candidate := &types.Context{PlatformID: platform.ID}
	if claims.Context != nil && claims.Context.ID != "" {
		candidate.LMSContextID = claims.Context.ID
		candidate.Type = claims.Context.Type
		candidate.Title = claims.Context.Title
		candidate.Label = claims.Context.Label
	} else {
		candidate.LMSContextID = "deployment:" + claims.DeploymentID
	}

	c, err := s.storage.GetContext(ctx, platform.ID, candidate.LMSContextID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up context: %w", err)
	}

	c, err = s.storage.CreateContext(ctx, candidate)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.storage.GetContext(ctx, platform.ID, candidate.LMSContextID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	return c, nil
}

// ResolveUser finds or creates the user. Profiles are never overwritten,
// the values seen on the first launch are kept.
func (s *Service) ResolveUser(ctx context.Context, platform *types.Platform, claims *lti.LaunchClaims) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.ResolveUser")
	defer span.End()

	u, err := s.storage.GetUser(ctx, platform.ID, claims.Subject)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	u, err = s.storage.CreateUser(ctx, &types.User{
		PlatformID: platform.ID,
		Subject:    claims.Subject,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Name:       claims.Name,
		Email:      claims.Email,
		Roles:      claims.Roles,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.storage.GetUser(ctx, platform.ID, claims.Subject)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// ResolveTenant finds or creates the tenant owning the platform.
func (s *Service) ResolveTenant(ctx context.Context, platform *types.Platform) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.ResolveTenant")
	defer span.End()

	t, err := s.storage.GetTenantByPlatformID(ctx, platform.ID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	t, err = s.storage.CreateTenant(ctx, &types.Tenant{
		PlatformID: platform.ID,
		Name:       platform.Name,
		Domain:     hostname(platform.Issuer),
		Active:     true,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.storage.GetTenantByPlatformID(ctx, platform.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return t, nil
}

func hostname(issuer string) string {
	u, err := url.Parse(issuer)
	if err != nil || u.Hostname() == "" {
		return issuer
	}
	return u.Hostname()
}

func NewService(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
