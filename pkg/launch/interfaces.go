// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"net/http"

	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/resolver"
)

//go:generate mockgen -build_flags=--mod=mod -package launch -destination ./mock_launch.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the launch package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetPlatformByIssuer(ctx context.Context, issuer string) (*types.Platform, error)
	CreateLaunchSession(ctx context.Context, s *types.LaunchSession) (*types.LaunchSession, error)
}

type RegistryInterface interface {
	FindRegistration(ctx context.Context, issuer string) (*types.Platform, error)
}

type NonceInterface interface {
	Issue(ctx context.Context) (string, error)
	ValidateAndConsume(ctx context.Context, nonce string) (bool, error)
}

type VerifierInterface interface {
	VerifyLaunchToken(ctx context.Context, platform *types.Platform, rawToken string) (*lti.LaunchClaims, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, claims *lti.LaunchClaims, registration *types.Platform) (*resolver.LaunchContext, error)
}

// NegotiatorInterface renders the content selection for a deep linking launch.
type NegotiatorInterface interface {
	RenderSelection(ctx context.Context, w http.ResponseWriter, session *types.LaunchSession, request *lti.DeepLinkingRequest) error
}

type ServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Launch(ctx context.Context, req *LaunchRequest) (*LaunchResult, error)
}
