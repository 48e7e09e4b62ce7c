// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplinking

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

//go:generate mockgen -build_flags=--mod=mod -package deeplinking -destination ./mock_deeplinking.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the deeplinking package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetLaunchSession(ctx context.Context, id string) (*types.LaunchSession, error)
}

// CatalogInterface lists the content packages an instructor can pick from.
type CatalogInterface interface {
	ListContentPackages(ctx context.Context) ([]ContentPackage, error)
}

type NonceInterface interface {
	Issue(ctx context.Context) (string, error)
}

type SignerInterface interface {
	Sign(ctx context.Context, claims jwt.Claims) (string, error)
}

type ServiceInterface interface {
	RenderSelection(ctx context.Context, w http.ResponseWriter, session *types.LaunchSession, request *lti.DeepLinkingRequest) error
	Select(ctx context.Context, sessionID, packageID string) (*Response, error)
	BuildResponse(ctx context.Context, claims *lti.LaunchClaims, request *lti.DeepLinkingRequest, pkg *ContentPackage) (string, error)
}
