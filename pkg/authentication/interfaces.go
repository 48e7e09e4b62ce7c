// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

type TokenVerifierInterface interface {
	// VerifyLaunchToken checks signature, issuer, audience and expiry of a
	// launch id_token against the platform key set and returns its claims.
	VerifyLaunchToken(ctx context.Context, platform *types.Platform, rawToken string) (*lti.LaunchClaims, error)
}
