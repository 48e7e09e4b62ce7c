// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

const defaultKeySetTTL = time.Hour

type cachedVerifier struct {
	verifier *oidc.IDTokenVerifier
	created  time.Time
}

var _ TokenVerifierInterface = (*PlatformVerifier)(nil)

// PlatformVerifier verifies launch tokens, keeping one verifier per platform
// registration so that each platform JWKS is fetched once per TTL.
type PlatformVerifier struct {
	mu        sync.Mutex
	verifiers map[string]cachedVerifier

	client *http.Client
	ttl    time.Duration
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *PlatformVerifier) verifierFor(platform *types.Platform) *oidc.IDTokenVerifier {
	key := platform.Issuer + "|" + platform.ClientID + "|" + platform.KeySetURL

	v.mu.Lock()
	defer v.mu.Unlock()

	if c, ok := v.verifiers[key]; ok && v.now().Sub(c.created) < v.ttl {
		return c.verifier
	}

	keySet := NewKeySet(context.Background(), platform.KeySetURL, v.client)

	verifier := oidc.NewVerifier(platform.Issuer, keySet, &oidc.Config{
		ClientID:             platform.ClientID,
		SupportedSigningAlgs: []string{oidc.RS256},
		Now:                  v.now,
	})

	v.verifiers[key] = cachedVerifier{verifier: verifier, created: v.now()}

	return verifier
}

func (v *PlatformVerifier) VerifyLaunchToken(ctx context.Context, platform *types.Platform, rawToken string) (*lti.LaunchClaims, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.PlatformVerifier.VerifyLaunchToken")
	defer span.End()

	if rawToken == "" {
		return nil, lti.ErrMissingToken
	}

	token, err := v.verifierFor(platform).Verify(ctx, rawToken)
	if err != nil {
		v.logger.Debugf("launch token verification failed: %v", err)
		v.logger.Security().AuthnFailure(platform.Issuer, "id_token verification failed")
		return nil, fmt.Errorf("%w: %v", lti.ErrInvalidToken, err)
	}

	var raw json.RawMessage
	if err := token.Claims(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to extract claims: %v", lti.ErrInvalidToken, err)
	}

	claims, err := lti.ParseLaunchClaims(raw)
	if err != nil {
		return nil, err
	}

	// With several audiences the authorized party is mandatory, when present it has to be this tool.
	if len(claims.Audience) > 1 && claims.AuthorizedParty == "" {
		v.logger.Security().AuthnFailure(platform.Issuer, "azp missing with multiple audiences")
		return nil, fmt.Errorf("%w: missing authorized party", lti.ErrInvalidToken)
	}
	if claims.AuthorizedParty != "" && claims.AuthorizedParty != platform.ClientID {
		v.logger.Security().AuthnFailure(platform.Issuer, "azp does not match client id")
		return nil, fmt.Errorf("%w: authorized party mismatch", lti.ErrInvalidToken)
	}

	if claims.Nonce == "" {
		v.logger.Security().AuthnFailure(platform.Issuer, "missing nonce")
		return nil, fmt.Errorf("%w: missing nonce", lti.ErrInvalidToken)
	}

	return claims, nil
}

func NewPlatformVerifier(client *http.Client, keySetTTL time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PlatformVerifier {
	if keySetTTL <= 0 {
		keySetTTL = defaultKeySetTTL
	}

	v := new(PlatformVerifier)
	v.verifiers = make(map[string]cachedVerifier)
	v.client = client
	v.ttl = keySetTTL
	v.now = time.Now

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
