// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/lti-service/pkg/lti"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

// NewKeySet returns a key set fetching and caching the platform JWKS, keys
// are refetched when a token references an unknown kid.
func NewKeySet(ctx context.Context, jwksURL string, client *http.Client) oidc.KeySet {
	if client == nil {
		client = &otelHTTPClient
	}

	ctx = oidc.ClientContext(ctx, client)

	return oidc.NewRemoteKeySet(ctx, jwksURL)
}

// PeekIssuer reads iss from a token without verifying it. The value is only
// used to select which platform registration verifies the token.
func PeekIssuer(rawToken string) (string, error) {
	if rawToken == "" {
		return "", lti.ErrMissingToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return "", fmt.Errorf("%w: malformed token", lti.ErrInvalidToken)
	}

	iss, err := claims.GetIssuer()
	if err != nil || iss == "" {
		return "", errors.Join(lti.ErrInvalidToken, errors.New("token has no issuer"))
	}

	return iss, nil
}
