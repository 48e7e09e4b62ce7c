// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package keys

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

//go:generate mockgen -build_flags=--mod=mod -package keys -destination ./mock_keys.go -source=./interfaces.go

type ManagerInterface interface {
	Initialize(context.Context) error
	GetPublicKeySet(context.Context) (jwk.Set, error)
	GetSigningKey(context.Context) (*SigningKey, error)
	Sign(context.Context, jwt.Claims) (string, error)
	Persisted() bool
}
