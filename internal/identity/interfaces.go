// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/lti-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_identity.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the identity package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetLaunchSession(ctx context.Context, id string) (*types.LaunchSession, error)
}
