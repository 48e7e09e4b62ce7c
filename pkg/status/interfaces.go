// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go

// PingerInterface is implemented by every dependency the readiness endpoint checks.
type PingerInterface interface {
	Ping(ctx context.Context) error
}

// KeyStateInterface reports whether the tool signing key survives a restart.
type KeyStateInterface interface {
	Persisted() bool
}
