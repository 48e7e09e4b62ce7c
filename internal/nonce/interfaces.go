// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package nonce

import "context"

//go:generate mockgen -build_flags=--mod=mod -package nonce -destination ./mock_nonce.go -source=./interfaces.go

// NonceStore issues single use anti replay values.
type NonceStore interface {
	// Issue returns a fresh random value and records it.
	Issue(context.Context) (string, error)
	// ValidateAndConsume returns true the first time a recorded value is
	// presented within its TTL, and false for every other call.
	ValidateAndConsume(context.Context, string) (bool, error)
}
