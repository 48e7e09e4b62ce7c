// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package nonce

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

const (
	DefaultTTL = 5 * time.Minute

	nonceBytes = 32
)

// Generate returns 32 random bytes encoded as unpadded base64url.
func Generate() (string, error) {
	b := make([]byte, nonceBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
