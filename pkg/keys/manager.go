// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package keys

import (
	"context"
	"crypto"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwk"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/pkg/lti"
)

const AlgorithmRS256 = "RS256"

type Config struct {
	// KeyFile is a path to a PEM encoded RSA private key.
	KeyFile string
	// KeyPEM is a PEM encoded RSA private key, used when KeyFile is empty.
	KeyPEM string
	// AllowGenerated permits an ephemeral key when no key is configured.
	AllowGenerated bool
}

type SigningKey struct {
	KeyID     string
	Algorithm string
	Key       *rsa.PrivateKey
	Persisted bool
}

var _ ManagerInterface = (*Manager)(nil)

// Manager owns the tool signing key. The key is loaded once and read only afterwards.
type Manager struct {
	mu   sync.Mutex
	key  *SigningKey
	jwks jwk.Set

	config Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Initialize loads or generates the key, subsequent calls are no-ops.
func (m *Manager) Initialize(ctx context.Context) error {
	_, span := m.tracer.Start(ctx, "keys.Manager.Initialize")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key != nil {
		return nil
	}

	privateKey, persisted, err := m.load()
	if err != nil {
		return err
	}

	kid, set, err := publicKeySet(privateKey)
	if err != nil {
		return err
	}

	m.key = &SigningKey{
		KeyID:     kid,
		Algorithm: AlgorithmRS256,
		Key:       privateKey,
		Persisted: persisted,
	}
	m.jwks = set

	m.logger.Infof("signing key %s loaded, persisted: %t", kid, persisted)

	if !persisted {
		m.logger.Security().KeyGenerated(kid)
	}

	return nil
}

func (m *Manager) load() (*rsa.PrivateKey, bool, error) {
	if m.config.KeyFile != "" {
		data, err := os.ReadFile(m.config.KeyFile)
		if err != nil {
			return nil, false, fmt.Errorf("%w: failed to read key file: %v", lti.ErrKeyUnavailable, err)
		}

		key, err := ParsePrivateKeyPEM(data)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", lti.ErrKeyUnavailable, err)
		}
		return key, true, nil
	}

	if m.config.KeyPEM != "" {
		key, err := ParsePrivateKeyPEM([]byte(m.config.KeyPEM))
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", lti.ErrKeyUnavailable, err)
		}
		return key, true, nil
	}

	if !m.config.AllowGenerated {
		return nil, false, fmt.Errorf("%w: no key configured and key generation is disabled", lti.ErrKeyUnavailable)
	}

	key, encoded, err := GeneratePEM()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", lti.ErrKeyUnavailable, err)
	}

	// Printed once so the operator can persist it, a restart otherwise
	// invalidates every JWKS platforms have cached.
	m.logger.Warnw(
		lti.ErrKeyNotPersisted.Error(),
		"action", "store this key in SIGNING_KEY_FILE or SIGNING_KEY_PEM",
		"pem", string(encoded),
	)

	return key, false, nil
}

func publicKeySet(key *rsa.PrivateKey) (string, jwk.Set, error) {
	pub, err := jwk.Import(&key.PublicKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to import public key: %w", err)
	}

	thumbprint, err := pub.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", nil, fmt.Errorf("failed to compute key thumbprint: %w", err)
	}
	kid := base64.RawURLEncoding.EncodeToString(thumbprint)

	if err := pub.Set(jwk.KeyIDKey, kid); err != nil {
		return "", nil, err
	}
	if err := pub.Set(jwk.AlgorithmKey, AlgorithmRS256); err != nil {
		return "", nil, err
	}
	if err := pub.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return "", nil, err
	}

	set := jwk.NewSet()
	if err := set.AddKey(pub); err != nil {
		return "", nil, fmt.Errorf("failed to build key set: %w", err)
	}

	return kid, set, nil
}

func (m *Manager) current(ctx context.Context) (*SigningKey, jwk.Set, error) {
	if err := m.Initialize(ctx); err != nil {
		return nil, nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.key, m.jwks, nil
}

func (m *Manager) GetPublicKeySet(ctx context.Context) (jwk.Set, error) {
	ctx, span := m.tracer.Start(ctx, "keys.Manager.GetPublicKeySet")
	defer span.End()

	_, set, err := m.current(ctx)
	return set, err
}

func (m *Manager) GetSigningKey(ctx context.Context) (*SigningKey, error) {
	ctx, span := m.tracer.Start(ctx, "keys.Manager.GetSigningKey")
	defer span.End()

	key, _, err := m.current(ctx)
	return key, err
}

// Sign serializes claims as an RS256 JWT carrying the key id header.
func (m *Manager) Sign(ctx context.Context, claims jwt.Claims) (string, error) {
	ctx, span := m.tracer.Start(ctx, "keys.Manager.Sign")
	defer span.End()

	key, _, err := m.current(ctx)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = key.KeyID

	signed, err := token.SignedString(key.Key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Persisted reports whether the key came from configuration. It is false
// before initialization.
func (m *Manager) Persisted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.key != nil && m.key.Persisted
}

func NewManager(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Manager {
	m := new(Manager)

	m.config = cfg

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
