// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lti-service/internal/config"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

var _ RegistryInterface = (*Registry)(nil)

// Registry finds the registration of an issuer. Stored platforms keep their
// identity, the platforms file wins for the settings operators may rotate.
type Registry struct {
	storage StorageInterface
	static  map[string]*types.Platform

	tracer tracing.TracingInterface
}

func (r *Registry) FindRegistration(ctx context.Context, issuer string) (*types.Platform, error) {
	ctx, span := r.tracer.Start(ctx, "launch.Registry.FindRegistration")
	defer span.End()

	if issuer == "" {
		return nil, lti.ErrUnknownIssuer
	}

	static, ok := r.static[issuer]

	// without storage only the platforms file is consulted
	if r.storage != nil {
		p, err := r.storage.GetPlatformByIssuer(ctx, issuer)
		if err == nil {
			if ok {
				p.ApplyConfig(static)
			}
			return p, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up platform: %w", err)
		}
	}

	if ok {
		registration := *static
		return &registration, nil
	}

	return nil, lti.ErrUnknownIssuer
}

func NewRegistry(s StorageInterface, registrations []config.PlatformRegistration, tracer tracing.TracingInterface) *Registry {
	r := new(Registry)

	r.storage = s
	r.static = make(map[string]*types.Platform, len(registrations))
	for i := range registrations {
		r.static[registrations[i].Issuer] = registrations[i].Platform()
	}

	r.tracer = tracer

	return r
}
