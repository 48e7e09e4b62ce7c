// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/canonical/lti-service/internal/types"
)

// PlatformRegistration is a statically configured LMS registration.
type PlatformRegistration struct {
	Issuer        string   `yaml:"issuer" validate:"required,url"`
	Name          string   `yaml:"name"`
	ClientID      string   `yaml:"client_id" validate:"required"`
	AuthLoginURL  string   `yaml:"auth_login_url" validate:"required,url"`
	AuthTokenURL  string   `yaml:"auth_token_url" validate:"required,url"`
	KeySetURL     string   `yaml:"key_set_url" validate:"required,url"`
	DeploymentIDs []string `yaml:"deployment_ids"`
}

// Platform converts the registration into the stored representation.
func (r *PlatformRegistration) Platform() *types.Platform {
	name := r.Name
	if name == "" {
		name = r.Issuer
	}

	return &types.Platform{
		Issuer:        r.Issuer,
		Name:          name,
		ClientID:      r.ClientID,
		AuthLoginURL:  r.AuthLoginURL,
		AuthTokenURL:  r.AuthTokenURL,
		KeySetURL:     r.KeySetURL,
		DeploymentIDs: r.DeploymentIDs,
	}
}

type platformsFile struct {
	Platforms []PlatformRegistration `yaml:"platforms" validate:"dive"`
}

// LoadPlatforms reads the registrations file, an empty path yields no registrations.
func LoadPlatforms(path string) ([]PlatformRegistration, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read platforms file: %w", err)
	}

	return ParsePlatforms(raw)
}

func ParsePlatforms(raw []byte) ([]PlatformRegistration, error) {
	var f platformsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse platforms file: %w", err)
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid platform registration: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Platforms))
	for _, p := range f.Platforms {
		if _, ok := seen[p.Issuer]; ok {
			return nil, fmt.Errorf("duplicate platform registration for issuer %s", p.Issuer)
		}
		seen[p.Issuer] = struct{}{}
	}

	return f.Platforms, nil
}
