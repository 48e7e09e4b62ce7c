// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplinking

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var _ CatalogInterface = (*StaticCatalog)(nil)

// StaticCatalog serves content packages loaded once from configuration.
type StaticCatalog struct {
	packages []ContentPackage
}

func (c *StaticCatalog) ListContentPackages(ctx context.Context) ([]ContentPackage, error) {
	out := make([]ContentPackage, len(c.packages))
	copy(out, c.packages)
	return out, nil
}

type catalogFile struct {
	Packages []ContentPackage `yaml:"packages" validate:"dive"`
}

// LoadCatalog reads a content packages file, an empty path yields an empty catalog.
func LoadCatalog(path string) (*StaticCatalog, error) {
	if path == "" {
		return NewStaticCatalog(nil), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content packages file: %w", err)
	}

	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (*StaticCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse content packages file: %w", err)
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid content package: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Packages))
	for _, p := range f.Packages {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate content package %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return NewStaticCatalog(f.Packages), nil
}

func NewStaticCatalog(packages []ContentPackage) *StaticCatalog {
	c := new(StaticCatalog)
	c.packages = packages
	return c
}
