// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"
)

func testPlatform() *Platform {
	return &Platform{
		ID:            "p-1",
		Issuer:        "https://canvas.example.com",
		Name:          "Canvas",
		ClientID:      "client-1",
		AuthLoginURL:  "https://canvas.example.com/auth",
		AuthTokenURL:  "https://canvas.example.com/token",
		KeySetURL:     "https://canvas.example.com/jwks",
		DeploymentIDs: []string{"dep-1"},
	}
}

func TestPlatform_SameConfig(t *testing.T) {
	tests := []struct {
		name     string
		change   func(*Platform)
		expected bool
	}{
		{name: "identical", change: func(*Platform) {}, expected: true},
		{name: "name and id are not settings", change: func(p *Platform) { p.ID = "p-2"; p.Name = "Other" }, expected: true},
		{name: "empty auth config matches the column default", change: func(p *Platform) { p.AuthConfig = json.RawMessage(`{}`) }, expected: true},
		{name: "rotated key set", change: func(p *Platform) { p.KeySetURL = "https://canvas.example.com/jwks2" }, expected: false},
		{name: "new token endpoint", change: func(p *Platform) { p.AuthTokenURL = "https://canvas.example.com/oauth" }, expected: false},
		{name: "new deployment", change: func(p *Platform) { p.DeploymentIDs = append(p.DeploymentIDs, "dep-2") }, expected: false},
		{name: "new client id", change: func(p *Platform) { p.ClientID = "client-2" }, expected: false},
		{name: "auth config", change: func(p *Platform) { p.AuthConfig = json.RawMessage(`{"k":"v"}`) }, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			other := testPlatform()
			test.change(other)

			if got := testPlatform().SameConfig(other); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestPlatform_ApplyConfig(t *testing.T) {
	p := testPlatform()

	source := &Platform{
		ID:            "ignored",
		Issuer:        "https://ignored.example.com",
		Name:          "Ignored",
		ClientID:      "client-2",
		AuthLoginURL:  "https://canvas.example.com/auth2",
		AuthTokenURL:  "https://canvas.example.com/token2",
		KeySetURL:     "https://canvas.example.com/jwks2",
		DeploymentIDs: []string{"dep-1", "dep-2"},
	}

	p.ApplyConfig(source)

	if p.ID != "p-1" || p.Issuer != "https://canvas.example.com" || p.Name != "Canvas" {
		t.Errorf("identity fields changed: %+v", p)
	}
	if !p.SameConfig(source) {
		t.Errorf("expected settings to be copied, got %+v", p)
	}

	source.DeploymentIDs[0] = "mutated"
	if p.DeploymentIDs[0] != "dep-1" {
		t.Error("deployment ids share storage with the source")
	}
}
