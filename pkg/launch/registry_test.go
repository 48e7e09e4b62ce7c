// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/lti-service/internal/config"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

func TestRegistry_FindRegistration(t *testing.T) {
	static := []config.PlatformRegistration{
		{
			Issuer:        "https://moodle.example.com",
			ClientID:      "static-client",
			AuthLoginURL:  "https://moodle.example.com/auth",
			AuthTokenURL:  "https://moodle.example.com/token",
			KeySetURL:     "https://moodle.example.com/certs",
			DeploymentIDs: []string{"1"},
		},
	}

	testCases := []struct {
		name             string
		issuer           string
		setupMocks       func(*MockStorageInterface)
		expectedClientID string
		expectedErr      error
	}{
		{
			name:   "configured settings override the stored row",
			issuer: "https://moodle.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformByIssuer(gomock.Any(), "https://moodle.example.com").
					Return(&types.Platform{ID: "p-1", Issuer: "https://moodle.example.com", ClientID: "stored-client"}, nil)
			},
			expectedClientID: "static-client",
		},
		{
			name:   "stored only platform",
			issuer: "https://canvas.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformByIssuer(gomock.Any(), "https://canvas.example.com").
					Return(&types.Platform{ID: "p-2", Issuer: "https://canvas.example.com", ClientID: "stored-client"}, nil)
			},
			expectedClientID: "stored-client",
		},
		{
			name:   "falls back to configured registration",
			issuer: "https://moodle.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformByIssuer(gomock.Any(), "https://moodle.example.com").Return(nil, storage.ErrNotFound)
			},
			expectedClientID: "static-client",
		},
		{
			name:   "unknown issuer",
			issuer: "https://unknown.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformByIssuer(gomock.Any(), "https://unknown.example.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: lti.ErrUnknownIssuer,
		},
		{
			name:        "empty issuer",
			issuer:      "",
			setupMocks:  func(s *MockStorageInterface) {},
			expectedErr: lti.ErrUnknownIssuer,
		},
		{
			name:   "storage failure is not an unknown issuer",
			issuer: "https://moodle.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformByIssuer(gomock.Any(), "https://moodle.example.com").Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			r := NewRegistry(mockStorage, static, tracing.NewNoopTracer())

			p, err := r.FindRegistration(context.Background(), tc.issuer)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if tc.expectedClientID == "" {
				if err == nil || errors.Is(err, lti.ErrUnknownIssuer) {
					t.Fatalf("expected a storage error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ClientID != tc.expectedClientID {
				t.Errorf("expected client id %s, got %s", tc.expectedClientID, p.ClientID)
			}
		})
	}
}

func TestRegistry_StaticRegistrationIsCopied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetPlatformByIssuer(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(2)

	r := NewRegistry(mockStorage, []config.PlatformRegistration{{Issuer: "https://lms.example.com", ClientID: "c"}}, tracing.NewNoopTracer())

	first, err := r.FindRegistration(context.Background(), "https://lms.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.ClientID = "mutated"

	second, err := r.FindRegistration(context.Background(), "https://lms.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ClientID != "c" {
		t.Errorf("registry returned a shared registration, got client id %s", second.ClientID)
	}
	if second.Name != "https://lms.example.com" {
		t.Errorf("expected name to default to issuer, got %s", second.Name)
	}
}

func TestRegistry_WithoutStorage(t *testing.T) {
	r := NewRegistry(nil, []config.PlatformRegistration{{Issuer: "https://lms.example.com", ClientID: "c"}}, tracing.NewNoopTracer())

	p, err := r.FindRegistration(context.Background(), "https://lms.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ClientID != "c" {
		t.Errorf("expected client id c, got %s", p.ClientID)
	}

	if _, err := r.FindRegistration(context.Background(), "https://other.example.com"); !errors.Is(err, lti.ErrUnknownIssuer) {
		t.Errorf("expected unknown issuer, got %v", err)
	}
}

func TestRegistry_RotatedRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &types.Platform{
		ID:            "p-1",
		Issuer:        "https://moodle.example.com",
		Name:          "Moodle",
		ClientID:      "client-1",
		AuthLoginURL:  "https://moodle.example.com/auth",
		AuthTokenURL:  "https://moodle.example.com/token",
		KeySetURL:     "https://moodle.example.com/old-certs",
		DeploymentIDs: []string{"1"},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetPlatformByIssuer(gomock.Any(), stored.Issuer).Return(stored, nil)

	rotated := config.PlatformRegistration{
		Issuer:        stored.Issuer,
		ClientID:      "client-1",
		AuthLoginURL:  "https://moodle.example.com/auth",
		AuthTokenURL:  "https://moodle.example.com/oauth2/token",
		KeySetURL:     "https://moodle.example.com/certs",
		DeploymentIDs: []string{"1", "2"},
	}

	r := NewRegistry(mockStorage, []config.PlatformRegistration{rotated}, tracing.NewNoopTracer())

	p, err := r.FindRegistration(context.Background(), stored.Issuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID != "p-1" || p.Name != "Moodle" {
		t.Errorf("expected the stored identity to be kept, got %s %s", p.ID, p.Name)
	}
	if p.KeySetURL != rotated.KeySetURL {
		t.Errorf("expected key set url %s, got %s", rotated.KeySetURL, p.KeySetURL)
	}
	if p.AuthTokenURL != rotated.AuthTokenURL {
		t.Errorf("expected token url %s, got %s", rotated.AuthTokenURL, p.AuthTokenURL)
	}
	if len(p.DeploymentIDs) != 2 {
		t.Errorf("expected rotated deployment ids, got %v", p.DeploymentIDs)
	}
}
