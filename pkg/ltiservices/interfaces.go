// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ltiservices

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

//go:generate mockgen -build_flags=--mod=mod -package ltiservices -destination ./mock_ltiservices.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the ltiservices package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetLaunchSession(ctx context.Context, id string) (*types.LaunchSession, error)
	CreateGrade(ctx context.Context, g *types.Grade) (*types.Grade, error)
	UpdateGradeStatus(ctx context.Context, id string, status types.GradeStatus) error
}

type RegistryInterface interface {
	FindRegistration(ctx context.Context, issuer string) (*types.Platform, error)
}

type SignerInterface interface {
	Sign(ctx context.Context, claims jwt.Claims) (string, error)
}

// ClientInterface talks to the platform Assignment and Grade Services and
// Names and Role Provisioning Services.
type ClientInterface interface {
	GetServiceAccessToken(ctx context.Context, claims *lti.LaunchClaims, scopes []string) (string, error)
	SubmitGrade(ctx context.Context, claims *lti.LaunchClaims, score *ScoreSubmission) error
	GetLineItems(ctx context.Context, claims *lti.LaunchClaims) []LineItem
	GetContextMembership(ctx context.Context, claims *lti.LaunchClaims) *MembershipContainer
}

type ServiceInterface interface {
	ProcessAssessmentCompletion(ctx context.Context, sessionID string, claims *lti.LaunchClaims, scores AssessmentScores) (*CompletionResult, error)
}
