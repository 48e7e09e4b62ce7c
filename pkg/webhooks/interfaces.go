// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/ltiservices"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetLaunchSession(ctx context.Context, id string) (*types.LaunchSession, error)
}

// GraderInterface defines the grading operations required by the webhooks package.
// It is a subset of the ltiservices interface.
type GraderInterface interface {
	ProcessAssessmentCompletion(ctx context.Context, sessionID string, claims *lti.LaunchClaims, scores ltiservices.AssessmentScores) (*ltiservices.CompletionResult, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleAssessmentCompletion(ctx context.Context, req *AssessmentCompletion) (*AssessmentCompletionResponse, error)
}
