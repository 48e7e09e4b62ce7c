// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ltiservices

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	client  ClientInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// FinalScore is the rounded mean of the two assessment scores.
func FinalScore(scores AssessmentScores) int {
	return int(math.Round((scores.ContentKnowledgeScore + scores.WritingScore) / 2))
}

// ProcessAssessmentCompletion stores the grade of a finished session and
// passes it back when the launch granted a line item. A failed passback
// leaves the grade as submitted and is reported in the result.
func (s *Service) ProcessAssessmentCompletion(ctx context.Context, sessionID string, claims *lti.LaunchClaims, scores AssessmentScores) (*CompletionResult, error) {
	ctx, span := s.tracer.Start(ctx, "ltiservices.Service.ProcessAssessmentCompletion")
	defer span.End()

	session, err := s.storage.GetLaunchSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load launch session: %w", err)
	}

	final := FinalScore(scores)
	lineItem := s.lineItem(ctx, claims)

	grade, err := s.storage.CreateGrade(ctx, &types.Grade{
		SessionID:  session.ID,
		UserID:     session.UserID,
		LineItemID: lineItem,
		Score:      float64(final),
		MaxScore:   MaxScore,
		Status:     types.GradeStatusSubmitted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store grade: %w", err)
	}

	result := &CompletionResult{Grade: grade, Passback: PassbackSkipped}

	if lineItem == "" {
		s.logger.Infof("grade %s stored without passback, launch has no line item", grade.ID)
		return result, nil
	}

	err = s.client.SubmitGrade(ctx, claims, &ScoreSubmission{
		UserID:           claims.Subject,
		LineItemID:       lineItem,
		ScoreGiven:       float64(final),
		ScoreMaximum:     MaxScore,
		Comment:          scores.Comment,
		Timestamp:        s.now().UTC(),
		ActivityProgress: ActivityProgressCompleted,
		GradingProgress:  GradingProgressFullyGraded,
	})
	if err != nil {
		s.logger.Errorf("grade passback for session %s failed: %v", session.ID, err)
		result.Passback = PassbackFailed
		result.Err = err
		return result, nil
	}

	result.Passback = PassbackSubmitted

	// the platform already holds the score, the local row only lags behind
	if err := s.storage.UpdateGradeStatus(ctx, grade.ID, types.GradeStatusSubmittedToLMS); err != nil {
		s.logger.Errorf("grade %s was passed back but its status could not be updated: %v", grade.ID, err)
		return result, nil
	}

	grade.Status = types.GradeStatusSubmittedToLMS

	return result, nil
}

// lineItem prefers the line item granted in the launch, then one bound to
// the resource link among the context line items.
func (s *Service) lineItem(ctx context.Context, claims *lti.LaunchClaims) string {
	if claims.AGS == nil {
		return ""
	}

	if claims.AGS.LineItem != "" {
		return claims.AGS.LineItem
	}

	if claims.ResourceLink == nil || claims.AGS.LineItems == "" {
		return ""
	}

	for _, item := range s.client.GetLineItems(ctx, claims) {
		if item.ResourceLinkID == claims.ResourceLink.ID {
			return item.ID
		}
	}

	return ""
}

func NewService(s StorageInterface, client ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s
	svc.client = client

	svc.now = time.Now

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
