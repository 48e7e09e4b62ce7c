// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/ltiservices"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	grader   GraderInterface
	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	grader GraderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		grader:   grader,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) HandleAssessmentCompletion(ctx context.Context, req *AssessmentCompletion) (*AssessmentCompletionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleAssessmentCompletion")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: invalid assessment completion: %v", lti.ErrBadRequest, err)
	}

	s.logger.Debugf("Handling assessment completion for session %s", req.SessionID)

	session, err := s.storage.GetLaunchSession(ctx, req.SessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown session", lti.ErrBadRequest)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load launch session: %w", err)
	}

	claims, err := lti.ParseLaunchClaims(session.Claims)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session claims: %w", err)
	}

	result, err := s.grader.ProcessAssessmentCompletion(ctx, session.ID, claims, ltiservices.AssessmentScores{
		ContentKnowledgeScore: req.ContentKnowledgeScore,
		WritingScore:          req.WritingScore,
		Comment:               req.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process assessment completion: %w", err)
	}

	s.logger.Infof("Grade %s stored for session %s, passback %s", result.Grade.ID, session.ID, result.Passback)

	return &AssessmentCompletionResponse{
		GradeID:  result.Grade.ID,
		Score:    result.Grade.Score,
		MaxScore: result.Grade.MaxScore,
		Status:   string(result.Grade.Status),
		Passback: string(result.Passback),
	}, nil
}
