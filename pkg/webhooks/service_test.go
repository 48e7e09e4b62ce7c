// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/ltiservices"
)

func TestService_HandleAssessmentCompletion(t *testing.T) {
	claims, _ := json.Marshal(&lti.LaunchClaims{Issuer: "https://lms.example.com", Subject: "u1"})
	session := &types.LaunchSession{ID: "s-1", UserID: "user-1", Claims: claims}

	tests := []struct {
		name          string
		req           *AssessmentCompletion
		setupMocks    func(*MockStorageInterface, *MockGraderInterface)
		expectedErr   error
		expectAnyErr  bool
		expectedState string
	}{
		{
			name: "grade passed back",
			req:  &AssessmentCompletion{SessionID: "s-1", ContentKnowledgeScore: 80, WritingScore: 60},
			setupMocks: func(s *MockStorageInterface, g *MockGraderInterface) {
				s.EXPECT().GetLaunchSession(gomock.Any(), "s-1").Return(session, nil)
				g.EXPECT().ProcessAssessmentCompletion(gomock.Any(), "s-1", gomock.Any(), ltiservices.AssessmentScores{ContentKnowledgeScore: 80, WritingScore: 60}).
					DoAndReturn(func(_ context.Context, _ string, c *lti.LaunchClaims, _ ltiservices.AssessmentScores) (*ltiservices.CompletionResult, error) {
						if c.Subject != "u1" {
							return nil, errors.New("claims not decoded")
						}
						return &ltiservices.CompletionResult{
							Grade:    &types.Grade{ID: "g-1", Score: 70, MaxScore: 100, Status: types.GradeStatusSubmittedToLMS},
							Passback: ltiservices.PassbackSubmitted,
						}, nil
					})
			},
			expectedState: "submitted_to_lms",
		},
		{
			name: "passback failure is still a stored grade",
			req:  &AssessmentCompletion{SessionID: "s-1", ContentKnowledgeScore: 80, WritingScore: 60},
			setupMocks: func(s *MockStorageInterface, g *MockGraderInterface) {
				s.EXPECT().GetLaunchSession(gomock.Any(), "s-1").Return(session, nil)
				g.EXPECT().ProcessAssessmentCompletion(gomock.Any(), "s-1", gomock.Any(), gomock.Any()).Return(&ltiservices.CompletionResult{
					Grade:    &types.Grade{ID: "g-1", Score: 70, MaxScore: 100, Status: types.GradeStatusSubmitted},
					Passback: ltiservices.PassbackFailed,
					Err:      &lti.RemoteServiceError{Endpoint: "x", StatusCode: 500},
				}, nil)
			},
			expectedState: "submitted",
		},
		{
			name:        "missing session id",
			req:         &AssessmentCompletion{ContentKnowledgeScore: 80},
			setupMocks:  func(*MockStorageInterface, *MockGraderInterface) {},
			expectedErr: lti.ErrBadRequest,
		},
		{
			name:        "score out of range",
			req:         &AssessmentCompletion{SessionID: "s-1", ContentKnowledgeScore: 180},
			setupMocks:  func(*MockStorageInterface, *MockGraderInterface) {},
			expectedErr: lti.ErrBadRequest,
		},
		{
			name: "unknown session",
			req:  &AssessmentCompletion{SessionID: "s-404"},
			setupMocks: func(s *MockStorageInterface, _ *MockGraderInterface) {
				s.EXPECT().GetLaunchSession(gomock.Any(), "s-404").Return(nil, storage.ErrNotFound)
			},
			expectedErr: lti.ErrBadRequest,
		},
		{
			name: "grade could not be stored",
			req:  &AssessmentCompletion{SessionID: "s-1"},
			setupMocks: func(s *MockStorageInterface, g *MockGraderInterface) {
				s.EXPECT().GetLaunchSession(gomock.Any(), "s-1").Return(session, nil)
				g.EXPECT().ProcessAssessmentCompletion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockGrader := NewMockGraderInterface(ctrl)
			tt.setupMocks(mockStorage, mockGrader)

			logger := logging.NewNoopLogger()
			s := NewService(mockStorage, mockGrader, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			resp, err := s.HandleAssessmentCompletion(context.Background(), tt.req)

			if tt.expectedErr != nil || tt.expectAnyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Status != tt.expectedState || resp.Score != 70 || resp.GradeID != "g-1" {
				t.Errorf("unexpected response %+v", resp)
			}
		})
	}
}
