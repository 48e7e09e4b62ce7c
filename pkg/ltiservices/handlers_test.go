// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ltiservices

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lti-service/internal/identity"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

func testSession(t *testing.T) *types.LaunchSession {
	t.Helper()

	claims, err := json.Marshal(&lti.LaunchClaims{
		Issuer:  "https://lms.example.com",
		Subject: "lms-user-1",
		Context: &lti.ContextClaim{ID: "course-1"},
		AGS: &lti.AGSClaim{
			Scope:     []string{lti.ScopeScore, lti.ScopeLineItemReadOnly},
			LineItems: "https://lms.example.com/courses/1/lineitems",
			LineItem:  "https://lms.example.com/courses/1/lineitems/7",
		},
		NRPS: &lti.NRPSClaim{ContextMembershipsURL: "https://lms.example.com/courses/1/memberships"},
	})
	if err != nil {
		t.Fatal(err)
	}

	return &types.LaunchSession{ID: "s-1", ContextID: "c-1", Claims: claims}
}

func withSession(s *types.LaunchSession) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s != nil {
				r = r.WithContext(identity.WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func TestAPI(t *testing.T) {
	lineItem := url.PathEscape("https://lms.example.com/courses/1/lineitems/7")
	foreignLineItem := url.PathEscape("https://other.example.com/lineitems/7")

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		noSession      bool
		setupMocks     func(*MockClientInterface)
		expectedStatus int
	}{
		{
			name:   "membership by local context id",
			method: http.MethodGet,
			path:   "/nrps/c-1",
			setupMocks: func(c *MockClientInterface) {
				c.EXPECT().GetContextMembership(gomock.Any(), gomock.Any()).Return(&MembershipContainer{ID: "m", Members: []Member{{UserID: "u1"}}})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "membership by platform context id",
			method: http.MethodGet,
			path:   "/nrps/course-1",
			setupMocks: func(c *MockClientInterface) {
				c.EXPECT().GetContextMembership(gomock.Any(), gomock.Any()).Return(&MembershipContainer{ID: "m"})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "membership of another context",
			method:         http.MethodGet,
			path:           "/nrps/c-2",
			setupMocks:     func(*MockClientInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "membership unavailable",
			method: http.MethodGet,
			path:   "/nrps/c-1",
			setupMocks: func(c *MockClientInterface) {
				c.EXPECT().GetContextMembership(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:   "line items",
			method: http.MethodGet,
			path:   "/lineitems/c-1",
			setupMocks: func(c *MockClientInterface) {
				c.EXPECT().GetLineItems(gomock.Any(), gomock.Any()).Return([]LineItem{{ID: "li"}})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "score submitted",
			method: http.MethodPost,
			path:   "/scores/" + lineItem,
			body:   `{"scoreGiven": 70, "scoreMaximum": 100, "comment": "ok"}`,
			setupMocks: func(c *MockClientInterface) {
				c.EXPECT().SubmitGrade(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *lti.LaunchClaims, s *ScoreSubmission) error {
						if s.LineItemID != "https://lms.example.com/courses/1/lineitems/7" || s.UserID != "lms-user-1" {
							t.Errorf("unexpected submission %+v", s)
						}
						if s.ActivityProgress != ActivityProgressCompleted || s.GradingProgress != GradingProgressFullyGraded {
							t.Errorf("expected default progress, got %+v", s)
						}
						return nil
					})
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "score rejected by platform",
			method: http.MethodPost,
			path:   "/scores/" + lineItem,
			body:   `{"scoreGiven": 70, "scoreMaximum": 100}`,
			setupMocks: func(c *MockClientInterface) {
				c.EXPECT().SubmitGrade(gomock.Any(), gomock.Any(), gomock.Any()).Return(&lti.RemoteServiceError{Endpoint: "x", StatusCode: 422})
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "score for a line item the launch did not grant",
			method:         http.MethodPost,
			path:           "/scores/" + foreignLineItem,
			body:           `{"scoreGiven": 70, "scoreMaximum": 100}`,
			setupMocks:     func(*MockClientInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid score body",
			method:         http.MethodPost,
			path:           "/scores/" + lineItem,
			body:           `{`,
			setupMocks:     func(*MockClientInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no session",
			method:         http.MethodGet,
			path:           "/nrps/c-1",
			noSession:      true,
			setupMocks:     func(*MockClientInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockClientInterface(ctrl)
			tc.setupMocks(mockClient)

			session := testSession(t)
			if tc.noSession {
				session = nil
			}

			mux := chi.NewRouter()
			NewAPI(mockClient, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux, withSession(session))

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
