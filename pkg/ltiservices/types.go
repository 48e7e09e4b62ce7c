// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ltiservices

import (
	"time"

	"github.com/canonical/lti-service/internal/types"
)

const (
	ActivityProgressCompleted  = "Completed"
	GradingProgressFullyGraded = "FullyGraded"

	// MaxScore is the scale assessment scores are reported on.
	MaxScore = 100
)

// ScoreSubmission is an AGS score publish request.
type ScoreSubmission struct {
	UserID           string    `json:"userId" validate:"required"`
	LineItemID       string    `json:"-"`
	ScoreGiven       float64   `json:"scoreGiven" validate:"gte=0"`
	ScoreMaximum     float64   `json:"scoreMaximum" validate:"gt=0"`
	Comment          string    `json:"comment,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
	ActivityProgress string    `json:"activityProgress" validate:"required"`
	GradingProgress  string    `json:"gradingProgress" validate:"required"`
}

type LineItem struct {
	ID             string  `json:"id"`
	ScoreMaximum   float64 `json:"scoreMaximum"`
	Label          string  `json:"label"`
	Tag            string  `json:"tag,omitempty"`
	ResourceID     string  `json:"resourceId,omitempty"`
	ResourceLinkID string  `json:"resourceLinkId,omitempty"`
}

type Member struct {
	Status     string   `json:"status,omitempty"`
	Name       string   `json:"name,omitempty"`
	GivenName  string   `json:"given_name,omitempty"`
	FamilyName string   `json:"family_name,omitempty"`
	Email      string   `json:"email,omitempty"`
	UserID     string   `json:"user_id"`
	Roles      []string `json:"roles"`
}

type MembershipContext struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Title string `json:"title,omitempty"`
}

// MembershipContainer is the NRPS context membership document.
type MembershipContainer struct {
	ID      string            `json:"id"`
	Context MembershipContext `json:"context"`
	Members []Member          `json:"members"`
}

type AssessmentScores struct {
	ContentKnowledgeScore float64 `json:"content_knowledge_score" validate:"gte=0,lte=100"`
	WritingScore          float64 `json:"writing_score" validate:"gte=0,lte=100"`
	Comment               string  `json:"comment,omitempty"`
}

type PassbackStatus string

const (
	// PassbackSkipped means the launch carried no line item to report to.
	PassbackSkipped   PassbackStatus = "skipped"
	PassbackSubmitted PassbackStatus = "submitted"
	PassbackFailed    PassbackStatus = "failed"
)

// CompletionResult is the outcome of an assessment completion. Err holds
// the passback failure, the grade is stored regardless.
type CompletionResult struct {
	Grade    *types.Grade
	Passback PassbackStatus
	Err      error
}
