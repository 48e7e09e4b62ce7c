// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// AssessmentCompletion is sent by the application when a learner finishes
// an assessment.
type AssessmentCompletion struct {
	SessionID             string  `json:"session_id" validate:"required"`
	ContentKnowledgeScore float64 `json:"content_knowledge_score" validate:"gte=0,lte=100"`
	WritingScore          float64 `json:"writing_score" validate:"gte=0,lte=100"`
	Comment               string  `json:"comment,omitempty"`
}

type AssessmentCompletionResponse struct {
	GradeID  string  `json:"grade_id"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
	Status   string  `json:"status"`
	Passback string  `json:"passback"`
}
