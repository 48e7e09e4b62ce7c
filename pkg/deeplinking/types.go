// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplinking

import (
	"github.com/golang-jwt/jwt/v5"
)

type ContentPackage struct {
	ID                   string `yaml:"id" json:"id" validate:"required"`
	Name                 string `yaml:"name" json:"name" validate:"required"`
	Description          string `yaml:"description" json:"description,omitempty"`
	AssessmentBotSummary string `yaml:"assessment_bot_summary" json:"assessment_bot_summary,omitempty"`
}

// ContentItem is an ltiResourceLink item returned to the platform.
type ContentItem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title,omitempty"`
	Text   string            `json:"text,omitempty"`
	URL    string            `json:"url,omitempty"`
	Custom map[string]string `json:"custom,omitempty"`
}

// ResponseClaims is the payload of a LtiDeepLinkingResponse message.
type ResponseClaims struct {
	jwt.RegisteredClaims

	Nonce        string        `json:"nonce"`
	DeploymentID string        `json:"https://purl.imsglobal.org/spec/lti/claim/deployment_id"`
	MessageType  string        `json:"https://purl.imsglobal.org/spec/lti/claim/message_type"`
	Version      string        `json:"https://purl.imsglobal.org/spec/lti/claim/version"`
	ContentItems []ContentItem `json:"https://purl.imsglobal.org/spec/lti-dl/claim/content_items"`
	Data         string        `json:"https://purl.imsglobal.org/spec/lti-dl/claim/data,omitempty"`
}

// Response is a signed deep linking response and where to post it.
type Response struct {
	ReturnURL string
	JWT       string
}
