// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

// Platform is one LMS deployment, unique by issuer.
type Platform struct {
	ID            string          `db:"id"`
	Issuer        string          `db:"issuer"`
	Name          string          `db:"name"`
	ClientID      string          `db:"client_id"`
	AuthLoginURL  string          `db:"auth_login_url"`
	AuthTokenURL  string          `db:"auth_token_url"`
	KeySetURL     string          `db:"key_set_url"`
	DeploymentIDs []string        `db:"deployment_ids"`
	AuthConfig    json.RawMessage `db:"auth_config"`
	CreatedAt     time.Time       `db:"created_at"`
}

// SameConfig reports whether the operator managed settings of both platforms match.
func (p *Platform) SameConfig(o *Platform) bool {
	return p.ClientID == o.ClientID &&
		p.AuthLoginURL == o.AuthLoginURL &&
		p.AuthTokenURL == o.AuthTokenURL &&
		p.KeySetURL == o.KeySetURL &&
		slices.Equal(p.DeploymentIDs, o.DeploymentIDs) &&
		bytes.Equal(authConfigOrEmpty(p.AuthConfig), authConfigOrEmpty(o.AuthConfig))
}

// authConfigOrEmpty maps a missing auth config to the column default.
func authConfigOrEmpty(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}

// ApplyConfig overwrites the operator managed settings with the ones of o,
// identity fields are left untouched.
func (p *Platform) ApplyConfig(o *Platform) {
	p.ClientID = o.ClientID
	p.AuthLoginURL = o.AuthLoginURL
	p.AuthTokenURL = o.AuthTokenURL
	p.KeySetURL = o.KeySetURL
	p.DeploymentIDs = slices.Clone(o.DeploymentIDs)
	p.AuthConfig = bytes.Clone(o.AuthConfig)
}

// Context is a course or section, unique by (platform, LMS context id).
type Context struct {
	ID           string    `db:"id"`
	PlatformID   string    `db:"platform_id"`
	LMSContextID string    `db:"lms_context_id"`
	Type         []string  `db:"type"`
	Title        string    `db:"title"`
	Label        string    `db:"label"`
	CreatedAt    time.Time `db:"created_at"`
}

// User is an LMS principal, unique by (platform, subject).
type User struct {
	ID         string    `db:"id"`
	PlatformID string    `db:"platform_id"`
	Subject    string    `db:"subject"`
	GivenName  string    `db:"given_name"`
	FamilyName string    `db:"family_name"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Roles      []string  `db:"roles"`
	CreatedAt  time.Time `db:"created_at"`
}

type Tenant struct {
	ID         string          `db:"id"`
	PlatformID string          `db:"platform_id"`
	Name       string          `db:"name"`
	Domain     string          `db:"domain"`
	Config     json.RawMessage `db:"config"`
	Active     bool            `db:"active"`
	CreatedAt  time.Time       `db:"created_at"`
}

// LaunchSession is the local session produced by a successful launch.
// Claims holds the verified token payload so that service calls made later
// (grade passback, roster) use what the platform granted at launch time.
type LaunchSession struct {
	ID          string          `db:"id"`
	PlatformID  string          `db:"platform_id"`
	ContextID   string          `db:"context_id"`
	UserID      string          `db:"user_id"`
	TenantID    string          `db:"tenant_id"`
	MessageType string          `db:"message_type"`
	PackageID   string          `db:"package_id"`
	Claims      json.RawMessage `db:"claims"`
	CreatedAt   time.Time       `db:"created_at"`
}

type GradeStatus string

const (
	GradeStatusPending        GradeStatus = "pending"
	GradeStatusSubmitted      GradeStatus = "submitted"
	GradeStatusSubmittedToLMS GradeStatus = "submitted_to_lms"
)

type Grade struct {
	ID          string      `db:"id"`
	SessionID   string      `db:"session_id"`
	UserID      string      `db:"user_id"`
	LineItemID  string      `db:"line_item_id"`
	Score       float64     `db:"score"`
	MaxScore    float64     `db:"max_score"`
	Status      GradeStatus `db:"status"`
	SubmittedAt time.Time   `db:"submitted_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}
