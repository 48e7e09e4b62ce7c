// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lti

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Audience accepts both the single string and the array form of aud.
type Audience []string

func (a *Audience) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*a = Audience{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("aud must be a string or an array of strings: %w", err)
	}

	*a = many
	return nil
}

func (a Audience) Contains(v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}

type ResourceLinkClaim struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type ContextClaim struct {
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
	Title string   `json:"title,omitempty"`
	Type  []string `json:"type,omitempty"`
}

type ToolPlatformClaim struct {
	GUID              string `json:"guid,omitempty"`
	Name              string `json:"name,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
	Description       string `json:"description,omitempty"`
	URL               string `json:"url,omitempty"`
	ProductFamilyCode string `json:"product_family_code,omitempty"`
	Version           string `json:"version,omitempty"`
}

type LaunchPresentationClaim struct {
	DocumentTarget string `json:"document_target,omitempty"`
	Height         int    `json:"height,omitempty"`
	Width          int    `json:"width,omitempty"`
	ReturnURL      string `json:"return_url,omitempty"`
	Locale         string `json:"locale,omitempty"`
}

type AGSClaim struct {
	Scope     []string `json:"scope,omitempty"`
	LineItems string   `json:"lineitems,omitempty"`
	LineItem  string   `json:"lineitem,omitempty"`
}

func (c *AGSClaim) HasScope(scope string) bool {
	for _, s := range c.Scope {
		if s == scope {
			return true
		}
	}
	return false
}

type NRPSClaim struct {
	ContextMembershipsURL string   `json:"context_memberships_url"`
	ServiceVersions       []string `json:"service_versions,omitempty"`
}

type DeepLinkingSettingsClaim struct {
	ReturnURL                         string   `json:"deep_link_return_url"`
	AcceptTypes                       []string `json:"accept_types,omitempty"`
	AcceptPresentationDocumentTargets []string `json:"accept_presentation_document_targets,omitempty"`
	AcceptMediaTypes                  string   `json:"accept_media_types,omitempty"`
	AcceptMultiple                    bool     `json:"accept_multiple,omitempty"`
	AutoCreate                        bool     `json:"auto_create,omitempty"`
	Title                             string   `json:"title,omitempty"`
	Text                              string   `json:"text,omitempty"`
	Data                              string   `json:"data,omitempty"`
}

// LaunchClaims is the decoded payload of a verified launch id_token.
type LaunchClaims struct {
	Issuer          string   `json:"iss"`
	Subject         string   `json:"sub"`
	Audience        Audience `json:"aud"`
	AuthorizedParty string   `json:"azp,omitempty"`
	ExpiresAt       int64    `json:"exp"`
	IssuedAt        int64    `json:"iat"`
	Nonce           string   `json:"nonce"`

	Name       string `json:"name,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Email      string `json:"email,omitempty"`

	MessageType        string                   `json:"https://purl.imsglobal.org/spec/lti/claim/message_type"`
	Version            string                   `json:"https://purl.imsglobal.org/spec/lti/claim/version"`
	DeploymentID       string                   `json:"https://purl.imsglobal.org/spec/lti/claim/deployment_id"`
	TargetLinkURI      string                   `json:"https://purl.imsglobal.org/spec/lti/claim/target_link_uri,omitempty"`
	ResourceLink       *ResourceLinkClaim       `json:"https://purl.imsglobal.org/spec/lti/claim/resource_link,omitempty"`
	Context            *ContextClaim            `json:"https://purl.imsglobal.org/spec/lti/claim/context,omitempty"`
	Roles              []string                 `json:"https://purl.imsglobal.org/spec/lti/claim/roles"`
	ToolPlatform       *ToolPlatformClaim       `json:"https://purl.imsglobal.org/spec/lti/claim/tool_platform,omitempty"`
	LaunchPresentation *LaunchPresentationClaim `json:"https://purl.imsglobal.org/spec/lti/claim/launch_presentation,omitempty"`
	Custom             map[string]any           `json:"https://purl.imsglobal.org/spec/lti/claim/custom,omitempty"`

	AGS                 *AGSClaim                 `json:"https://purl.imsglobal.org/spec/lti-ags/claim/endpoint,omitempty"`
	NRPS                *NRPSClaim                `json:"https://purl.imsglobal.org/spec/lti-nrps/claim/namesroleservice,omitempty"`
	DeepLinkingSettings *DeepLinkingSettingsClaim `json:"https://purl.imsglobal.org/spec/lti-dl/claim/deep_linking_settings,omitempty"`
}

// ParseLaunchClaims decodes a JSON claim set.
func ParseLaunchClaims(raw []byte) (*LaunchClaims, error) {
	c := new(LaunchClaims)
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("%w: malformed claims: %v", ErrInvalidToken, err)
	}
	return c, nil
}

// ClientID is the OAuth client id the platform issued the token for.
func (c *LaunchClaims) ClientID() string {
	if c.AuthorizedParty != "" {
		return c.AuthorizedParty
	}
	if len(c.Audience) > 0 {
		return c.Audience[0]
	}
	return ""
}

// CustomString returns a custom parameter as a string, numbers are formatted.
func (c *LaunchClaims) CustomString(key string) string {
	v, ok := c.Custom[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func (c *LaunchClaims) PackageID() string {
	return c.CustomString(CustomPackageID)
}

// PlatformName is the display name the platform announces, falling back to the issuer.
func (c *LaunchClaims) PlatformName() string {
	if c.ToolPlatform != nil && c.ToolPlatform.Name != "" {
		return c.ToolPlatform.Name
	}
	return c.Issuer
}

// Summary is the subset of claims forwarded to the application entry point.
type Summary struct {
	Issuer         string   `json:"iss"`
	Subject        string   `json:"sub"`
	Name           string   `json:"name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Roles          []string `json:"roles,omitempty"`
	ContextID      string   `json:"context_id,omitempty"`
	ContextTitle   string   `json:"context_title,omitempty"`
	ResourceLinkID string   `json:"resource_link_id,omitempty"`
	PackageID      string   `json:"package_id,omitempty"`
	ReturnURL      string   `json:"return_url,omitempty"`
	HasAGS         bool     `json:"has_ags"`
	HasNRPS        bool     `json:"has_nrps"`
}

func (c *LaunchClaims) Summary() Summary {
	s := Summary{
		Issuer:    c.Issuer,
		Subject:   c.Subject,
		Name:      c.Name,
		Email:     c.Email,
		Roles:     c.Roles,
		PackageID: c.PackageID(),
		HasAGS:    c.AGS != nil,
		HasNRPS:   c.NRPS != nil,
	}

	if c.Context != nil {
		s.ContextID = c.Context.ID
		s.ContextTitle = c.Context.Title
	}
	if c.ResourceLink != nil {
		s.ResourceLinkID = c.ResourceLink.ID
	}
	if c.LaunchPresentation != nil {
		s.ReturnURL = c.LaunchPresentation.ReturnURL
	}

	return s
}
