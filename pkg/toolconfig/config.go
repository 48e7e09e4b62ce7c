// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package toolconfig

import (
	"fmt"
	"net/url"

	"github.com/canonical/lti-service/pkg/lti"
)

const (
	PlacementCourseNavigation = "course_navigation"
	PlacementLinkSelection    = "link_selection"
)

type Placement struct {
	Placement     string `json:"placement"`
	MessageType   string `json:"message_type"`
	TargetLinkURI string `json:"target_link_uri"`
	Text          string `json:"text,omitempty"`
}

type ExtensionSettings struct {
	Text       string      `json:"text"`
	Placements []Placement `json:"placements"`
}

type Extension struct {
	Platform string            `json:"platform"`
	Domain   string            `json:"domain,omitempty"`
	Settings ExtensionSettings `json:"settings"`
}

// Configuration is the registration document platforms import.
type Configuration struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	OIDCInitiationURL string            `json:"oidc_initiation_url"`
	TargetLinkURI     string            `json:"target_link_uri"`
	PublicJWKURL      string            `json:"public_jwk_url"`
	Scopes            []string          `json:"scopes"`
	Extensions        []Extension       `json:"extensions"`
	CustomFields      map[string]string `json:"custom_fields"`
}

// Build derives the tool registration from its public base url.
func Build(baseURL, title string) (*Configuration, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid tool base url %q", baseURL)
	}

	login := base.JoinPath("login").String()
	launch := base.JoinPath("launch").String()
	jwks := base.JoinPath("jwks").String()

	return &Configuration{
		Title:             title,
		Description:       title + " LTI 1.3 tool",
		OIDCInitiationURL: login,
		TargetLinkURI:     launch,
		PublicJWKURL:      jwks,
		Scopes: []string{
			lti.ScopeLineItem,
			lti.ScopeLineItemReadOnly,
			lti.ScopeResultReadOnly,
			lti.ScopeScore,
			lti.ScopeNRPSMembership,
		},
		Extensions: []Extension{
			{
				Platform: "canvas.instructure.com",
				Domain:   base.Hostname(),
				Settings: ExtensionSettings{
					Text: title,
					Placements: []Placement{
						{
							Placement:     PlacementCourseNavigation,
							MessageType:   lti.MessageTypeResourceLink,
							TargetLinkURI: launch,
							Text:          title,
						},
						{
							Placement:     PlacementLinkSelection,
							MessageType:   lti.MessageTypeDeepLinkingRequest,
							TargetLinkURI: launch,
							Text:          title,
						},
					},
				},
			},
		},
		CustomFields: map[string]string{
			"context_id": "$Context.id",
			"user_id":    "$User.id",
		},
	}, nil
}
