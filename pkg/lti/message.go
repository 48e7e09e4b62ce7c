// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lti

import "fmt"

// LaunchMessage is either a *ResourceLinkLaunch or a *DeepLinkingRequest.
// The kind is decided once by Classify and never re-derived from claims.
type LaunchMessage interface {
	MessageType() string
	Claims() *LaunchClaims

	launchMessage()
}

type ResourceLinkLaunch struct {
	claims *LaunchClaims

	ResourceLink ResourceLinkClaim
}

func (m *ResourceLinkLaunch) MessageType() string   { return MessageTypeResourceLink }
func (m *ResourceLinkLaunch) Claims() *LaunchClaims { return m.claims }
func (m *ResourceLinkLaunch) launchMessage()        {}

type DeepLinkingRequest struct {
	claims *LaunchClaims

	Settings DeepLinkingSettingsClaim
}

func (m *DeepLinkingRequest) MessageType() string   { return MessageTypeDeepLinkingRequest }
func (m *DeepLinkingRequest) Claims() *LaunchClaims { return m.claims }
func (m *DeepLinkingRequest) launchMessage()        {}

// Classify turns verified claims into a LaunchMessage.
func Classify(c *LaunchClaims) (LaunchMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: no claims", ErrInvalidToken)
	}

	switch c.MessageType {
	case MessageTypeResourceLink:
		if c.ResourceLink == nil || c.ResourceLink.ID == "" {
			return nil, fmt.Errorf("%w: resource link launch without resource_link id", ErrInvalidToken)
		}
		return &ResourceLinkLaunch{claims: c, ResourceLink: *c.ResourceLink}, nil
	case MessageTypeDeepLinkingRequest:
		if c.DeepLinkingSettings == nil || c.DeepLinkingSettings.ReturnURL == "" {
			return nil, ErrMissingDeepLinkingSettings
		}
		return &DeepLinkingRequest{claims: c, Settings: *c.DeepLinkingSettings}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported message type %q", ErrInvalidToken, c.MessageType)
	}
}
