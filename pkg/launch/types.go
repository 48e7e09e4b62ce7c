// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/resolver"
)

// LoginRequest is the third party initiated login sent by the platform.
type LoginRequest struct {
	Issuer         string `validate:"required"`
	LoginHint      string `validate:"required"`
	TargetLinkURI  string `validate:"required,url"`
	LTIMessageHint string
	ClientID       string
	DeploymentID   string
}

type LoginResponse struct {
	RedirectURL string
	State       string
}

type LaunchRequest struct {
	IDToken string
	State   string
	// CookieState is the state stored in the browser at login, empty when
	// the browser did not send it back.
	CookieState string
}

// LaunchResult is a resolved launch. RedirectURL is only set for resource
// link launches, deep linking continues with content selection.
type LaunchResult struct {
	Message     lti.LaunchMessage
	Context     *resolver.LaunchContext
	Session     *types.LaunchSession
	RedirectURL string
}
