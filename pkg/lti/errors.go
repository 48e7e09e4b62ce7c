// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lti

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest                 = errors.New("malformed request")
	ErrUnknownIssuer              = errors.New("unknown issuer")
	ErrMissingToken               = errors.New("missing id_token")
	ErrInvalidToken               = errors.New("invalid token")
	ErrReplayedNonce              = errors.New("nonce already used or unknown")
	ErrMissingDeepLinkingSettings = errors.New("missing deep linking settings")
	ErrKeyUnavailable             = errors.New("signing key unavailable")
	ErrKeyNotPersisted            = errors.New("signing key was generated and is not persisted")

	ErrServiceAuth   = errors.New("service access token exchange failed")
	ErrRemoteService = errors.New("platform service call failed")
)

// ServiceAuthError reports a failed access token exchange with a platform.
type ServiceAuthError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *ServiceAuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d: %v", ErrServiceAuth, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrServiceAuth, e.Endpoint, e.Err)
}

func (e *ServiceAuthError) Unwrap() error {
	return e.Err
}

func (e *ServiceAuthError) Is(target error) bool {
	return target == ErrServiceAuth
}

// RemoteServiceError reports a failed AGS or NRPS call made with a valid token.
type RemoteServiceError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d", ErrRemoteService, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRemoteService, e.Endpoint, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

func (e *RemoteServiceError) Is(target error) bool {
	return target == ErrRemoteService
}

// HTTPStatus maps an error to the status code returned to the caller.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrUnknownIssuer),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrMissingDeepLinkingSettings):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrReplayedNonce):
		return http.StatusUnauthorized
	case errors.Is(err, ErrServiceAuth),
		errors.Is(err, ErrRemoteService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns a message safe to show to the end user, it never
// includes claim contents.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrBadRequest):
		return "request is missing required parameters"
	case errors.Is(err, ErrUnknownIssuer):
		return "platform is not registered with this tool"
	case errors.Is(err, ErrMissingToken):
		return "launch request is missing the id_token"
	case errors.Is(err, ErrMissingDeepLinkingSettings):
		return "deep linking request is missing its settings"
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrReplayedNonce):
		return "launch could not be authenticated"
	case errors.Is(err, ErrServiceAuth), errors.Is(err, ErrRemoteService):
		return "platform service is unavailable"
	default:
		return "internal error"
	}
}
