// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/authentication"
	"github.com/canonical/lti-service/pkg/lti"
)

type Config struct {
	// LaunchURL is the redirect_uri platforms post the id_token to.
	LaunchURL string
	// AppEntryURL receives the browser after a resource link launch.
	AppEntryURL string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	config Config

	storage  StorageInterface
	registry RegistryInterface
	nonces   NonceInterface
	verifier VerifierInterface
	resolver ResolverInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Login answers a third party initiated login with the authentication
// request redirect towards the platform.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.Login")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: invalid login request: %v", lti.ErrBadRequest, err)
	}

	registration, err := s.registry.FindRegistration(ctx, req.Issuer)
	if err != nil {
		s.logger.Security().AuthnFailure(req.Issuer, "login from unregistered issuer")
		return nil, err
	}

	if req.ClientID != "" && req.ClientID != registration.ClientID {
		s.logger.Security().AuthnFailure(req.Issuer, "login client id does not match registration")
		return nil, fmt.Errorf("%w: client id mismatch", lti.ErrUnknownIssuer)
	}

	state, err := s.nonces.Issue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to issue state: %w", err)
	}

	nonce, err := s.nonces.Issue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to issue nonce: %w", err)
	}

	authURL, err := url.Parse(registration.AuthLoginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid platform authorization endpoint: %w", err)
	}

	q := authURL.Query()
	q.Set("response_type", "id_token")
	q.Set("response_mode", "form_post")
	q.Set("client_id", registration.ClientID)
	q.Set("redirect_uri", s.config.LaunchURL)
	q.Set("scope", "openid")
	q.Set("state", state)
	q.Set("nonce", nonce)
	q.Set("prompt", "none")
	q.Set("login_hint", req.LoginHint)
	if req.LTIMessageHint != "" {
		q.Set("lti_message_hint", req.LTIMessageHint)
	}
	authURL.RawQuery = q.Encode()

	return &LoginResponse{RedirectURL: authURL.String(), State: state}, nil
}

// Launch authenticates an id_token and resolves it. The nonce is consumed
// right after signature verification and before any write.
func (s *Service) Launch(ctx context.Context, req *LaunchRequest) (*LaunchResult, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.Launch")
	defer span.End()

	if req.IDToken == "" {
		return nil, lti.ErrMissingToken
	}

	issuer, err := authentication.PeekIssuer(req.IDToken)
	if err != nil {
		return nil, err
	}

	registration, err := s.registry.FindRegistration(ctx, issuer)
	if err != nil {
		s.logger.Security().AuthnFailure(issuer, "launch from unregistered issuer")
		return nil, err
	}

	claims, err := s.verifier.VerifyLaunchToken(ctx, registration, req.IDToken)
	if err != nil {
		return nil, err
	}

	ok, err := s.nonces.ValidateAndConsume(ctx, claims.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to validate nonce: %w", err)
	}
	if !ok {
		s.logger.Security().ReplayDetected(issuer)
		return nil, lti.ErrReplayedNonce
	}

	if err := s.checkState(ctx, issuer, req); err != nil {
		return nil, err
	}

	if err := s.checkClaims(registration, claims); err != nil {
		s.logger.Security().AuthnFailure(issuer, err.Error())
		return nil, err
	}

	msg, err := lti.Classify(claims)
	if err != nil {
		return nil, err
	}

	lc, err := s.resolver.Resolve(ctx, claims, registration)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve launch: %w", err)
	}

	rawClaims, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to encode claims: %w", err)
	}

	session, err := s.storage.CreateLaunchSession(ctx, &types.LaunchSession{
		ID:          uuid.NewString(),
		PlatformID:  lc.Platform.ID,
		ContextID:   lc.Context.ID,
		UserID:      lc.User.ID,
		TenantID:    lc.Tenant.ID,
		MessageType: msg.MessageType(),
		PackageID:   claims.PackageID(),
		Claims:      rawClaims,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create launch session: %w", err)
	}

	result := &LaunchResult{Message: msg, Context: lc, Session: session}

	if _, ok := msg.(*lti.ResourceLinkLaunch); ok {
		redirect, err := s.entryURL(session, claims)
		if err != nil {
			return nil, err
		}
		result.RedirectURL = redirect
	}

	s.logger.Infof("launch %s resolved for platform %s", msg.MessageType(), lc.Platform.ID)

	return result, nil
}

// checkState consumes the posted state and compares it with the browser
// cookie when one came back.
func (s *Service) checkState(ctx context.Context, issuer string, req *LaunchRequest) error {
	if req.CookieState != "" && req.CookieState != req.State {
		s.logger.Security().AuthnFailure(issuer, "state does not match login cookie")
		return fmt.Errorf("%w: state mismatch", lti.ErrInvalidToken)
	}

	if req.State == "" {
		return nil
	}

	ok, err := s.nonces.ValidateAndConsume(ctx, req.State)
	if err != nil {
		return fmt.Errorf("failed to validate state: %w", err)
	}
	if !ok {
		s.logger.Security().ReplayDetected(issuer)
		return fmt.Errorf("%w: unknown state", lti.ErrReplayedNonce)
	}

	return nil
}

func (s *Service) checkClaims(registration *types.Platform, claims *lti.LaunchClaims) error {
	if claims.Version != lti.Version {
		return fmt.Errorf("%w: unsupported LTI version", lti.ErrInvalidToken)
	}

	if claims.DeploymentID == "" {
		return fmt.Errorf("%w: missing deployment id", lti.ErrInvalidToken)
	}

	if len(registration.DeploymentIDs) == 0 {
		return nil
	}

	for _, id := range registration.DeploymentIDs {
		if id == claims.DeploymentID {
			return nil
		}
	}

	return fmt.Errorf("%w: deployment is not registered", lti.ErrInvalidToken)
}

func (s *Service) entryURL(session *types.LaunchSession, claims *lti.LaunchClaims) (string, error) {
	u, err := url.Parse(s.config.AppEntryURL)
	if err != nil {
		return "", fmt.Errorf("invalid application entry url: %w", err)
	}

	summary, err := json.Marshal(claims.Summary())
	if err != nil {
		return "", fmt.Errorf("failed to encode claims summary: %w", err)
	}

	q := u.Query()
	q.Set("session", session.ID)
	if session.PackageID != "" {
		q.Set("package", session.PackageID)
	}
	q.Set("claims", base64.RawURLEncoding.EncodeToString(summary))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func NewService(
	cfg Config,
	s StorageInterface,
	registry RegistryInterface,
	nonces NonceInterface,
	verifier VerifierInterface,
	resolver ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	svc := new(Service)

	svc.config = cfg

	svc.storage = s
	svc.registry = registry
	svc.nonces = nonces
	svc.verifier = verifier
	svc.resolver = resolver

	svc.validate = validator.New()

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
