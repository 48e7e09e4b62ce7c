// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplinking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/lti"
)

const (
	SelectPath = "/deeplinking/select"

	responseLifetime = 5 * time.Minute
)

type Config struct {
	// ClientID is the tool identity used as issuer of the response.
	ClientID string
	// LaunchURL is the url of the created resource links.
	LaunchURL string
	// HMACEnabled allows HS256 responses when no RSA key can be loaded.
	HMACEnabled bool
	HMACSecret  string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	config Config

	storage StorageInterface
	catalog CatalogInterface
	nonces  NonceInterface
	signer  SignerInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RenderSelection writes the content selection page. With no packages the
// page only shows an empty state and nothing can be signed.
func (s *Service) RenderSelection(ctx context.Context, w http.ResponseWriter, session *types.LaunchSession, request *lti.DeepLinkingRequest) error {
	ctx, span := s.tracer.Start(ctx, "deeplinking.Service.RenderSelection")
	defer span.End()

	packages, err := s.catalog.ListContentPackages(ctx)
	if err != nil {
		return fmt.Errorf("failed to list content packages: %w", err)
	}

	page := selectionPage{
		Title:     request.Settings.Title,
		Text:      request.Settings.Text,
		Action:    SelectPath,
		SessionID: session.ID,
		Packages:  packages,
	}

	var buf bytes.Buffer
	if err := selectionTemplate.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to render content selection: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = buf.WriteTo(w)

	return err
}

// Select builds the signed response for the package picked in the
// deep linking session.
func (s *Service) Select(ctx context.Context, sessionID, packageID string) (*Response, error) {
	ctx, span := s.tracer.Start(ctx, "deeplinking.Service.Select")
	defer span.End()

	if sessionID == "" || packageID == "" {
		return nil, fmt.Errorf("%w: session and package_id are required", lti.ErrBadRequest)
	}

	session, err := s.storage.GetLaunchSession(ctx, sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown session", lti.ErrBadRequest)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load launch session: %w", err)
	}

	if session.MessageType != lti.MessageTypeDeepLinkingRequest {
		return nil, fmt.Errorf("%w: session is not a deep linking launch", lti.ErrBadRequest)
	}

	claims, err := lti.ParseLaunchClaims(session.Claims)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session claims: %w", err)
	}

	msg, err := lti.Classify(claims)
	if err != nil {
		return nil, err
	}

	request, ok := msg.(*lti.DeepLinkingRequest)
	if !ok {
		return nil, fmt.Errorf("%w: session is not a deep linking launch", lti.ErrBadRequest)
	}

	pkg, err := s.findPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	signed, err := s.BuildResponse(ctx, claims, request, pkg)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("deep linking response built for session %s with package %s", session.ID, pkg.ID)

	return &Response{ReturnURL: request.Settings.ReturnURL, JWT: signed}, nil
}

func (s *Service) findPackage(ctx context.Context, id string) (*ContentPackage, error) {
	packages, err := s.catalog.ListContentPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content packages: %w", err)
	}

	for i := range packages {
		if packages[i].ID == id {
			return &packages[i], nil
		}
	}

	return nil, fmt.Errorf("%w: unknown content package", lti.ErrBadRequest)
}

// BuildResponse signs a LtiDeepLinkingResponse carrying one resource link
// for the package.
func (s *Service) BuildResponse(ctx context.Context, claims *lti.LaunchClaims, request *lti.DeepLinkingRequest, pkg *ContentPackage) (string, error) {
	ctx, span := s.tracer.Start(ctx, "deeplinking.Service.BuildResponse")
	defer span.End()

	nonce, err := s.nonces.Issue(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to issue nonce: %w", err)
	}

	now := s.now()

	response := &ResponseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.ClientID,
			Audience:  jwt.ClaimStrings{claims.Issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(responseLifetime)),
			ID:        uuid.NewString(),
		},
		Nonce:        nonce,
		DeploymentID: claims.DeploymentID,
		MessageType:  lti.MessageTypeDeepLinkingResponse,
		Version:      lti.Version,
		ContentItems: []ContentItem{
			{
				Type:   lti.ContentItemTypeResourceLink,
				Title:  pkg.Name,
				Text:   pkg.Description,
				URL:    s.config.LaunchURL,
				Custom: map[string]string{lti.CustomPackageID: pkg.ID},
			},
		},
		Data: request.Settings.Data,
	}

	signed, err := s.signer.Sign(ctx, response)
	if err == nil {
		return signed, nil
	}

	if !errors.Is(err, lti.ErrKeyUnavailable) || !s.config.HMACEnabled || s.config.HMACSecret == "" {
		return "", fmt.Errorf("failed to sign deep linking response: %w", err)
	}

	s.logger.Warnw("signing deep linking response with HS256, running in degraded mode", "issuer", claims.Issuer)

	signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, response).SignedString([]byte(s.config.HMACSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign deep linking response: %w", err)
	}

	return signed, nil
}

func NewService(
	cfg Config,
	s StorageInterface,
	catalog CatalogInterface,
	nonces NonceInterface,
	signer SignerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	svc := new(Service)

	svc.config = cfg

	svc.storage = s
	svc.catalog = catalog
	svc.nonces = nonces
	svc.signer = signer

	svc.now = time.Now

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
