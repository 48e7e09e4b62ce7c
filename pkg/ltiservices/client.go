// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ltiservices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/pkg/lti"
)

const (
	assertionLifetime = 5 * time.Minute
	// tokenExpiryLeeway drops cached tokens before the platform does.
	tokenExpiryLeeway = 30 * time.Second

	DefaultTimeout = 10 * time.Second
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	registry RegistryInterface
	signer   SignerInterface

	httpClient *http.Client
	timeout    time.Duration

	mu     sync.Mutex
	tokens map[string]*oauth2.Token

	validate *validator.Validate
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func tokenCacheKey(issuer string, scopes []string) string {
	sorted := slices.Clone(scopes)
	slices.Sort(sorted)
	return issuer + "|" + strings.Join(sorted, " ")
}

// GetServiceAccessToken exchanges a signed client assertion for a bearer
// token on the platform token endpoint.
func (c *Client) GetServiceAccessToken(ctx context.Context, claims *lti.LaunchClaims, scopes []string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "ltiservices.Client.GetServiceAccessToken")
	defer span.End()

	key := tokenCacheKey(claims.Issuer, scopes)

	c.mu.Lock()
	cached, ok := c.tokens[key]
	c.mu.Unlock()

	if ok && cached.Expiry.After(c.now().Add(tokenExpiryLeeway)) {
		return cached.AccessToken, nil
	}

	registration, err := c.registry.FindRegistration(ctx, claims.Issuer)
	if err != nil {
		return "", &lti.ServiceAuthError{Endpoint: claims.Issuer, Err: err}
	}

	clientID := registration.ClientID
	if clientID == "" {
		clientID = claims.ClientID()
	}

	now := c.now()
	assertion, err := c.signer.Sign(ctx, jwt.RegisteredClaims{
		Issuer:    clientID,
		Subject:   clientID,
		Audience:  jwt.ClaimStrings{registration.AuthTokenURL},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionLifetime)),
		ID:        uuid.NewString(),
	})
	if err != nil {
		return "", &lti.ServiceAuthError{Endpoint: registration.AuthTokenURL, Err: err}
	}

	cfg := &clientcredentials.Config{
		ClientID:  clientID,
		TokenURL:  registration.AuthTokenURL,
		Scopes:    scopes,
		AuthStyle: oauth2.AuthStyleInParams,
		EndpointParams: url.Values{
			"client_assertion_type": {lti.ClientAssertionType},
			"client_assertion":      {assertion},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))
	if err != nil {
		authErr := &lti.ServiceAuthError{Endpoint: registration.AuthTokenURL, Err: err}

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}

		c.logger.Errorf("service token exchange with %s failed: %v", registration.AuthTokenURL, err)
		return "", authErr
	}

	c.mu.Lock()
	c.tokens[key] = token
	c.mu.Unlock()

	return token.AccessToken, nil
}

// scoresURL appends /scores to the line item path and keeps its query.
func scoresURL(lineItem string) (string, error) {
	u, err := url.Parse(lineItem)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: invalid line item url", lti.ErrBadRequest)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/scores"
	if u.RawPath != "" {
		u.RawPath = strings.TrimSuffix(u.RawPath, "/") + "/scores"
	}

	return u.String(), nil
}

func (c *Client) SubmitGrade(ctx context.Context, claims *lti.LaunchClaims, score *ScoreSubmission) error {
	ctx, span := c.tracer.Start(ctx, "ltiservices.Client.SubmitGrade")
	defer span.End()

	if err := c.validate.Struct(score); err != nil {
		return fmt.Errorf("%w: invalid score: %v", lti.ErrBadRequest, err)
	}

	lineItem := score.LineItemID
	if lineItem == "" && claims.AGS != nil {
		lineItem = claims.AGS.LineItem
	}
	if lineItem == "" {
		return fmt.Errorf("%w: no line item to submit to", lti.ErrBadRequest)
	}

	endpoint, err := scoresURL(lineItem)
	if err != nil {
		return err
	}

	token, err := c.GetServiceAccessToken(ctx, claims, []string{lti.ScopeScore})
	if err != nil {
		return err
	}

	body, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}

	return c.do(ctx, http.MethodPost, endpoint, token, lti.MediaTypeScore, "", body, nil)
}

// GetLineItems lists the line items of the launch context, it returns nil
// on any failure.
func (c *Client) GetLineItems(ctx context.Context, claims *lti.LaunchClaims) []LineItem {
	ctx, span := c.tracer.Start(ctx, "ltiservices.Client.GetLineItems")
	defer span.End()

	if claims.AGS == nil || claims.AGS.LineItems == "" {
		return nil
	}

	token, err := c.GetServiceAccessToken(ctx, claims, []string{lti.ScopeLineItemReadOnly})
	if err != nil {
		c.logger.Warnf("line items unavailable: %v", err)
		return nil
	}

	items := []LineItem{}
	if err := c.do(ctx, http.MethodGet, claims.AGS.LineItems, token, "", lti.MediaTypeLineItemContainer, nil, &items); err != nil {
		c.logger.Warnf("line items unavailable: %v", err)
		return nil
	}

	return items
}

// GetContextMembership fetches the course roster, it returns nil on any failure.
func (c *Client) GetContextMembership(ctx context.Context, claims *lti.LaunchClaims) *MembershipContainer {
	ctx, span := c.tracer.Start(ctx, "ltiservices.Client.GetContextMembership")
	defer span.End()

	if claims.NRPS == nil || claims.NRPS.ContextMembershipsURL == "" {
		return nil
	}

	token, err := c.GetServiceAccessToken(ctx, claims, []string{lti.ScopeNRPSMembership})
	if err != nil {
		c.logger.Warnf("context membership unavailable: %v", err)
		return nil
	}

	membership := new(MembershipContainer)
	if err := c.do(ctx, http.MethodGet, claims.NRPS.ContextMembershipsURL, token, "", lti.MediaTypeMembershipContainer, nil, membership); err != nil {
		c.logger.Warnf("context membership unavailable: %v", err)
		return nil
	}

	return membership
}

func (c *Client) do(ctx context.Context, method, endpoint, token, contentType, accept string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &lti.RemoteServiceError{Endpoint: endpoint, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &lti.RemoteServiceError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &lti.RemoteServiceError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(snippet))),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &lti.RemoteServiceError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	return nil
}

func NewClient(
	registry RegistryInterface,
	signer SignerInterface,
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Client {
	c := new(Client)

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c.registry = registry
	c.signer = signer

	c.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	c.timeout = timeout
	c.tokens = make(map[string]*oauth2.Token)

	c.validate = validator.New()
	c.now = time.Now

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
