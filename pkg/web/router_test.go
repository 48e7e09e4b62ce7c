// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/lti-service/internal/config"
	"github.com/canonical/lti-service/internal/identity"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/nonce"
	"github.com/canonical/lti-service/internal/ratelimit"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/internal/types"
	"github.com/canonical/lti-service/pkg/authentication"
	"github.com/canonical/lti-service/pkg/deeplinking"
	"github.com/canonical/lti-service/pkg/keys"
	"github.com/canonical/lti-service/pkg/launch"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/ltiservices"
	"github.com/canonical/lti-service/pkg/resolver"
	"github.com/canonical/lti-service/pkg/status"
	"github.com/canonical/lti-service/pkg/toolconfig"
	"github.com/canonical/lti-service/pkg/webhooks"
)

const (
	testIssuer       = "https://canvas.example.com"
	testClientID     = "tool-client"
	testDeploymentID = "dep-1"
	testAppEntryURL  = "https://app.example.com/start"
)

var jwtFieldPattern = regexp.MustCompile(`name="JWT" value="([^"]+)"`)

// fakePlatform plays the LMS side: it signs launches, serves its JWKS and
// answers the service endpoints.
type fakePlatform struct {
	t      *testing.T
	server *httptest.Server
	keys   *keys.Manager

	mu             sync.Mutex
	assertions     []string
	scores         []ltiservices.ScoreSubmission
	scoreAuthorize []string
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()

	logger := logging.NewNoopLogger()
	p := &fakePlatform{
		t:    t,
		keys: keys.NewManager(keys.Config{AllowGenerated: true}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger),
	}
	require.NoError(t, p.keys.Initialize(context.Background()))

	mux := chi.NewMux()
	mux.Get("/jwks", func(w http.ResponseWriter, r *http.Request) {
		set, err := p.keys.GetPublicKeySet(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	})
	mux.Post("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostFormValue("grant_type") != "client_credentials" || r.PostFormValue("client_assertion_type") != lti.ClientAssertionType {
			http.Error(w, `{"error":"invalid_request"}`, http.StatusBadRequest)
			return
		}

		p.mu.Lock()
		p.assertions = append(p.assertions, r.PostFormValue("client_assertion"))
		p.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"platform-token","token_type":"Bearer","expires_in":3600}`)
	})
	mux.Post("/lineitems/1/lineitem/scores", func(w http.ResponseWriter, r *http.Request) {
		var score ltiservices.ScoreSubmission
		if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p.mu.Lock()
		p.scores = append(p.scores, score)
		p.scoreAuthorize = append(p.scoreAuthorize, r.Header.Get("Authorization"))
		p.mu.Unlock()

		w.WriteHeader(http.StatusOK)
	})
	mux.Get("/memberships", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", lti.MediaTypeMembershipContainer)
		_ = json.NewEncoder(w).Encode(ltiservices.MembershipContainer{
			ID:      "memberships-1",
			Context: ltiservices.MembershipContext{ID: "course-1", Title: "Course"},
			Members: []ltiservices.Member{{UserID: "u1", Roles: []string{"Learner"}}},
		})
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)

	return p
}

func (p *fakePlatform) registration() config.PlatformRegistration {
	return config.PlatformRegistration{
		Issuer:        testIssuer,
		Name:          "Canvas",
		ClientID:      testClientID,
		AuthLoginURL:  p.server.URL + "/authorize",
		AuthTokenURL:  p.server.URL + "/token",
		KeySetURL:     p.server.URL + "/jwks",
		DeploymentIDs: []string{testDeploymentID},
	}
}

func (p *fakePlatform) lineItem() string {
	return p.server.URL + "/lineitems/1/lineitem"
}

func (p *fakePlatform) idToken(nonce string, extra jwt.MapClaims) string {
	p.t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":                 testIssuer,
		"sub":                 "u1",
		"aud":                 testClientID,
		"exp":                 now.Add(5 * time.Minute).Unix(),
		"iat":                 now.Unix(),
		"nonce":               nonce,
		"name":                "Ada Lovelace",
		lti.ClaimVersion:      lti.Version,
		lti.ClaimDeploymentID: testDeploymentID,
		lti.ClaimContext:      map[string]any{"id": "course-1", "title": "Course"},
		lti.ClaimRoles:        []string{"http://purl.imsglobal.org/vocab/lis/v2/membership#Learner"},
	}
	for k, v := range extra {
		claims[k] = v
	}

	signed, err := p.keys.Sign(context.Background(), claims)
	require.NoError(p.t, err)

	return signed
}

type testEnvironment struct {
	server   *httptest.Server
	client   *http.Client
	storage  *memoryStorage
	platform *fakePlatform
	toolKeys *keys.Manager
}

func newTestEnvironment(t *testing.T, limiter *ratelimit.Limiter) *testEnvironment {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	env := &testEnvironment{
		storage:  newMemoryStorage(),
		platform: newFakePlatform(t),
		toolKeys: keys.NewManager(keys.Config{AllowGenerated: true}, tracer, monitor, logger),
	}
	require.NoError(t, env.toolKeys.Initialize(context.Background()))

	if limiter == nil {
		limiter = ratelimit.NewLimiter(0, 0, nil, logger)
	}

	nonces := nonce.NewMemoryStore(5*time.Minute, tracer, logger)
	t.Cleanup(func() { _ = nonces.Close() })

	// the tool base url is only known once the server listens
	var handler http.Handler
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(env.server.Close)
	toolURL := env.server.URL

	registry := launch.NewRegistry(env.storage, []config.PlatformRegistration{env.platform.registration()}, tracer)
	verifier := authentication.NewPlatformVerifier(http.DefaultClient, time.Hour, tracer, monitor, logger)

	catalog := deeplinking.NewStaticCatalog([]deeplinking.ContentPackage{
		{ID: "pkg-1", Name: "Intro to Go", Description: "Basics"},
		{ID: "pkg-2", Name: "Concurrency"},
	})
	deepLinking := deeplinking.NewService(
		deeplinking.Config{ClientID: testClientID, LaunchURL: toolURL + "/launch"},
		env.storage,
		catalog,
		nonces,
		env.toolKeys,
		tracer,
		monitor,
		logger,
	)

	launchService := launch.NewService(
		launch.Config{LaunchURL: toolURL + "/launch", AppEntryURL: testAppEntryURL},
		env.storage,
		registry,
		nonces,
		verifier,
		resolver.NewService(env.storage, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	client := ltiservices.NewClient(registry, env.toolKeys, 5*time.Second, tracer, monitor, logger)
	grader := ltiservices.NewService(env.storage, client, tracer, monitor, logger)

	toolConfiguration, err := toolconfig.Build(toolURL, "Tutor")
	require.NoError(t, err)

	database := &fakePinger{}
	handler = NewRouter(
		APIs{
			Launch:      launch.NewAPI(launchService, deepLinking, tracer, logger),
			DeepLinking: deeplinking.NewAPI(deepLinking, tracer, logger),
			Services:    ltiservices.NewAPI(client, tracer, logger),
			Webhooks:    webhooks.NewAPI(webhooks.NewService(env.storage, grader, tracer, monitor, logger), tracer, logger),
			Keys:        keys.NewAPI(env.toolKeys, tracer, logger),
			ToolConfig:  toolconfig.NewAPI(toolConfiguration, logger),
			Status:      status.NewAPI(map[string]status.PingerInterface{"database": database}, env.toolKeys, tracer, monitor, logger),
		},
		identity.NewMiddleware(env.storage, time.Hour, tracer, monitor, logger),
		authentication.NewMiddleware("", tracer, monitor, logger),
		limiter,
		[]string{"https://app.example.com"},
		tracer,
		monitor,
		logger,
	)

	env.client = &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return env
}

// login runs the third party initiated login and returns the state cookie
// and the nonce the platform has to echo.
func (e *testEnvironment) login(t *testing.T) (*http.Cookie, string, string) {
	t.Helper()

	form := url.Values{
		"iss":               {testIssuer},
		"login_hint":        {"u1"},
		"target_link_uri":   {e.server.URL + "/launch"},
		"client_id":         {testClientID},
		"lti_deployment_id": {testDeploymentID},
	}

	resp, err := e.client.PostForm(e.server.URL+"/login", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, e.platform.server.URL+"/authorize", location.Scheme+"://"+location.Host+location.Path)
	assert.Equal(t, e.server.URL+"/launch", location.Query().Get("redirect_uri"))
	assert.Equal(t, testClientID, location.Query().Get("client_id"))

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "lti_state" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.Equal(t, location.Query().Get("state"), cookie.Value)

	return cookie, location.Query().Get("state"), location.Query().Get("nonce")
}

func (e *testEnvironment) launch(t *testing.T, cookie *http.Cookie, state, idToken string) *http.Response {
	t.Helper()

	form := url.Values{"id_token": {idToken}, "state": {state}}
	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/launch", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func (e *testEnvironment) resourceLinkLaunch(t *testing.T) *types.LaunchSession {
	t.Helper()

	cookie, state, nonce := e.login(t)
	token := e.platform.idToken(nonce, jwt.MapClaims{
		lti.ClaimMessageType:  lti.MessageTypeResourceLink,
		lti.ClaimResourceLink: map[string]any{"id": "rl-1", "title": "Week 1"},
		lti.ClaimCustom:       map[string]any{lti.CustomPackageID: "pkg-1"},
		lti.ClaimAGSEndpoint: map[string]any{
			"scope":     []string{lti.ScopeScore, lti.ScopeLineItemReadOnly},
			"lineitem":  e.platform.lineItem(),
			"lineitems": e.platform.server.URL + "/lineitems",
		},
		lti.ClaimNRPS: map[string]any{
			"context_memberships_url": e.platform.server.URL + "/memberships",
			"service_versions":        []string{"2.0"},
		},
	})

	resp := e.launch(t, cookie, state, token)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	session := e.storage.onlySession(lti.MessageTypeResourceLink)
	require.NotNil(t, session)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(location.String(), testAppEntryURL))
	assert.Equal(t, session.ID, location.Query().Get("session"))
	assert.Equal(t, "pkg-1", location.Query().Get("package"))
	assert.NotEmpty(t, location.Query().Get("claims"))

	return session
}

func TestRouter_ResourceLinkLaunch(t *testing.T) {
	env := newTestEnvironment(t, nil)

	session := env.resourceLinkLaunch(t)

	assert.Equal(t, lti.MessageTypeResourceLink, session.MessageType)
	assert.Equal(t, "pkg-1", session.PackageID)
	assert.NotEmpty(t, session.PlatformID)
	assert.NotEmpty(t, session.ContextID)
	assert.NotEmpty(t, session.UserID)
	assert.NotEmpty(t, session.TenantID)

	// the roster is read on behalf of the launch session
	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/nrps/course-1", nil)
	require.NoError(t, err)
	req.Header.Set(identity.HeaderName, session.ID)

	resp, err := env.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var membership ltiservices.MembershipContainer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&membership))
	require.Len(t, membership.Members, 1)
	assert.Equal(t, "u1", membership.Members[0].UserID)
}

func TestRouter_ExpiredSessionIsRejected(t *testing.T) {
	env := newTestEnvironment(t, nil)

	session := env.resourceLinkLaunch(t)

	env.storage.mu.Lock()
	env.storage.sessions[session.ID].CreatedAt = time.Now().Add(-2 * time.Hour)
	env.storage.mu.Unlock()

	env.platform.mu.Lock()
	tokenRequests := len(env.platform.assertions)
	env.platform.mu.Unlock()

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/nrps/course-1", nil)
	require.NoError(t, err)
	req.Header.Set(identity.HeaderName, session.ID)

	resp, err := env.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env.platform.mu.Lock()
	defer env.platform.mu.Unlock()
	assert.Len(t, env.platform.assertions, tokenRequests)
}

func TestRouter_ReplayedLaunchIsRejected(t *testing.T) {
	env := newTestEnvironment(t, nil)

	cookie, state, nonce := env.login(t)
	token := env.platform.idToken(nonce, jwt.MapClaims{
		lti.ClaimMessageType:  lti.MessageTypeResourceLink,
		lti.ClaimResourceLink: map[string]any{"id": "rl-1"},
	})

	first := env.launch(t, cookie, state, token)
	require.Equal(t, http.StatusFound, first.StatusCode)

	second := env.launch(t, cookie, state, token)
	assert.Equal(t, http.StatusUnauthorized, second.StatusCode)

	body, err := io.ReadAll(second.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), nonce)
}

func TestRouter_DeepLinkingRoundTrip(t *testing.T) {
	env := newTestEnvironment(t, nil)

	cookie, state, nonce := env.login(t)
	token := env.platform.idToken(nonce, jwt.MapClaims{
		lti.ClaimMessageType: lti.MessageTypeDeepLinkingRequest,
		lti.ClaimDeepLinkingSettings: map[string]any{
			"deep_link_return_url": env.platform.server.URL + "/deep_links",
			"accept_types":         []string{lti.ContentItemTypeResourceLink},
			"data":                 "opaque-data",
		},
	})

	resp := env.launch(t, cookie, state, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(page), "<form"))
	assert.Contains(t, string(page), "Intro to Go")

	session := env.storage.onlySession(lti.MessageTypeDeepLinkingRequest)
	require.NotNil(t, session)

	selectResp, err := env.client.PostForm(env.server.URL+deeplinking.SelectPath, url.Values{
		"session":    {session.ID},
		"package_id": {"pkg-2"},
	})
	require.NoError(t, err)
	defer selectResp.Body.Close()

	require.Equal(t, http.StatusOK, selectResp.StatusCode)

	form, err := io.ReadAll(selectResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(form), env.platform.server.URL+"/deep_links")

	match := jwtFieldPattern.FindStringSubmatch(string(form))
	require.Len(t, match, 2)

	signingKey, err := env.toolKeys.GetSigningKey(context.Background())
	require.NoError(t, err)

	claims := new(deeplinking.ResponseClaims)
	parsed, err := jwt.ParseWithClaims(match[1], claims, func(*jwt.Token) (any, error) {
		return &signingKey.Key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, signingKey.KeyID, parsed.Header["kid"])
	assert.Equal(t, testClientID, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testIssuer}, claims.Audience)
	assert.Equal(t, lti.MessageTypeDeepLinkingResponse, claims.MessageType)
	assert.Equal(t, testDeploymentID, claims.DeploymentID)
	assert.Equal(t, "opaque-data", claims.Data)
	require.Len(t, claims.ContentItems, 1)
	assert.Equal(t, lti.ContentItemTypeResourceLink, claims.ContentItems[0].Type)
	assert.Equal(t, "pkg-2", claims.ContentItems[0].Custom[lti.CustomPackageID])
}

func TestRouter_AssessmentCompletionPassback(t *testing.T) {
	env := newTestEnvironment(t, nil)

	session := env.resourceLinkLaunch(t)

	body := `{"session_id":"` + session.ID + `","content_knowledge_score":80,"writing_score":60,"comment":"Well done"}`
	resp, err := env.client.Post(env.server.URL+"/webhooks/assessment-completion", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result webhooks.AssessmentCompletionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, float64(70), result.Score)
	assert.Equal(t, float64(100), result.MaxScore)
	assert.Equal(t, string(types.GradeStatusSubmittedToLMS), result.Status)
	assert.Equal(t, string(ltiservices.PassbackSubmitted), result.Passback)

	grades := env.storage.gradesFor(session.ID)
	require.Len(t, grades, 1)
	assert.Equal(t, types.GradeStatusSubmittedToLMS, grades[0].Status)
	assert.Equal(t, env.platform.lineItem(), grades[0].LineItemID)

	env.platform.mu.Lock()
	defer env.platform.mu.Unlock()

	require.Len(t, env.platform.scores, 1)
	score := env.platform.scores[0]
	assert.Equal(t, "u1", score.UserID)
	assert.Equal(t, float64(70), score.ScoreGiven)
	assert.Equal(t, float64(100), score.ScoreMaximum)
	assert.Equal(t, ltiservices.ActivityProgressCompleted, score.ActivityProgress)
	assert.Equal(t, ltiservices.GradingProgressFullyGraded, score.GradingProgress)
	assert.Equal(t, "Bearer platform-token", env.platform.scoreAuthorize[0])

	require.Len(t, env.platform.assertions, 1)
	signingKey, err := env.toolKeys.GetSigningKey(context.Background())
	require.NoError(t, err)

	assertion := new(jwt.RegisteredClaims)
	_, err = jwt.ParseWithClaims(env.platform.assertions[0], assertion, func(*jwt.Token) (any, error) {
		return &signingKey.Key.PublicKey, nil
	})
	require.NoError(t, err)
	assert.Equal(t, testClientID, assertion.Issuer)
	assert.Equal(t, testClientID, assertion.Subject)
	assert.Equal(t, jwt.ClaimStrings{env.platform.server.URL + "/token"}, assertion.Audience)
}

func TestRouter_PassbackSurvivesStatusUpdateFailure(t *testing.T) {
	env := newTestEnvironment(t, nil)

	session := env.resourceLinkLaunch(t)

	env.storage.mu.Lock()
	env.storage.gradeStatusErr = errors.New("connection reset")
	env.storage.mu.Unlock()

	body := `{"session_id":"` + session.ID + `","content_knowledge_score":90,"writing_score":70}`
	resp, err := env.client.Post(env.server.URL+"/webhooks/assessment-completion", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result webhooks.AssessmentCompletionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, string(ltiservices.PassbackSubmitted), result.Passback)

	grades := env.storage.gradesFor(session.ID)
	require.Len(t, grades, 1)
	assert.Equal(t, float64(80), grades[0].Score)
	assert.Equal(t, types.GradeStatusSubmitted, grades[0].Status)

	env.platform.mu.Lock()
	defer env.platform.mu.Unlock()
	require.Len(t, env.platform.scores, 1)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	env := newTestEnvironment(t, nil)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "jwks", path: "/jwks", expectedStatus: http.StatusOK, expectedBody: `"kty":"RSA"`},
		{name: "well known jwks", path: "/.well-known/jwks.json", expectedStatus: http.StatusOK, expectedBody: `"keys"`},
		{name: "tool configuration", path: "/config", expectedStatus: http.StatusOK, expectedBody: `"oidc_initiation_url":"` + env.server.URL + `/login"`},
		{name: "status", path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "ready", path: "/api/v0/ready", expectedStatus: http.StatusOK},
		{name: "metrics", path: "/api/v0/metrics", expectedStatus: http.StatusOK},
		{name: "services need a session", path: "/nrps/course-1", expectedStatus: http.StatusUnauthorized},
		{name: "unknown route", path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp, err := env.client.Get(env.server.URL + test.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, test.expectedStatus, resp.StatusCode)

			if test.expectedBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), test.expectedBody)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	env := newTestEnvironment(t, nil)

	req, err := http.NewRequest(http.MethodOptions, env.server.URL+"/nrps/course-1", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", identity.HeaderName)

	resp, err := env.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitedLogin(t *testing.T) {
	env := newTestEnvironment(t, ratelimit.NewLimiter(0.001, 1, nil, logging.NewNoopLogger()))

	first, err := env.client.Get(env.server.URL + "/login")
	require.NoError(t, err)
	first.Body.Close()
	assert.Equal(t, http.StatusBadRequest, first.StatusCode)

	second, err := env.client.Get(env.server.URL + "/login")
	require.NoError(t, err)
	second.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.NotEmpty(t, second.Header.Get("Retry-After"))
}

func TestRouter_GuardedEndpoints(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)
	toolKeys := keys.NewManager(keys.Config{AllowGenerated: true}, tracer, monitor, logger)
	s := newMemoryStorage()
	database := &fakePinger{err: errors.New("connection refused")}

	cfg, err := toolconfig.Build("https://tool.example.com", "Tutor")
	require.NoError(t, err)

	router := NewRouter(
		APIs{
			Launch:      launch.NewAPI(nil, nil, tracer, logger),
			DeepLinking: deeplinking.NewAPI(nil, tracer, logger),
			Services:    ltiservices.NewAPI(nil, tracer, logger),
			Webhooks:    webhooks.NewAPI(nil, tracer, logger),
			Keys:        keys.NewAPI(toolKeys, tracer, logger),
			ToolConfig:  toolconfig.NewAPI(cfg, logger),
			Status:      status.NewAPI(map[string]status.PingerInterface{"database": database}, toolKeys, tracer, monitor, logger),
		},
		identity.NewMiddleware(s, time.Hour, tracer, monitor, logger),
		authentication.NewMiddleware("webhook-token", tracer, monitor, logger),
		ratelimit.NewLimiter(0, 0, nil, logger),
		[]string{"*"},
		tracer,
		monitor,
		logger,
	)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/webhooks/assessment-completion", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
