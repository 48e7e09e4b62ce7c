// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// ToolBaseURL is the public URL the tool is reachable at, launch and
	// login endpoints are derived from it.
	ToolBaseURL  string `envconfig:"tool_base_url" required:"true"`
	ToolTitle    string `envconfig:"tool_title" default:"LTI Tool"`
	ToolClientID string `envconfig:"tool_client_id"`
	DeploymentID string `envconfig:"deployment_id"`
	AppEntryURL  string `envconfig:"app_entry_url" required:"true"`

	SigningKeyFile    string `envconfig:"signing_key_file"`
	SigningKeyPEM     string `envconfig:"signing_key_pem"`
	AllowGeneratedKey bool   `envconfig:"allow_generated_key" default:"false"`

	DeepLinkingHMACEnabled bool   `envconfig:"deep_linking_hmac_enabled" default:"false"`
	DeepLinkingHMACSecret  string `envconfig:"deep_linking_hmac_secret"`

	NonceStore    string        `envconfig:"nonce_store" default:"memory"`
	NonceTTL      time.Duration `envconfig:"nonce_ttl" default:"5m"`
	RedisAddress  string        `envconfig:"redis_address" default:"localhost:6379"`
	RedisPassword string        `envconfig:"redis_password"`
	RedisDB       int           `envconfig:"redis_db" default:"0"`

	ServiceTimeout time.Duration `envconfig:"service_timeout" default:"10s"`
	JWKSCacheTTL   time.Duration `envconfig:"jwks_cache_ttl" default:"1h"`

	PlatformsFile       string `envconfig:"platforms_file"`
	ContentPackagesFile string `envconfig:"content_packages_file"`

	// WebhookToken is the bearer token the application presents on the
	// assessment completion hook.
	WebhookToken string `envconfig:"webhook_token"`

	RateLimitRPS   float64 `envconfig:"rate_limit_rps" default:"10"`
	RateLimitBurst int     `envconfig:"rate_limit_burst" default:"20"`
	// TrustedProxies lists CIDRs or addresses whose X-Forwarded-For is honoured.
	TrustedProxies []string `envconfig:"trusted_proxies"`

	SessionTTL time.Duration `envconfig:"session_ttl" default:"8h"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
