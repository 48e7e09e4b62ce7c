// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/canonical/lti-service/internal/config"
	"github.com/canonical/lti-service/internal/db"
	"github.com/canonical/lti-service/internal/identity"
	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/monitoring/prometheus"
	"github.com/canonical/lti-service/internal/nonce"
	"github.com/canonical/lti-service/internal/ratelimit"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/tracing"
	"github.com/canonical/lti-service/migrations"
	"github.com/canonical/lti-service/pkg/authentication"
	"github.com/canonical/lti-service/pkg/deeplinking"
	"github.com/canonical/lti-service/pkg/keys"
	"github.com/canonical/lti-service/pkg/launch"
	"github.com/canonical/lti-service/pkg/ltiservices"
	"github.com/canonical/lti-service/pkg/resolver"
	"github.com/canonical/lti-service/pkg/status"
	"github.com/canonical/lti-service/pkg/toolconfig"
	"github.com/canonical/lti-service/pkg/web"
	"github.com/canonical/lti-service/pkg/webhooks"
)

const (
	nonceStoreMemory = "memory"
	nonceStoreRedis  = "redis"

	rateLimitSweepInterval = time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type nonceBackend interface {
	nonce.NonceStore
	io.Closer
}

// newNonceStore picks the nonce backend, redis is required once more than one
// replica serves launches.
func newNonceStore(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (nonceBackend, status.PingerInterface, error) {
	switch specs.NonceStore {
	case nonceStoreMemory:
		logger.Info("Using in memory nonce store")
		return nonce.NewMemoryStore(specs.NonceTTL, tracer, logger), nil, nil
	case nonceStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddress,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		store := nonce.NewRedisStore(client, specs.NonceTTL, tracer, monitor, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis is not reachable at %s: %w", specs.RedisAddress, err)
		}

		logger.Infof("Using redis nonce store at %s", specs.RedisAddress)
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown nonce store %q", specs.NonceStore)
	}
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("lti-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	toolConfiguration, err := toolconfig.Build(specs.ToolBaseURL, specs.ToolTitle)
	if err != nil {
		return err
	}

	registrations, err := config.LoadPlatforms(specs.PlatformsFile)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d static platform registrations", len(registrations))

	catalog, err := deeplinking.LoadCatalog(specs.ContentPackagesFile)
	if err != nil {
		return err
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	if pending, version, err := migrations.Pending(context.Background(), dbClient.SQL()); err != nil {
		logger.Warnf("unable to check schema migrations: %v", err)
	} else if pending {
		logger.Warnf("database schema at version %d has pending migrations, run the migrate command", version)
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	keyManager := keys.NewManager(
		keys.Config{
			KeyFile:        specs.SigningKeyFile,
			KeyPEM:         specs.SigningKeyPEM,
			AllowGenerated: specs.AllowGeneratedKey,
		},
		tracer,
		monitor,
		logger,
	)
	if err := keyManager.Initialize(context.Background()); err != nil {
		if !specs.DeepLinkingHMACEnabled {
			return fmt.Errorf("signing key unavailable: %w", err)
		}
		logger.Warnf("signing key unavailable, deep linking responses fall back to HS256: %v", err)
	}

	nonces, noncePinger, err := newNonceStore(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer nonces.Close()

	dependencies := map[string]status.PingerInterface{"database": dbClient}
	if noncePinger != nil {
		dependencies["redis"] = noncePinger
	}

	clientID := specs.ToolClientID
	if clientID == "" {
		clientID = specs.ToolBaseURL
	}

	registry := launch.NewRegistry(s, registrations, tracer)
	verifier := authentication.NewPlatformVerifier(
		&http.Client{Timeout: specs.ServiceTimeout},
		specs.JWKSCacheTTL,
		tracer,
		monitor,
		logger,
	)

	deepLinkingService := deeplinking.NewService(
		deeplinking.Config{
			ClientID:    clientID,
			LaunchURL:   toolConfiguration.TargetLinkURI,
			HMACEnabled: specs.DeepLinkingHMACEnabled,
			HMACSecret:  specs.DeepLinkingHMACSecret,
		},
		s,
		catalog,
		nonces,
		keyManager,
		tracer,
		monitor,
		logger,
	)

	launchService := launch.NewService(
		launch.Config{
			LaunchURL:   toolConfiguration.TargetLinkURI,
			AppEntryURL: specs.AppEntryURL,
		},
		s,
		registry,
		nonces,
		verifier,
		resolver.NewService(s, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	servicesClient := ltiservices.NewClient(registry, keyManager, specs.ServiceTimeout, tracer, monitor, logger)
	grader := ltiservices.NewService(s, servicesClient, tracer, monitor, logger)

	if specs.WebhookToken == "" {
		logger.Warn("WEBHOOK_TOKEN is empty, the assessment completion hook accepts unauthenticated calls")
	}

	trustedProxies, err := ratelimit.ParseTrustedProxies(specs.TrustedProxies)
	if err != nil {
		return err
	}

	limiter := ratelimit.NewLimiter(specs.RateLimitRPS, specs.RateLimitBurst, trustedProxies, logger)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go limiter.Run(sweepCtx, rateLimitSweepInterval)

	router := web.NewRouter(
		web.APIs{
			Launch:      launch.NewAPI(launchService, deepLinkingService, tracer, logger),
			DeepLinking: deeplinking.NewAPI(deepLinkingService, tracer, logger),
			Services:    ltiservices.NewAPI(servicesClient, tracer, logger),
			Webhooks:    webhooks.NewAPI(webhooks.NewService(s, grader, tracer, monitor, logger), tracer, logger),
			Keys:        keys.NewAPI(keyManager, tracer, logger),
			ToolConfig:  toolconfig.NewAPI(toolConfiguration, logger),
			Status:      status.NewAPI(dependencies, keyManager, tracer, monitor, logger),
		},
		identity.NewMiddleware(s, specs.SessionTTL, tracer, monitor, logger),
		authentication.NewMiddleware(specs.WebhookToken, tracer, monitor, logger),
		limiter,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
