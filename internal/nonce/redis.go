// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package nonce

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/monitoring"
	"github.com/canonical/lti-service/internal/tracing"
)

const redisKeyPrefix = "lti:nonce:"

var _ NonceStore = (*RedisStore)(nil)

// RedisStore shares nonces across instances. SET NX EX records a value and
// GETDEL consumes it, so each value validates at most once cluster wide.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *RedisStore) key(n string) string {
	return redisKeyPrefix + n
}

func (s *RedisStore) Issue(ctx context.Context) (string, error) {
	ctx, span := s.tracer.Start(ctx, "nonce.RedisStore.Issue")
	defer span.End()

	n, err := Generate()
	if err != nil {
		return "", err
	}

	ok, err := s.client.SetNX(ctx, s.key(n), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		s.setAvailability(false)
		return "", fmt.Errorf("failed to store nonce: %w", err)
	}
	s.setAvailability(true)

	if !ok {
		return "", errors.New("nonce collision")
	}

	return n, nil
}

func (s *RedisStore) ValidateAndConsume(ctx context.Context, n string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "nonce.RedisStore.ValidateAndConsume")
	defer span.End()

	if n == "" {
		return false, nil
	}

	err := s.client.GetDel(ctx, s.key(n)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		s.setAvailability(false)
		return false, fmt.Errorf("failed to consume nonce: %w", err)
	}
	s.setAvailability(true)

	return true, nil
}

func (s *RedisStore) setAvailability(up bool) {
	v := 0.0
	if up {
		v = 1.0
	}
	_ = s.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, v)
}

// Ping reports whether redis answers, it backs the readiness check.
func (s *RedisStore) Ping(ctx context.Context) error {
	err := s.client.Ping(ctx).Err()
	s.setAvailability(err == nil)

	return err
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := new(RedisStore)
	s.client = client
	s.ttl = ttl

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
