// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package nonce

import (
	"context"
	"sync"
	"time"

	"github.com/canonical/lti-service/internal/logging"
	"github.com/canonical/lti-service/internal/tracing"
)

var _ NonceStore = (*MemoryStore)(nil)

// MemoryStore keeps nonces in process memory, it is only safe for a single instance.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time

	ttl  time.Duration
	now  func() time.Time
	done chan struct{}
	once sync.Once

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *MemoryStore) Issue(ctx context.Context) (string, error) {
	_, span := s.tracer.Start(ctx, "nonce.MemoryStore.Issue")
	defer span.End()

	n, err := Generate()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[n] = s.now()
	s.mu.Unlock()

	return n, nil
}

func (s *MemoryStore) ValidateAndConsume(ctx context.Context, n string) (bool, error) {
	_, span := s.tracer.Start(ctx, "nonce.MemoryStore.ValidateAndConsume")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.entries[n]
	if !ok {
		return false, nil
	}

	delete(s.entries, n)

	return s.now().Sub(issued) <= s.ttl, nil
}

// Sweep removes every entry older than the TTL and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for n, issued := range s.entries {
		if issued.Before(cutoff) {
			delete(s.entries, n)
			removed++
		}
	}

	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *MemoryStore) sweeper() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Debugf("swept %d expired nonces", removed)
			}
		case <-s.done:
			return
		}
	}
}

// Close stops the background sweep.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// NewMemoryStore creates a store and starts a sweep running every ttl.
func NewMemoryStore(ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *MemoryStore {
	s := newMemoryStore(ttl, time.Now, tracer, logger)

	go s.sweeper()

	return s
}

func newMemoryStore(ttl time.Duration, now func() time.Time, tracer tracing.TracingInterface, logger logging.LoggerInterface) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := new(MemoryStore)
	s.entries = make(map[string]time.Time)
	s.ttl = ttl
	s.now = now
	s.done = make(chan struct{})

	s.tracer = tracer
	s.logger = logger

	return s
}
