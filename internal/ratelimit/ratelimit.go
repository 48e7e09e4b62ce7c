// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/canonical/lti-service/internal/logging"
)

const (
	// idleTimeout is how long an unused client limiter is kept.
	idleTimeout = 10 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter throttles requests per client address with a token bucket.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client

	limit rate.Limit
	burst int

	trustedProxies []netip.Prefix

	now func() time.Time

	logger logging.LoggerInterface
}

func (l *Limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Cleanup drops limiters of clients idle for longer than the idle timeout
// and returns how many were removed.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idleTimeout)
	removed := 0
	for k, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, k)
			removed++
		}
	}

	return removed
}

// Run calls Cleanup on every tick until ctx is done.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := l.Cleanup(); removed > 0 {
				l.logger.Debugf("dropped %d idle rate limiters", removed)
			}
		case <-ctx.Done():
			return
		}
	}
}

// ParseTrustedProxies accepts CIDR ranges or single addresses.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", v, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}

		a, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", v, err)
		}
		a = a.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(a, a.BitLen()))
	}

	return prefixes, nil
}

func (l *Limiter) trusted(a netip.Addr) bool {
	a = a.Unmap()
	for _, p := range l.trustedProxies {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// clientAddress keys on the peer address. X-Forwarded-For is only read when
// the peer is a trusted proxy, walking it right to left to the first
// untrusted hop.
func (l *Limiter) clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	peer, err := netip.ParseAddr(host)
	if err != nil || !l.trusted(peer) {
		return host
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !l.trusted(hop) {
			return hop.Unmap().String()
		}
	}

	return host
}

// Middleware answers 429 once a client exhausts its bucket.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.clientAddress(r)

		if !l.allow(key) {
			l.logger.Debugf("rate limit exceeded for %s on %s", key, r.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewLimiter allows rps requests per second per client with the given burst.
// A non positive rps disables limiting. Forwarding headers are honoured only
// from peers inside trustedProxies.
func NewLimiter(rps float64, burst int, trustedProxies []netip.Prefix, logger logging.LoggerInterface) *Limiter {
	l := new(Limiter)

	l.clients = make(map[string]*client)
	l.limit = rate.Limit(rps)
	if rps <= 0 {
		l.limit = rate.Inf
	}
	l.burst = burst
	if l.burst < 1 {
		l.burst = 1
	}

	l.trustedProxies = trustedProxies

	l.now = time.Now

	l.logger = logger

	return l
}
