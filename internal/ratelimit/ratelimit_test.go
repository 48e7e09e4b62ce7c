// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"slices"
	"testing"
	"time"

	"github.com/canonical/lti-service/internal/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func request(remote, forwarded string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/launch", nil)
	req.RemoteAddr = remote
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	return req
}

func TestLimiter_Middleware(t *testing.T) {
	now := time.Unix(1700000000, 0)

	l := NewLimiter(1, 2, nil, logging.NewNoopLogger())
	l.now = func() time.Time { return now }

	handler := l.Middleware(okHandler())

	expected := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i, status := range expected {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("10.0.0.1:1234", ""))
		if rr.Code != status {
			t.Fatalf("request %d: expected status %d, got %d", i, status, rr.Code)
		}
		if status == http.StatusTooManyRequests && rr.Header().Get("Retry-After") == "" {
			t.Errorf("expected Retry-After header")
		}
	}

	// other clients have their own bucket
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, request("10.0.0.2:1234", ""))
	if rr.Code != http.StatusOK {
		t.Errorf("expected a separate bucket per client, got %d", rr.Code)
	}

	// tokens refill over time
	now = now.Add(time.Second)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, request("10.0.0.1:1234", ""))
	if rr.Code != http.StatusOK {
		t.Errorf("expected refilled bucket, got %d", rr.Code)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	handler := NewLimiter(0, 0, nil, logging.NewNoopLogger()).Middleware(okHandler())

	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("10.0.0.1:1234", ""))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected no limiting, got %d", i, rr.Code)
		}
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	now := time.Unix(1700000000, 0)

	l := NewLimiter(1, 1, nil, logging.NewNoopLogger())
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(5 * time.Minute)
	l.allow("b")
	now = now.Add(6 * time.Minute)

	if removed := l.Cleanup(); removed != 1 {
		t.Errorf("expected 1 idle client removed, got %d", removed)
	}
	if _, ok := l.clients["b"]; !ok {
		t.Errorf("expected recent client to be kept")
	}
}

func TestLimiter_Run(t *testing.T) {
	l := NewLimiter(1, 1, nil, logging.NewNoopLogger())
	l.now = func() time.Time { return time.Now().Add(time.Hour) }
	l.clients["idle"] = &client{lastSeen: time.Now()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for {
		l.mu.Lock()
		remaining := len(l.clients)
		l.mu.Unlock()

		if remaining == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("idle client was not dropped")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after cancel")
	}
}

func TestClientAddress(t *testing.T) {
	proxies, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.50"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		trusted   []netip.Prefix
		remote    string
		forwarded string
		expected  string
	}{
		{name: "remote address", remote: "192.0.2.1:4000", expected: "192.0.2.1"},
		{name: "remote without port", remote: "192.0.2.1", expected: "192.0.2.1"},
		{name: "forwarded ignored without trusted proxies", remote: "192.0.2.1:4000", forwarded: "203.0.113.7", expected: "192.0.2.1"},
		{name: "forwarded ignored from untrusted peer", trusted: proxies, remote: "198.51.100.9:4000", forwarded: "203.0.113.7", expected: "198.51.100.9"},
		{name: "trusted peer forwards client", trusted: proxies, remote: "10.0.0.1:80", forwarded: "203.0.113.7", expected: "203.0.113.7"},
		{name: "spoofed leftmost hop skipped", trusted: proxies, remote: "10.0.0.1:80", forwarded: "1.2.3.4, 203.0.113.7, 10.0.0.2", expected: "203.0.113.7"},
		{name: "single trusted address", trusted: proxies, remote: "192.0.2.50:80", forwarded: "203.0.113.8", expected: "203.0.113.8"},
		{name: "all hops trusted", trusted: proxies, remote: "10.0.0.1:80", forwarded: "10.0.0.3, 10.0.0.2", expected: "10.0.0.1"},
		{name: "garbage hop stops the walk", trusted: proxies, remote: "10.0.0.1:80", forwarded: "203.0.113.7, not-an-ip", expected: "10.0.0.1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := NewLimiter(1, 1, test.trusted, logging.NewNoopLogger())
			if got := l.clientAddress(request(test.remote, test.forwarded)); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestLimiter_SpoofedForwardedForShareBucket(t *testing.T) {
	l := NewLimiter(1, 1, nil, logging.NewNoopLogger())
	l.now = func() time.Time { return time.Unix(1700000000, 0) }

	handler := l.Middleware(okHandler())

	for i, forwarded := range []string{"203.0.113.1", "203.0.113.2"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("192.0.2.1:4000", forwarded))

		expected := http.StatusOK
		if i > 0 {
			expected = http.StatusTooManyRequests
		}
		if rr.Code != expected {
			t.Errorf("request %d: expected %d, got %d", i, expected, rr.Code)
		}
	}
}

func TestParseTrustedProxies(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []netip.Prefix
		wantErr  bool
	}{
		{name: "empty", input: nil, expected: []netip.Prefix{}},
		{name: "cidr is masked", input: []string{"10.1.2.3/8"}, expected: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}},
		{name: "single ipv4", input: []string{" 192.0.2.50 "}, expected: []netip.Prefix{netip.MustParsePrefix("192.0.2.50/32")}},
		{name: "single ipv6", input: []string{"2001:db8::1"}, expected: []netip.Prefix{netip.MustParsePrefix("2001:db8::1/128")}},
		{name: "blank entries skipped", input: []string{"", "10.0.0.0/8"}, expected: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}},
		{name: "invalid address", input: []string{"proxy.internal"}, wantErr: true},
		{name: "invalid cidr", input: []string{"10.0.0.0/40"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseTrustedProxies(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
			if test.wantErr {
				return
			}
			if !slices.Equal(got, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}
