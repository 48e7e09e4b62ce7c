// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/types"
)

var _ storage.StorageInterface = (*memoryStorage)(nil)

// memoryStorage keeps rows in maps so the router can be exercised without postgres.
type memoryStorage struct {
	mu sync.Mutex

	platforms []*types.Platform
	contexts  []*types.Context
	users     []*types.User
	tenants   []*types.Tenant
	sessions  map[string]*types.LaunchSession
	grades    map[string]*types.Grade

	gradeStatusErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		sessions: make(map[string]*types.LaunchSession),
		grades:   make(map[string]*types.Grade),
	}
}

func (m *memoryStorage) CreatePlatform(_ context.Context, p *types.Platform) (*types.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.platforms {
		if existing.Issuer == p.Issuer {
			return nil, storage.ErrDuplicateKey
		}
	}

	c := *p
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	m.platforms = append(m.platforms, &c)

	return &c, nil
}

func (m *memoryStorage) GetPlatformByIssuer(_ context.Context, issuer string) (*types.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.platforms {
		if p.Issuer == issuer {
			c := *p
			return &c, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (m *memoryStorage) UpdatePlatformConfig(_ context.Context, p *types.Platform) (*types.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.platforms {
		if existing.Issuer == p.Issuer {
			existing.ApplyConfig(p)
			c := *existing
			return &c, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (m *memoryStorage) ListPlatforms(_ context.Context) ([]*types.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Platform, 0, len(m.platforms))
	for _, p := range m.platforms {
		c := *p
		out = append(out, &c)
	}

	return out, nil
}

func (m *memoryStorage) CreateContext(_ context.Context, c *types.Context) (*types.Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *c
	row.ID = uuid.NewString()
	m.contexts = append(m.contexts, &row)

	return &row, nil
}

func (m *memoryStorage) GetContext(_ context.Context, platformID, lmsContextID string) (*types.Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.contexts {
		if c.PlatformID == platformID && c.LMSContextID == lmsContextID {
			row := *c
			return &row, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (m *memoryStorage) CreateUser(_ context.Context, u *types.User) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *u
	row.ID = uuid.NewString()
	m.users = append(m.users, &row)

	return &row, nil
}

func (m *memoryStorage) GetUser(_ context.Context, platformID, subject string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.PlatformID == platformID && u.Subject == subject {
			row := *u
			return &row, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (m *memoryStorage) CreateTenant(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *t
	row.ID = uuid.NewString()
	m.tenants = append(m.tenants, &row)

	return &row, nil
}

func (m *memoryStorage) GetTenantByPlatformID(_ context.Context, platformID string) (*types.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tenants {
		if t.PlatformID == platformID {
			row := *t
			return &row, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (m *memoryStorage) CreateLaunchSession(_ context.Context, s *types.LaunchSession) (*types.LaunchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *s
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	row.CreatedAt = time.Now()
	m.sessions[row.ID] = &row

	return &row, nil
}

func (m *memoryStorage) GetLaunchSession(_ context.Context, id string) (*types.LaunchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	row := *s
	return &row, nil
}

func (m *memoryStorage) CreateGrade(_ context.Context, g *types.Grade) (*types.Grade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *g
	row.ID = uuid.NewString()
	row.SubmittedAt = time.Now()
	row.UpdatedAt = row.SubmittedAt
	m.grades[row.ID] = &row

	return &row, nil
}

func (m *memoryStorage) UpdateGradeStatus(_ context.Context, id string, status types.GradeStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gradeStatusErr != nil {
		return m.gradeStatusErr
	}

	g, ok := m.grades[id]
	if !ok {
		return storage.ErrNotFound
	}

	g.Status = status
	g.UpdatedAt = time.Now()

	return nil
}

func (m *memoryStorage) gradesFor(sessionID string) []*types.Grade {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Grade, 0)
	for _, g := range m.grades {
		if g.SessionID == sessionID {
			row := *g
			out = append(out, &row)
		}
	}

	return out
}

func (m *memoryStorage) onlySession(messageType string) *types.LaunchSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.MessageType == messageType {
			row := *s
			return &row
		}
	}

	return nil
}

// fakePinger reports a fixed dependency health.
type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}
