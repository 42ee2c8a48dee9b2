package libs

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/oarkflow/zeit/pkg/gate"
)

// Describer returns the title and description shown on a view's gate.
type Describer func(viewID string) (title, description string)

type gateSession struct {
	mu       sync.Mutex
	gates    map[string]*gate.Gate
	lastSeen time.Time
}

// Manager keeps one gate per protected view for every browser session.
// Sessions idle for longer than the configured TTL are dropped, which
// gives the next request from that browser fresh gates.
type Manager struct {
	Config   *GateConfig
	describe Describer
	now      func() time.Time

	sessions map[string]*gateSession
	mu       sync.Mutex
}

func NewManager(cfg *GateConfig, describe Describer) *Manager {
	if cfg == nil {
		cfg = &GateConfig{}
	}
	if describe == nil {
		describe = func(viewID string) (string, string) { return viewID, "" }
	}
	return &Manager{
		Config:   cfg,
		describe: describe,
		now:      time.Now,
		sessions: make(map[string]*gateSession),
	}
}

func (m *Manager) IsProtected(viewID string) bool {
	return slices.Contains(m.Config.ProtectedViews, viewID)
}

func (m *Manager) session(sessionID string) *gateSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &gateSession{gates: make(map[string]*gate.Gate)}
		m.sessions[sessionID] = s
	}
	s.lastSeen = m.now()
	return s
}

// WithGate runs fn with exclusive access to the gate of viewID in the given
// session, creating it Locked on first use. It reports false without calling
// fn when the view is not protected.
func (m *Manager) WithGate(sessionID, viewID string, fn func(g *gate.Gate)) bool {
	if !m.IsProtected(viewID) {
		return false
	}
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gates[viewID]
	if !ok {
		title, description := m.describe(viewID)
		g = gate.New(m.Config.Secret, title,
			gate.WithMaxAttempts(m.Config.MaxAttempts),
			gate.WithDescription(description))
		s.gates[viewID] = g
	}
	fn(g)
	return true
}

func (m *Manager) Snapshot(sessionID, viewID string) (gate.Snapshot, bool) {
	var snap gate.Snapshot
	ok := m.WithGate(sessionID, viewID, func(g *gate.Gate) {
		snap = g.Snapshot()
	})
	return snap, ok
}

// EndSession forgets every gate of the session.
func (m *Manager) EndSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// SessionCount is the number of browser sessions holding gates.
func (m *Manager) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CleanupExpired removes sessions idle for longer than the session TTL.
func (m *Manager) CleanupExpired() {
	if m.Config.SessionTTL <= 0 {
		return
	}
	cutoff := m.now().Add(-m.Config.SessionTTL)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// StartCleanup runs CleanupExpired every interval until ctx is done.
func (m *Manager) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CleanupExpired()
			}
		}
	}()
}
