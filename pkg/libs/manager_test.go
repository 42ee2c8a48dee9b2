package libs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/gate"
)

var _ contracts.GateManager = (*Manager)(nil)

func newTestManager() *Manager {
	return NewManager(&GateConfig{
		Secret:         "s3cret",
		MaxAttempts:    3,
		ProtectedViews: []string{"methodology"},
		SessionTTL:     time.Minute,
	}, func(viewID string) (string, string) {
		return "Metodología", "Contenido protegido"
	})
}

func TestUnprotectedViewHasNoGate(t *testing.T) {
	m := newTestManager()
	called := false
	ok := m.WithGate("s1", "dashboard", func(g *gate.Gate) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
	_, ok = m.Snapshot("s1", "dashboard")
	assert.False(t, ok)
}

func TestGateCreatedLockedWithConfig(t *testing.T) {
	m := newTestManager()
	snap, ok := m.Snapshot("s1", "methodology")
	require.True(t, ok)
	assert.Equal(t, gate.Locked, snap.State)
	assert.Equal(t, 3, snap.MaxAttempts)
	assert.Equal(t, "Metodología", snap.Title)
	assert.Equal(t, "Contenido protegido", snap.Description)
}

func TestGatesAreScopedPerSession(t *testing.T) {
	m := newTestManager()
	m.WithGate("s1", "methodology", func(g *gate.Gate) { g.Submit("s3cret") })
	m.WithGate("s2", "methodology", func(g *gate.Gate) { g.Submit("nope") })

	s1, _ := m.Snapshot("s1", "methodology")
	s2, _ := m.Snapshot("s2", "methodology")
	assert.Equal(t, gate.Authenticated, s1.State)
	assert.Equal(t, gate.Locked, s2.State)
	assert.Equal(t, 1, s2.AttemptCount)
	assert.Equal(t, 2, m.SessionCount())
}

func TestEndSessionResetsGates(t *testing.T) {
	m := newTestManager()
	for i := 0; i < 3; i++ {
		m.WithGate("s1", "methodology", func(g *gate.Gate) { g.Submit("bad") })
	}
	snap, _ := m.Snapshot("s1", "methodology")
	require.Equal(t, gate.Blocked, snap.State)

	m.EndSession("s1")
	snap, _ = m.Snapshot("s1", "methodology")
	assert.Equal(t, gate.Locked, snap.State)
	assert.Zero(t, snap.AttemptCount)
}

func TestCleanupExpiredDropsIdleSessions(t *testing.T) {
	m := newTestManager()
	now := time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.WithGate("old", "methodology", func(g *gate.Gate) { g.Submit("s3cret") })

	now = now.Add(45 * time.Second)
	m.WithGate("fresh", "methodology", func(g *gate.Gate) {})

	now = now.Add(30 * time.Second)
	m.CleanupExpired()
	assert.Equal(t, 1, m.SessionCount())

	snap, _ := m.Snapshot("old", "methodology")
	assert.Equal(t, gate.Locked, snap.State)
}

func TestConcurrentSubmissionsAreSerialised(t *testing.T) {
	m := NewManager(&GateConfig{Secret: "s3cret", MaxAttempts: 1000, ProtectedViews: []string{"methodology"}}, nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.WithGate("s1", "methodology", func(g *gate.Gate) { g.Submit("bad") })
		}()
	}
	wg.Wait()
	snap, _ := m.Snapshot("s1", "methodology")
	assert.Equal(t, 50, snap.AttemptCount)
	assert.Equal(t, "methodology", snap.Title)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("Q2hhbmdlTWVJblByb2R1Y3Rpb24hMTIz")
	sid := NewSessionID()
	require.NotEmpty(t, sid)

	tok, err := IssueSessionToken(sid, time.Minute, secret)
	require.NoError(t, err)
	got, err := ParseSessionToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, sid, got)

	_, err = ParseSessionToken("garbage", secret)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = ParseSessionToken("", secret)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
