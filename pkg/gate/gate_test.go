package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret123"

func TestNewGateStartsLocked(t *testing.T) {
	g := New(testSecret, "Metodología")
	snap := g.Snapshot()
	assert.Equal(t, Locked, snap.State)
	assert.Equal(t, 0, snap.AttemptCount)
	assert.Equal(t, DefaultMaxAttempts, snap.RemainingAttempts)
	assert.Empty(t, snap.LastError)
	assert.Nil(t, snap.Reason)
	assert.Equal(t, "Metodología", snap.Title)
}

func TestScenarioLockoutAfterFiveFailures(t *testing.T) {
	g := New(testSecret, "t", WithMaxAttempts(5))
	for i := 0; i < 4; i++ {
		g.Submit("wrong")
	}
	snap := g.Snapshot()
	assert.Equal(t, Locked, snap.State)
	assert.Equal(t, 4, snap.AttemptCount)
	assert.Equal(t, 1, snap.RemainingAttempts)
	assert.Equal(t, ErrInvalidCredential, snap.Reason)
	assert.Equal(t, "incorrect credential", snap.LastError)

	snap = g.Submit("wrong")
	assert.Equal(t, Blocked, snap.State)
	assert.Equal(t, 5, snap.AttemptCount)
	assert.Equal(t, 0, snap.RemainingAttempts)
	assert.Equal(t, ErrLockedOut, snap.Reason)
	assert.Equal(t, "too many failed attempts", snap.LastError)
}

func TestScenarioFirstAttemptSucceeds(t *testing.T) {
	g := New(testSecret, "t")
	snap := g.Submit(testSecret)
	assert.Equal(t, Authenticated, snap.State)
	assert.Equal(t, 0, snap.AttemptCount)
	assert.Empty(t, snap.LastError)
}

func TestScenarioEmptyConfiguredSecretFailsClosed(t *testing.T) {
	g := New("", "t")
	snap := g.Submit("")
	assert.Equal(t, Locked, snap.State)
	assert.Equal(t, 1, snap.AttemptCount)
	assert.ErrorIs(t, snap.Reason, ErrInvalidCredential)
}

func TestScenarioBlockedHasNoRecovery(t *testing.T) {
	g := New(testSecret, "t", WithMaxAttempts(2))
	g.Submit("a")
	g.Submit("b")
	require.Equal(t, Blocked, g.State())

	snap := g.Submit(testSecret)
	assert.Equal(t, Blocked, snap.State)
	assert.Equal(t, 2, snap.AttemptCount)
	assert.Equal(t, ErrLockedOut, snap.Reason)
}

func TestAuthenticatedIsIdempotent(t *testing.T) {
	g := New(testSecret, "t")
	g.Submit(testSecret)
	for _, s := range []string{"wrong", "", testSecret, "wrong"} {
		snap := g.Submit(s)
		assert.Equal(t, Authenticated, snap.State)
		assert.Equal(t, 0, snap.AttemptCount)
		assert.Empty(t, snap.LastError)
	}
}

func TestFailureThenSuccessClearsLastError(t *testing.T) {
	g := New(testSecret, "t")
	g.Submit("wrong")
	g.Submit("still wrong")
	snap := g.Submit(testSecret)
	assert.Equal(t, Authenticated, snap.State)
	assert.Equal(t, 2, snap.AttemptCount)
	assert.Empty(t, snap.LastError)
	assert.Nil(t, snap.Reason)
}

func TestAttemptCountIsMonotonicAndCountsFailures(t *testing.T) {
	g := New(testSecret, "t", WithMaxAttempts(10))
	prev := 0
	for i, s := range []string{"a", "b", "c", "d"} {
		snap := g.Submit(s)
		assert.GreaterOrEqual(t, snap.AttemptCount, prev)
		assert.Equal(t, i+1, snap.AttemptCount)
		prev = snap.AttemptCount
	}
}

func TestBlockedOnlyWhenBudgetExhausted(t *testing.T) {
	for max := 1; max <= 6; max++ {
		g := New(testSecret, "t", WithMaxAttempts(max))
		for i := 1; i <= max; i++ {
			snap := g.Submit("nope")
			if i < max {
				require.Equal(t, Locked, snap.State, "max=%d attempt=%d", max, i)
			} else {
				require.Equal(t, Blocked, snap.State, "max=%d attempt=%d", max, i)
			}
		}
	}
}

func TestWithMaxAttemptsIgnoresNonPositive(t *testing.T) {
	g := New(testSecret, "t", WithMaxAttempts(0))
	assert.Equal(t, DefaultMaxAttempts, g.Snapshot().MaxAttempts)
	g = New(testSecret, "t", WithMaxAttempts(-3))
	assert.Equal(t, DefaultMaxAttempts, g.Snapshot().MaxAttempts)
}

func TestRevealHideDoNotAffectState(t *testing.T) {
	g := New(testSecret, "t", WithDescription("solo personal autorizado"))
	g.Submit("wrong")
	before := g.Snapshot()

	g.Reveal()
	assert.True(t, g.Snapshot().Revealed)
	g.Hide()
	after := g.Snapshot()
	assert.False(t, after.Revealed)

	assert.Equal(t, before.State, after.State)
	assert.Equal(t, before.AttemptCount, after.AttemptCount)
	assert.Equal(t, before.LastError, after.LastError)
	assert.Equal(t, "solo personal autorizado", after.Description)
}

func TestStateText(t *testing.T) {
	b, err := Blocked.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "blocked", string(b))
	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.True(t, Blocked.Terminal())
	assert.True(t, Authenticated.Terminal())
	assert.False(t, Locked.Terminal())
}
