package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/oarkflow/squealx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/zeit/pkg/models"
)

func newTestStorage(t *testing.T) *DatabaseStorage {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "audit.db")
	db, err := Open(squealx.Config{Driver: "sqlite"}, dsn)
	require.NoError(t, err)
	store, err := NewDatabaseStorage(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewDatabaseStorageRejectsNil(t *testing.T) {
	_, err := NewDatabaseStorage(nil)
	require.Error(t, err)
}

func TestRecordAndListGateEvents(t *testing.T) {
	store := newTestStorage(t)
	base := time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)

	outcomes := []string{"invalid_credential", "invalid_credential", "authenticated"}
	for i, outcome := range outcomes {
		require.NoError(t, store.RecordGateEvent(models.GateEvent{
			SessionID:    "sess-1",
			ViewID:       "methodology",
			Outcome:      outcome,
			State:        "locked",
			AttemptCount: i + 1,
			IPAddress:    "10.0.0.1",
			UserAgent:    "test",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := store.RecentGateEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "authenticated", events[0].Outcome)
	assert.Equal(t, 3, events[0].AttemptCount)
	assert.True(t, events[0].CreatedAt.Equal(base.Add(2*time.Minute)))
	assert.Equal(t, "sess-1", events[2].SessionID)
	assert.Greater(t, events[0].ID, events[1].ID)
}

func TestRecentGateEventsLimit(t *testing.T) {
	store := newTestStorage(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordGateEvent(models.GateEvent{
			SessionID: "sess",
			ViewID:    "methodology",
			Outcome:   "ignored",
			State:     "blocked",
		}))
	}
	events, err := store.RecentGateEvents(2)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = store.RecentGateEvents(0)
	require.NoError(t, err)
	assert.Len(t, events, 5)
	assert.False(t, events[0].CreatedAt.IsZero())
}

func TestDetectDatabaseType(t *testing.T) {
	cases := map[string]DatabaseType{
		"postgres": PostgreSQL,
		"pgx":      PostgreSQL,
		"mysql":    MySQL,
		"sqlite":   SQLite,
		"sqlite3":  SQLite,
		"":         SQLite,
	}
	for driver, want := range cases {
		assert.Equal(t, want, DetectDatabaseType(driver, ""), driver)
	}
}
