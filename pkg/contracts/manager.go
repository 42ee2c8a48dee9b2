package contracts

import (
	"time"

	"github.com/oarkflow/zeit/pkg/gate"
)

type Config interface {
	Env(envName string, defaultValue ...any) any
	Add(name string, configuration any)
	Get(path string, defaultValue ...any) any
	GetString(path string, defaultValue ...any) string
	GetStrings(path string, defaultValue ...any) []string
	GetInt(path string, defaultValue ...any) int
	GetBool(path string, defaultValue ...any) bool
	GetDuration(path string, defaultValue ...any) time.Duration
}

// GateManager owns the gates of every browser session.
type GateManager interface {
	IsProtected(viewID string) bool
	WithGate(sessionID, viewID string, fn func(g *gate.Gate)) bool
	Snapshot(sessionID, viewID string) (gate.Snapshot, bool)
	EndSession(sessionID string)
	SessionCount() int
	CleanupExpired()
}
