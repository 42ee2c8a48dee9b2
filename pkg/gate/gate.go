package gate

import (
	"errors"
)

const DefaultMaxAttempts = 5

var (
	ErrInvalidCredential = errors.New("incorrect credential")
	ErrLockedOut         = errors.New("too many failed attempts")
)

type State int

const (
	Locked State = iota
	Authenticated
	Blocked
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Blocked:
		return "blocked"
	default:
		return "locked"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no further submission is evaluated in this state.
func (s State) Terminal() bool {
	return s == Authenticated || s == Blocked
}

// Snapshot is the read-only view of a gate used for rendering.
type Snapshot struct {
	State             State  `json:"state"`
	AttemptCount      int    `json:"attempt_count"`
	MaxAttempts       int    `json:"max_attempts"`
	RemainingAttempts int    `json:"remaining_attempts"`
	LastError         string `json:"last_error,omitempty"`
	Revealed          bool   `json:"revealed"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`

	// Reason is ErrInvalidCredential or ErrLockedOut after a failed submission.
	Reason error `json:"-"`
}

type Option func(*Gate)

func WithMaxAttempts(n int) Option {
	return func(g *Gate) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func WithDescription(description string) Option {
	return func(g *Gate) {
		g.description = description
	}
}

// Gate guards protected content behind a shared secret with a bounded number
// of attempts. A Gate is not safe for concurrent use; callers serialise access.
type Gate struct {
	secret      string
	title       string
	description string
	maxAttempts int

	state    State
	attempts int
	lastErr  error
	revealed bool
}

func New(secret, title string, opts ...Option) *Gate {
	g := &Gate{
		secret:      secret,
		title:       title,
		maxAttempts: DefaultMaxAttempts,
		state:       Locked,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Submit evaluates secret when the gate is Locked and is a no-op otherwise.
// The outcome is reported through the returned snapshot.
func (g *Gate) Submit(secret string) Snapshot {
	if g.state.Terminal() {
		return g.Snapshot()
	}
	g.lastErr = nil
	if Compare(secret, g.secret) {
		g.state = Authenticated
		return g.Snapshot()
	}
	g.attempts++
	if g.attempts >= g.maxAttempts {
		g.state = Blocked
		g.lastErr = ErrLockedOut
	} else {
		g.lastErr = ErrInvalidCredential
	}
	return g.Snapshot()
}

func (g *Gate) Reveal() {
	g.revealed = true
}

func (g *Gate) Hide() {
	g.revealed = false
}

func (g *Gate) State() State {
	return g.state
}

func (g *Gate) Snapshot() Snapshot {
	remaining := g.maxAttempts - g.attempts
	if remaining < 0 {
		remaining = 0
	}
	snap := Snapshot{
		State:             g.state,
		AttemptCount:      g.attempts,
		MaxAttempts:       g.maxAttempts,
		RemainingAttempts: remaining,
		Revealed:          g.revealed,
		Title:             g.title,
		Description:       g.description,
		Reason:            g.lastErr,
	}
	if g.lastErr != nil {
		snap.LastError = g.lastErr.Error()
	}
	return snap
}
