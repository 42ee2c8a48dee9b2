package libs

import (
	"errors"
	"fmt"
	"time"

	"github.com/oarkflow/squealx"

	"github.com/oarkflow/zeit/pkg/gate"
	"github.com/oarkflow/zeit/pkg/objects"
)

// TokenKeySize is the key length of the encrypted session token.
const TokenKeySize = 32

var ErrTokenSecret = errors.New("invalid gate token secret")

type Config struct {
	AppName           string
	Env               string
	HTTPS             bool
	UserName          string
	UserRole          string
	Addr              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	ProxyHeader       string
	TrustedProxies    []string
	Gate              GateConfig
	DB                squealx.Config
	DSN               string
}

type GateConfig struct {
	Secret         string
	MaxAttempts    int
	ProtectedViews []string
	SessionName    string
	SessionTTL     time.Duration
	TokenSecret    []byte
}

// Validate checks the settings a request cannot recover from.
func (g GateConfig) Validate() error {
	if len(g.TokenSecret) != TokenKeySize {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrTokenSecret, TokenKeySize, len(g.TokenSecret))
	}
	return nil
}

// --- Configuration Functions ---
func LoadConfig() *Config {
	c := objects.Config
	cfg := &Config{
		AppName:           c.GetString("app.name", "Zeit AI Logistics"),
		Env:               c.GetString("app.env", "development"),
		HTTPS:             c.GetBool("app.https", false),
		UserName:          c.GetString("app.user_name"),
		UserRole:          c.GetString("app.user_role"),
		Addr:              c.GetString("server.addr", ":3000"),
		ReadTimeout:       c.GetDuration("server.read_timeout", "5s"),
		WriteTimeout:      c.GetDuration("server.write_timeout", "10s"),
		IdleTimeout:       c.GetDuration("server.idle_timeout", "60s"),
		RateLimitRequests: c.GetInt("server.rate_limit_requests", 30),
		RateLimitWindow:   c.GetDuration("server.rate_limit_window", "1m"),
		ProxyHeader:       c.GetString("server.proxy_header"),
		TrustedProxies:    c.GetStrings("server.trusted_proxies"),
		Gate: GateConfig{
			Secret:         c.GetString("gate.secret"),
			MaxAttempts:    c.GetInt("gate.max_attempts", 5),
			ProtectedViews: c.GetStrings("gate.protected_views"),
			SessionName:    c.GetString("gate.session_name", "zeit_session"),
			SessionTTL:     c.GetDuration("gate.session_ttl", "30m"),
			TokenSecret:    []byte(c.GetString("gate.token_secret")),
		},
		DB: squealx.Config{
			Driver:   c.GetString("db.driver", "sqlite"),
			Host:     c.GetString("db.host", "localhost"),
			Port:     c.GetInt("db.port", 5432),
			Username: c.GetString("db.username"),
			Password: c.GetString("db.password"),
			Database: c.GetString("db.database", "zeit"),
		},
		DSN: c.GetString("db.dsn", "zeit.db"),
	}
	if cfg.Gate.MaxAttempts <= 0 {
		cfg.Gate.MaxAttempts = gate.DefaultMaxAttempts
	}
	return cfg
}
