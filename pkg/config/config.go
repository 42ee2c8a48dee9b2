package config

import (
	"github.com/oarkflow/zeit/pkg/objects"
)

type Config struct{}

func (a *Config) Prefix() string {
	return "gate"
}

// Load registers the defaults for every section. Environment variables
// win over the defaults.
func (a *Config) Load() {
	c := objects.Config
	c.Add("app", map[string]any{
		"name":      c.Env("ZEIT_APP_NAME", "Zeit AI Logistics"),
		"version":   "1.0.0",
		"env":       c.Env("ZEIT_ENV", "development"),
		"https":     c.Env("ZEIT_HTTPS", false),
		"user_name": c.Env("ZEIT_USER_NAME", "Roberto Dávila"),
		"user_role": c.Env("ZEIT_USER_ROLE", "Director de Operaciones"),
	})
	// Client IPs come from proxy_header only when it is set, and only for
	// requests from trusted_proxies when that list is not empty.
	c.Add("server", map[string]any{
		"addr":                c.Env("ZEIT_ADDR", ":3000"),
		"read_timeout":        c.Env("ZEIT_READ_TIMEOUT", "5s"),
		"write_timeout":       c.Env("ZEIT_WRITE_TIMEOUT", "10s"),
		"idle_timeout":        c.Env("ZEIT_IDLE_TIMEOUT", "60s"),
		"rate_limit_requests": c.Env("ZEIT_RATE_LIMIT_REQUESTS", 30),
		"rate_limit_window":   c.Env("ZEIT_RATE_LIMIT_WINDOW", "1m"),
		"proxy_header":        c.Env("ZEIT_PROXY_HEADER", ""),
		"trusted_proxies":     c.Env("ZEIT_TRUSTED_PROXIES", ""),
	})
	c.Add(a.Prefix(), map[string]any{
		// An empty secret keeps every protected view locked.
		"secret":          c.Env("ZEIT_GATE_SECRET", ""),
		"max_attempts":    c.Env("ZEIT_GATE_MAX_ATTEMPTS", 5),
		"protected_views": c.Env("ZEIT_GATE_PROTECTED_VIEWS", "methodology"),
		"session_name":    c.Env("ZEIT_GATE_SESSION_NAME", "zeit_session"),
		"session_ttl":     c.Env("ZEIT_GATE_SESSION_TTL", "30m"),
		"token_secret":    c.Env("ZEIT_TOKEN_SECRET", "Q2hhbmdlTWVJblByb2R1Y3Rpb24hMTIz"),
	})
	c.Add("db", map[string]any{
		"driver":   c.Env("ZEIT_DB_DRIVER", "sqlite"),
		"dsn":      c.Env("ZEIT_DB_DSN", "zeit.db"),
		"host":     c.Env("ZEIT_DB_HOST", "localhost"),
		"port":     c.Env("ZEIT_DB_PORT", 5432),
		"username": c.Env("ZEIT_DB_USERNAME", ""),
		"password": c.Env("ZEIT_DB_PASSWORD", ""),
		"database": c.Env("ZEIT_DB_DATABASE", "zeit"),
	})
}
