package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/connection"
	"github.com/oarkflow/squealx/drivers/sqlite"

	"github.com/oarkflow/zeit/pkg/models"
)

// DatabaseType represents the type of database
type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

// DatabaseStorage keeps the gate audit trail.
type DatabaseStorage struct {
	db     *squealx.DB
	dbType DatabaseType
}

// Open connects using cfg. SQLite opens dsn directly, other drivers go
// through squealx connection settings.
func Open(cfg squealx.Config, dsn string) (*squealx.DB, error) {
	if DetectDatabaseType(cfg.Driver, dsn) == SQLite {
		db, err := sqlite.Open(dsn, "sqlite")
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
		}
		return db, nil
	}
	db, _, err := connection.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// NewDatabaseStorage creates a new database storage instance
func NewDatabaseStorage(db *squealx.DB) (*DatabaseStorage, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	storage := &DatabaseStorage{
		db:     db,
		dbType: DetectDatabaseType(db.DriverName(), ""),
	}
	if err := storage.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return storage, nil
}

func (d *DatabaseStorage) createTables() error {
	var queries []string
	switch d.dbType {
	case MySQL:
		queries = d.getMySQLSchema()
	case PostgreSQL:
		queries = d.getPostgreSQLSchema()
	case SQLite:
		queries = d.getSQLiteSchema()
	default:
		return fmt.Errorf("unsupported database type: %s", d.dbType)
	}
	for _, query := range queries {
		if _, err := d.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute schema query: %w", err)
		}
	}
	return nil
}

// created_at holds unix milliseconds so every driver scans it the same way.
func (d *DatabaseStorage) getMySQLSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS gate_events (
			id BIGINT PRIMARY KEY AUTO_INCREMENT,
			session_id VARCHAR(64) NOT NULL,
			view_id VARCHAR(64) NOT NULL,
			outcome VARCHAR(32) NOT NULL,
			state VARCHAR(32) NOT NULL,
			attempt_count INT NOT NULL DEFAULT 0,
			ip_address VARCHAR(45),
			user_agent TEXT,
			created_at BIGINT NOT NULL,
			INDEX idx_gate_events_session_id (session_id),
			INDEX idx_gate_events_created_at (created_at)
		) ENGINE=InnoDB`,
	}
}

func (d *DatabaseStorage) getPostgreSQLSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS gate_events (
			id BIGSERIAL PRIMARY KEY,
			session_id VARCHAR(64) NOT NULL,
			view_id VARCHAR(64) NOT NULL,
			outcome VARCHAR(32) NOT NULL,
			state VARCHAR(32) NOT NULL,
			attempt_count INTEGER NOT NULL DEFAULT 0,
			ip_address VARCHAR(45),
			user_agent TEXT,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gate_events_session_id ON gate_events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_gate_events_created_at ON gate_events(created_at)`,
	}
}

func (d *DatabaseStorage) getSQLiteSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS gate_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			view_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			state TEXT NOT NULL,
			attempt_count INTEGER NOT NULL DEFAULT 0,
			ip_address TEXT,
			user_agent TEXT,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gate_events_session_id ON gate_events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_gate_events_created_at ON gate_events(created_at)`,
	}
}

func (d *DatabaseStorage) RecordGateEvent(event models.GateEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	query := `INSERT INTO gate_events (session_id, view_id, outcome, state, attempt_count, ip_address, user_agent, created_at)
		VALUES (:session_id, :view_id, :outcome, :state, :attempt_count, :ip_address, :user_agent, :created_at)`
	params := map[string]any{
		"session_id":    event.SessionID,
		"view_id":       event.ViewID,
		"outcome":       event.Outcome,
		"state":         event.State,
		"attempt_count": event.AttemptCount,
		"ip_address":    event.IPAddress,
		"user_agent":    event.UserAgent,
		"created_at":    event.CreatedAt.UnixMilli(),
	}
	if _, err := d.db.NamedExec(query, params); err != nil {
		return fmt.Errorf("record gate event: %w", err)
	}
	return nil
}

// RecentGateEvents returns the newest events first.
func (d *DatabaseStorage) RecentGateEvents(limit int) ([]models.GateEvent, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	query := fmt.Sprintf(`SELECT id, session_id, view_id, outcome, state, attempt_count,
		COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
		FROM gate_events ORDER BY id DESC LIMIT %d`, limit)
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list gate events: %w", err)
	}
	defer rows.Close()

	events := make([]models.GateEvent, 0, limit)
	for rows.Next() {
		var event models.GateEvent
		var createdAt int64
		err := rows.Scan(&event.ID, &event.SessionID, &event.ViewID, &event.Outcome, &event.State,
			&event.AttemptCount, &event.IPAddress, &event.UserAgent, &createdAt)
		if err != nil {
			return nil, err
		}
		event.CreatedAt = time.UnixMilli(createdAt)
		events = append(events, event)
	}
	return events, rows.Err()
}

func (d *DatabaseStorage) Close() error {
	return d.db.Close()
}

// DetectDatabaseType maps a driver name or data source to a schema flavour.
func DetectDatabaseType(driverName string, dataSource string) DatabaseType {
	driverName = strings.ToLower(driverName)
	dataSource = strings.ToLower(dataSource)

	switch {
	case strings.Contains(driverName, "mysql") || strings.Contains(dataSource, "mysql"):
		return MySQL
	case strings.Contains(driverName, "postgres") || strings.Contains(driverName, "pgx") ||
		strings.Contains(dataSource, "postgres"):
		return PostgreSQL
	default:
		return SQLite
	}
}
