// Package migration bootstraps the exports schema on first start.
package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type step struct {
	Name string
	SQL  string
}

// sentinelTable is checked before running any step; its presence means the
// schema is already in place.
const sentinelTable = "public.exports"

var steps = []step{
	{
		Name: "create_table_exports",
		SQL: `CREATE TABLE IF NOT EXISTS exports (
  id           UUID        PRIMARY KEY,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  pages        INTEGER     NOT NULL CHECK (pages > 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_exports_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports (created_at DESC, id DESC);`,
	},
}

// Migrator runs the schema steps and reports progress as JSON lines.
type Migrator struct {
	db     *sql.DB
	loc    *time.Location
	dbHost string

	mu  sync.Mutex
	out io.Writer
}

// New returns a Migrator logging to stdout.
func New(db *sql.DB, loc *time.Location, dbHost string) *Migrator {
	return NewWithWriter(db, loc, dbHost, os.Stdout)
}

// NewWithWriter returns a Migrator logging to w.
func NewWithWriter(db *sql.DB, loc *time.Location, dbHost string, w io.Writer) *Migrator {
	if loc == nil {
		loc = time.UTC
	}
	return &Migrator{db: db, loc: loc, dbHost: dbHost, out: w}
}

// EnsureMigrated is shorthand for New(db, loc, dbHost).Run(ctx).
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	return New(db, loc, dbHost).Run(ctx)
}

// Run creates the exports table and its index unless the table exists.
func (m *Migrator) Run(ctx context.Context) error {
	start := time.Now()
	m.log(map[string]any{"event": "db_migration_check", "status": "starting"})

	var exists bool
	err := m.db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		m.log(map[string]any{
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		m.log(map[string]any{
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := m.db.ExecContext(ctx, s.SQL); err != nil {
			m.log(map[string]any{
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   s.Name,
				"error_message":    err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", s.Name, err)
		}
		m.log(map[string]any{
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   s.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	m.log(map[string]any{
		"event":       "db_migration_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func (m *Migrator) log(data map[string]any) {
	data["ts"] = time.Now().In(m.loc).Format(time.RFC3339Nano)
	data["component"] = "database"
	data["db_host"] = m.dbHost
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, _ = m.out.Write(append(b, '\n'))
}
