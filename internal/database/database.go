// Package database opens the Postgres pool holding export metadata.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"resumebuilder/internal/config"
)

const (
	pingTimeout     = 5 * time.Second
	applicationName = "resumebuilder"
	statsDBName     = "exports"
)

// Pool sizes the connection pool. The exports table sees one insert per
// export and short metadata reads, so a handful of connections is enough.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

// DefaultPool is used for every setting left at zero.
var DefaultPool = Pool{
	MaxOpen:     4,
	MaxIdle:     2,
	MaxLifetime: 30 * time.Minute,
	MaxIdleTime: 5 * time.Minute,
}

// PoolFor fills the unset values of c from DefaultPool. Idle connections
// never exceed the open limit.
func PoolFor(c config.DatabaseConfig) Pool {
	p := DefaultPool
	if c.MaxOpenConns > 0 {
		p.MaxOpen = c.MaxOpenConns
	}
	if c.MaxIdleConns > 0 {
		p.MaxIdle = c.MaxIdleConns
	}
	if c.ConnMaxLifetimeSec > 0 {
		p.MaxLifetime = time.Duration(c.ConnMaxLifetimeSec) * time.Second
	}
	if c.ConnMaxIdleSec > 0 {
		p.MaxIdleTime = time.Duration(c.ConnMaxIdleSec) * time.Second
	}
	if p.MaxIdle > p.MaxOpen {
		p.MaxIdle = p.MaxOpen
	}
	return p
}

func (p Pool) apply(db *sql.DB) {
	db.SetMaxOpenConns(p.MaxOpen)
	db.SetMaxIdleConns(p.MaxIdle)
	db.SetConnMaxLifetime(p.MaxLifetime)
	db.SetConnMaxIdleTime(p.MaxIdleTime)
}

var sqlOpen = sql.Open

// BuildPostgresDSN renders c as a postgres:// URL. Connections identify
// themselves as resumebuilder in pg_stat_activity.
func BuildPostgresDSN(c config.DatabaseConfig) (string, error) {
	if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
		return "", fmt.Errorf("invalid database config: host, port, user, and name are required")
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	q := url.Values{"application_name": {applicationName}}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NewPostgres opens a traced pgx connection pool sized by PoolFor and pings it.
func NewPostgres(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := BuildPostgresDSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	PoolFor(c).apply(db)

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

// RegisterStats exposes the pool's sql.DBStats as go_sql_* metrics labelled
// db_name="exports".
func RegisterStats(reg prometheus.Registerer, db *sql.DB) error {
	return reg.Register(collectors.NewDBStatsCollector(db, statsDBName))
}
