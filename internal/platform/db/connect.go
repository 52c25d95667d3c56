// Package db opens the admissions record database and ensures its schema.
package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // driver: postgres
	_ "modernc.org/sqlite" // driver: sqlite

	"unistats/internal/platform/config"
)

const defaultSQLiteDSN = "file:unistats.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

// Open connects to the configured driver and creates the admissions table if missing.
func Open(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	dsn := cfg.DSN
	switch cfg.Driver {
	case config.DriverSQLite:
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
	case config.DriverPostgres:
		if dsn == "" {
			dsn = "postgres://localhost:5432/unistats?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == config.DriverSQLite {
		// modernc connections to the same in-memory DSN do not share data.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema applies the idempotent admissions and tips DDL for db's driver.
// Statements run one at a time.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements := []string{schemaSQLite, tipsSchemaSQLite}
	if db.DriverName() == config.DriverPostgres {
		statements = []string{schemaPostgres, tipsSchemaPostgres}
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS admissions (
  id               TEXT PRIMARY KEY,
  school           TEXT NOT NULL,
  program          TEXT NOT NULL,
  ouac_code        TEXT,
  average          REAL,
  decision         TEXT,
  application_date TEXT,
  decision_date    TEXT,
  grp              TEXT,
  citizenship      TEXT,
  province         TEXT,
  has_supp_app     BOOLEAN,
  supp_app_info    TEXT,
  comments         TEXT,
  scholarship      REAL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS admissions (
  id               TEXT PRIMARY KEY,
  school           TEXT NOT NULL,
  program          TEXT NOT NULL,
  ouac_code        TEXT,
  average          DOUBLE PRECISION,
  decision         TEXT,
  application_date TEXT,
  decision_date    TEXT,
  grp              TEXT,
  citizenship      TEXT,
  province         TEXT,
  has_supp_app     BOOLEAN,
  supp_app_info    TEXT,
  comments         TEXT,
  scholarship      DOUBLE PRECISION
);
`

const tipsSchemaSQLite = `
CREATE TABLE IF NOT EXISTS tips (
  id                  TEXT PRIMARY KEY,
  title               TEXT NOT NULL,
  content             TEXT NOT NULL,
  user_id             TEXT NOT NULL,
  attachment_file_url TEXT,
  created_at          TIMESTAMP NOT NULL,
  updated_at          TIMESTAMP NOT NULL
);
`

const tipsSchemaPostgres = `
CREATE TABLE IF NOT EXISTS tips (
  id                  TEXT PRIMARY KEY,
  title               TEXT NOT NULL,
  content             TEXT NOT NULL,
  user_id             TEXT NOT NULL,
  attachment_file_url TEXT,
  created_at          TIMESTAMPTZ NOT NULL,
  updated_at          TIMESTAMPTZ NOT NULL
);
`
