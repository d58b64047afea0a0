// Package store archives generated dungeon layouts in SQLite or PostgreSQL.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store wraps the archive connection and provides layout persistence.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open opens or creates a SQLite archive at the given path.
func Open(path string) (*Store, error) {
	return OpenWithConfig(DefaultConfig(path))
}

// OpenWithConfig opens the archive described by the config, supporting
// both SQLite and PostgreSQL backends.
func OpenWithConfig(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	if _, ok := dialect.(*PostgresDialect); ok {
		dsn = cfg.Postgres.DSN()
	} else {
		// Ensure directory exists
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
		dsn = cfg.Path
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize archive: %w", err)
		}
	}

	// Apply pool settings for PostgreSQL
	if _, ok := dialect.(*PostgresDialect); ok {
		if cfg.Postgres.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		}
		if cfg.Postgres.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		}
		if cfg.Postgres.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to archive: %w", err)
		}
	}

	s := &Store{
		db:      db,
		dialect: dialect,
		qb:      NewQueryBuilder(dialect),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the archive connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the archive schema if it doesn't exist.
func (s *Store) migrate() error {
	var idColumn, nameColumn string
	if s.dialect.SupportsLastInsertID() {
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
		nameColumn = "name TEXT UNIQUE NOT NULL " + s.dialect.CaseInsensitiveCollation()
	} else {
		idColumn = "id SERIAL PRIMARY KEY"
		nameColumn = "name CITEXT UNIQUE NOT NULL"
	}

	migrations := []string{
		// Layouts table
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS layouts (
			%s,
			%s,
			seed BIGINT NOT NULL,
			grid_size INTEGER NOT NULL,
			room_count INTEGER NOT NULL,
			grid_text TEXT NOT NULL,
			document TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, idColumn, nameColumn),

		// Indexes for common queries
		`CREATE INDEX IF NOT EXISTS idx_layouts_seed ON layouts(seed)`,
		`CREATE INDEX IF NOT EXISTS idx_layouts_created_at ON layouts(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

// DB returns the underlying sql.DB for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the active SQL dialect.
func (s *Store) Dialect() Dialect {
	return s.dialect
}
