package store

import (
	"fmt"
	"time"
)

// Config holds archive connection configuration.
type Config struct {
	// Driver selects the database backend: "sqlite" or "postgres".
	Driver string

	// Path is the SQLite database file location.
	Path string

	// Postgres holds the PostgreSQL connection settings when Driver is
	// "postgres".
	Postgres PostgresConfig
}

// PostgresConfig holds PostgreSQL-specific configuration.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig returns a Config backed by a local SQLite file.
func DefaultConfig(sqlitePath string) Config {
	return Config{
		Driver: "sqlite",
		Path:   sqlitePath,
	}
}

// DefaultPostgresConfig returns PostgresConfig with recommended pool
// settings.
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Host:            "localhost",
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// DSN builds the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}
