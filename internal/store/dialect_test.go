package store

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestNewDialect(t *testing.T) {
	tests := []struct {
		name        string
		dialectType DialectType
		wantSQLite  bool
	}{
		{"sqlite", DialectSQLite, true},
		{"postgres", DialectPostgres, false},
		{"unknown falls back to sqlite", DialectType("oracle"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect := NewDialect(tt.dialectType)
			if _, ok := dialect.(*SQLiteDialect); ok != tt.wantSQLite {
				t.Errorf("NewDialect(%q) = %T", tt.dialectType, dialect)
			}
		})
	}
}

func TestSQLiteDialect(t *testing.T) {
	d := &SQLiteDialect{}

	if got := d.DriverName(); got != "sqlite" {
		t.Errorf("DriverName() = %q, want %q", got, "sqlite")
	}
	if got := d.Placeholder(7); got != "?" {
		t.Errorf("Placeholder(7) = %q, want %q", got, "?")
	}
	if !d.SupportsLastInsertID() {
		t.Error("SupportsLastInsertID() = false, want true")
	}
	if got := d.ReturningClause("id"); got != "" {
		t.Errorf("ReturningClause() = %q, want empty string", got)
	}
	if got := d.CaseInsensitiveCollation(); got != "COLLATE NOCASE" {
		t.Errorf("CaseInsensitiveCollation() = %q, want %q", got, "COLLATE NOCASE")
	}

	stmts := d.InitStatements()
	if len(stmts) != 3 {
		t.Fatalf("InitStatements() returned %d statements, want 3", len(stmts))
	}
	if stmts[0] != "PRAGMA foreign_keys = ON" {
		t.Errorf("InitStatements()[0] = %q", stmts[0])
	}
}

func TestSQLiteDialect_IsDuplicateKeyError(t *testing.T) {
	d := &SQLiteDialect{}
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("database is locked"), false},
		{errors.New("UNIQUE constraint failed: layouts.name"), true},
		{errors.New("FOREIGN KEY constraint failed"), false},
	}
	for _, tt := range tests {
		if got := d.IsDuplicateKeyError(tt.err); got != tt.want {
			t.Errorf("IsDuplicateKeyError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestPostgresDialect(t *testing.T) {
	d := &PostgresDialect{}

	if got := d.DriverName(); got != "postgres" {
		t.Errorf("DriverName() = %q, want %q", got, "postgres")
	}
	if got := d.Placeholder(1); got != "$1" {
		t.Errorf("Placeholder(1) = %q, want %q", got, "$1")
	}
	if got := d.Placeholder(12); got != "$12" {
		t.Errorf("Placeholder(12) = %q, want %q", got, "$12")
	}
	if d.SupportsLastInsertID() {
		t.Error("SupportsLastInsertID() = true, want false")
	}
	if got := d.ReturningClause("id"); got != " RETURNING id" {
		t.Errorf("ReturningClause() = %q, want %q", got, " RETURNING id")
	}
	if got := d.CaseInsensitiveCollation(); got != "" {
		t.Errorf("CaseInsensitiveCollation() = %q, want empty string", got)
	}

	stmts := d.InitStatements()
	if len(stmts) != 1 || stmts[0] != "CREATE EXTENSION IF NOT EXISTS citext" {
		t.Errorf("InitStatements() = %v", stmts)
	}
}

func TestPostgresDialect_IsDuplicateKeyError(t *testing.T) {
	d := &PostgresDialect{}
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unrelated", errors.New("connection refused"), false},
		{"typed unique violation", &pq.Error{Code: "23505"}, true},
		{"typed foreign key violation", &pq.Error{Code: "23503"}, false},
		{"string duplicate key", errors.New(`pq: duplicate key value violates unique constraint "layouts_name_key"`), true},
		{"string sqlstate", errors.New("ERROR: duplicate key value (SQLSTATE 23505)"), true},
		{"string unique constraint", errors.New("pq: unique constraint violation on layouts_name_key"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsDuplicateKeyError(tt.err); got != tt.want {
				t.Errorf("IsDuplicateKeyError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestQueryBuilder_Build(t *testing.T) {
	sqlite := NewQueryBuilder(&SQLiteDialect{})
	postgres := NewQueryBuilder(&PostgresDialect{})

	tests := []struct {
		input        string
		wantSQLite   string
		wantPostgres string
	}{
		{
			"SELECT * FROM layouts",
			"SELECT * FROM layouts",
			"SELECT * FROM layouts",
		},
		{
			"SELECT * FROM layouts WHERE id = ?",
			"SELECT * FROM layouts WHERE id = ?",
			"SELECT * FROM layouts WHERE id = $1",
		},
		{
			"SELECT * FROM layouts WHERE seed = ? AND name = ?",
			"SELECT * FROM layouts WHERE seed = ? AND name = ?",
			"SELECT * FROM layouts WHERE seed = $1 AND name = $2",
		},
		{
			"INSERT INTO layouts (name, seed, grid_size, room_count, grid_text, document) VALUES (?, ?, ?, ?, ?, ?)",
			"INSERT INTO layouts (name, seed, grid_size, room_count, grid_text, document) VALUES (?, ?, ?, ?, ?, ?)",
			"INSERT INTO layouts (name, seed, grid_size, room_count, grid_text, document) VALUES ($1, $2, $3, $4, $5, $6)",
		},
	}
	for _, tt := range tests {
		if got := sqlite.Build(tt.input); got != tt.wantSQLite {
			t.Errorf("sqlite Build(%q) = %q, want %q", tt.input, got, tt.wantSQLite)
		}
		if got := postgres.Build(tt.input); got != tt.wantPostgres {
			t.Errorf("postgres Build(%q) = %q, want %q", tt.input, got, tt.wantPostgres)
		}
	}
}

func TestQueryBuilder_BuildWithReturning(t *testing.T) {
	input := "INSERT INTO layouts (name) VALUES (?)"

	sqlite := NewQueryBuilder(&SQLiteDialect{})
	if got := sqlite.BuildWithReturning(input, "id"); got != input {
		t.Errorf("sqlite BuildWithReturning() = %q, want %q", got, input)
	}

	postgres := NewQueryBuilder(&PostgresDialect{})
	want := "INSERT INTO layouts (name) VALUES ($1) RETURNING id"
	if got := postgres.BuildWithReturning(input, "id"); got != want {
		t.Errorf("postgres BuildWithReturning() = %q, want %q", got, want)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/var/lib/dungeonplan/archive.db")

	if cfg.Driver != "sqlite" {
		t.Errorf("Driver = %q, want %q", cfg.Driver, "sqlite")
	}
	if cfg.Path != "/var/lib/dungeonplan/archive.db" {
		t.Errorf("Path = %q", cfg.Path)
	}
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want %q", cfg.Host, "localhost")
	}
	if cfg.Port != 5432 {
		t.Errorf("Port = %d, want %d", cfg.Port, 5432)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want %q", cfg.SSLMode, "disable")
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d, want %d", cfg.MaxOpenConns, 25)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want %v", cfg.ConnMaxLifetime, 5*time.Minute)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "dungeon",
		Password: "secret",
		Database: "plans",
		SSLMode:  "require",
	}
	want := "host=db.example.com port=5433 user=dungeon password=secret dbname=plans sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
