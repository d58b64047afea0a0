package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// getDualTestStores returns both SQLite and PostgreSQL stores for testing.
// If PostgreSQL is not available, it returns only SQLite.
func getDualTestStores(t *testing.T) map[string]*Store {
	stores := make(map[string]*Store)

	tmpDir := t.TempDir()
	sqliteStore, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open SQLite archive: %v", err)
	}
	stores["sqlite"] = sqliteStore

	if cfg := getPostgresTestConfig(); cfg != nil {
		pgStore, err := OpenWithConfig(*cfg)
		if err != nil {
			t.Logf("PostgreSQL not available: %v", err)
		} else {
			pgStore.db.Exec("DELETE FROM layouts")
			stores["postgres"] = pgStore
		}
	}

	t.Cleanup(func() {
		for name, s := range stores {
			if name == "postgres" {
				s.db.Exec("DELETE FROM layouts")
			}
			s.Close()
		}
	})

	return stores
}

// getPostgresTestConfig returns PostgreSQL config if available, nil otherwise.
// Set these environment variables to run PostgreSQL tests:
//
//	DPLAN_TEST_POSTGRES_HOST (default: localhost)
//	DPLAN_TEST_POSTGRES_PORT (default: 5432)
//	DPLAN_TEST_POSTGRES_USER (default: dungeonplan)
//	DPLAN_TEST_POSTGRES_PASSWORD (default: dungeonplan)
//	DPLAN_TEST_POSTGRES_DATABASE (default: dungeonplan_test)
func getPostgresTestConfig() *Config {
	// Check if PostgreSQL testing is explicitly enabled
	if os.Getenv("DPLAN_TEST_POSTGRES") == "" {
		return nil
	}

	host := os.Getenv("DPLAN_TEST_POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}

	port := 5432
	if portStr := os.Getenv("DPLAN_TEST_POSTGRES_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &port)
	}

	user := os.Getenv("DPLAN_TEST_POSTGRES_USER")
	if user == "" {
		user = "dungeonplan"
	}

	password := os.Getenv("DPLAN_TEST_POSTGRES_PASSWORD")
	if password == "" {
		password = "dungeonplan"
	}

	database := os.Getenv("DPLAN_TEST_POSTGRES_DATABASE")
	if database == "" {
		database = "dungeonplan_test"
	}

	return &Config{
		Driver: "postgres",
		Postgres: PostgresConfig{
			Host:            host,
			Port:            port,
			User:            user,
			Password:        password,
			Database:        database,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Minute,
		},
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "archive", "layouts.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("archive file not created: %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "layouts.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	rec := &LayoutRecord{
		Name:      "persisted",
		Seed:      42,
		GridSize:  64,
		RoomCount: 7,
		GridText:  "##\n##\n",
		Document:  "size: 64\n",
	}
	if err := s.SaveLayout(rec); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopen and verify the layout survived
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	loaded, err := s.GetLayoutByName("persisted")
	if err != nil {
		t.Fatalf("GetLayoutByName() error = %v", err)
	}
	if loaded.Seed != 42 {
		t.Errorf("Seed = %d, want 42", loaded.Seed)
	}
	if loaded.GridSize != 64 {
		t.Errorf("GridSize = %d, want 64", loaded.GridSize)
	}
	if loaded.RoomCount != 7 {
		t.Errorf("RoomCount = %d, want 7", loaded.RoomCount)
	}
	if loaded.GridText != "##\n##\n" {
		t.Errorf("GridText = %q", loaded.GridText)
	}
	if loaded.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestOpenWithConfig_UnknownDriverFallsBackToSQLite(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{
		Driver: "mystery",
		Path:   filepath.Join(tmpDir, "layouts.db"),
	}

	s, err := OpenWithConfig(cfg)
	if err != nil {
		t.Fatalf("OpenWithConfig() error = %v", err)
	}
	defer s.Close()

	if _, ok := s.Dialect().(*SQLiteDialect); !ok {
		t.Errorf("Dialect() = %T, want *SQLiteDialect", s.Dialect())
	}
}

func TestStore_DB(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := Open(filepath.Join(tmpDir, "layouts.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	var result int
	if err := s.DB().QueryRow("SELECT 1").Scan(&result); err != nil {
		t.Fatalf("query through DB() failed: %v", err)
	}
	if result != 1 {
		t.Errorf("SELECT 1 = %d", result)
	}
}
