// archive-migrate copies a layout archive from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/archive-migrate \
//	    -sqlite data/layouts.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user dungeonplan \
//	    -pg-password dungeonplan \
//	    -pg-database dungeonplan
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func main() {
	// Parse command-line flags
	sqlitePath := flag.String("sqlite", "data/layouts.db", "Path to SQLite layout archive")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "dungeonplan", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "dungeonplan", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "dungeonplan", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL Archive Migration")
	log.Println("======================================")

	// Open SQLite archive
	log.Printf("Opening SQLite archive: %s", *sqlitePath)
	sqliteDB, err := sql.Open("sqlite", *sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite archive: %v", err)
	}
	defer sqliteDB.Close()

	// Verify SQLite connection
	if err := sqliteDB.Ping(); err != nil {
		log.Fatalf("Failed to connect to SQLite archive: %v", err)
	}

	// Build PostgreSQL connection string
	pgConnStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		*pgHost, *pgPort, *pgUser, *pgPassword, *pgDatabase, *pgSSLMode,
	)

	// Open PostgreSQL database
	log.Printf("Opening PostgreSQL database: %s@%s:%d/%s", *pgUser, *pgHost, *pgPort, *pgDatabase)
	pgDB, err := sql.Open("postgres", pgConnStr)
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer pgDB.Close()

	// Verify PostgreSQL connection
	if err := pgDB.Ping(); err != nil {
		log.Fatalf("Failed to connect to PostgreSQL database: %v", err)
	}

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	// Run migrations on PostgreSQL first
	log.Println("Ensuring PostgreSQL schema is ready...")
	if !*dryRun {
		if err := migratePostgres(pgDB); err != nil {
			log.Fatalf("Failed to migrate PostgreSQL schema: %v", err)
		}
	}

	log.Println("Migrating table: layouts")
	count, err := migrateLayouts(sqliteDB, pgDB, *dryRun)
	if err != nil {
		log.Fatalf("Failed to migrate layouts: %v", err)
	}
	log.Printf("  Migrated %d rows", count)

	log.Println("======================================")
	log.Printf("Migration complete! Total rows migrated: %d", count)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}

func migratePostgres(db *sql.DB) error {
	// Enable citext extension
	if _, err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext"); err != nil {
		return fmt.Errorf("failed to create citext extension: %w", err)
	}

	migrations := []string{
		// Layouts table, matching the schema the store creates
		`CREATE TABLE IF NOT EXISTS layouts (
			id SERIAL PRIMARY KEY,
			name CITEXT UNIQUE NOT NULL,
			seed BIGINT NOT NULL,
			grid_size INTEGER NOT NULL,
			room_count INTEGER NOT NULL,
			grid_text TEXT NOT NULL,
			document TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_layouts_seed ON layouts(seed)`,
		`CREATE INDEX IF NOT EXISTS idx_layouts_created_at ON layouts(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

func migrateLayouts(sqlite, pg *sql.DB, dryRun bool) (int64, error) {
	rows, err := sqlite.Query(`
		SELECT id, name, seed, grid_size, room_count, grid_text, document, created_at
		FROM layouts
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	for rows.Next() {
		var id, seed int64
		var gridSize, roomCount int
		var name, gridText, document string
		var createdAt string

		if err := rows.Scan(&id, &name, &seed, &gridSize, &roomCount, &gridText, &document, &createdAt); err != nil {
			return count, err
		}

		if dryRun {
			count++
			continue
		}

		// Check if the layout already exists
		var existingID int64
		err := pg.QueryRow(`SELECT id FROM layouts WHERE id = $1`, id).Scan(&existingID)
		if err == nil {
			// Layout exists, skip
			continue
		}

		// Insert with explicit ID so references stay stable
		_, err = pg.Exec(`
			INSERT INTO layouts (id, name, seed, grid_size, room_count, grid_text, document, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, id, name, seed, gridSize, roomCount, gridText, document, parseTime(createdAt))
		if err != nil {
			if !strings.Contains(err.Error(), "duplicate key") {
				return count, err
			}
		} else {
			count++
		}
	}

	// Reset the sequence to avoid ID conflicts for new records
	if !dryRun {
		_, _ = pg.Exec(`SELECT setval('layouts_id_seq', COALESCE((SELECT MAX(id) FROM layouts), 0) + 1, false)`)
	}

	return count, rows.Err()
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	// Try various formats
	formats := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-07:00",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return &t
		}
	}
	log.Printf("Warning: Could not parse time: %s", s)
	return nil
}

func init() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Migrates a layout archive from SQLite to PostgreSQL.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -sqlite data/layouts.db -pg-host localhost -pg-user dungeonplan -pg-password dungeonplan -pg-database dungeonplan\n", os.Args[0])
	}
}
