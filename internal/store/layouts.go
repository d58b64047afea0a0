package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrLayoutNotFound is returned when a layout lookup fails.
var ErrLayoutNotFound = errors.New("layout not found")

// ErrDuplicateName is returned when saving a layout under a name that
// already exists.
var ErrDuplicateName = errors.New("layout name already exists")

// LayoutRecord is an archived layout row.
type LayoutRecord struct {
	ID        int64
	Name      string
	Seed      int64
	GridSize  int
	RoomCount int
	GridText  string
	Document  string
	CreatedAt time.Time
}

// SaveLayout inserts a layout into the archive and fills in its ID.
// Names are unique case-insensitively.
func (s *Store) SaveLayout(rec *LayoutRecord) error {
	rec.Name = strings.TrimSpace(rec.Name)
	if rec.Name == "" {
		return errors.New("layout name cannot be empty")
	}

	query := s.qb.BuildWithReturning(
		"INSERT INTO layouts (name, seed, grid_size, room_count, grid_text, document) VALUES (?, ?, ?, ?, ?, ?)",
		"id",
	)

	if s.dialect.SupportsLastInsertID() {
		result, err := s.db.Exec(query, rec.Name, rec.Seed, rec.GridSize, rec.RoomCount, rec.GridText, rec.Document)
		if err != nil {
			if s.dialect.IsDuplicateKeyError(err) {
				return ErrDuplicateName
			}
			return fmt.Errorf("failed to save layout: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get layout ID: %w", err)
		}
		rec.ID = id
	} else {
		err := s.db.QueryRow(query, rec.Name, rec.Seed, rec.GridSize, rec.RoomCount, rec.GridText, rec.Document).Scan(&rec.ID)
		if err != nil {
			if s.dialect.IsDuplicateKeyError(err) {
				return ErrDuplicateName
			}
			return fmt.Errorf("failed to save layout: %w", err)
		}
	}

	rec.CreatedAt = time.Now()
	return nil
}

// GetLayout retrieves a layout by ID.
func (s *Store) GetLayout(id int64) (*LayoutRecord, error) {
	var rec LayoutRecord

	query := s.qb.Build(
		"SELECT id, name, seed, grid_size, room_count, grid_text, document, created_at FROM layouts WHERE id = ?",
	)
	err := s.db.QueryRow(query, id).Scan(
		&rec.ID, &rec.Name, &rec.Seed, &rec.GridSize, &rec.RoomCount, &rec.GridText, &rec.Document, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	return &rec, nil
}

// GetLayoutByName retrieves a layout by name (case-insensitive).
func (s *Store) GetLayoutByName(name string) (*LayoutRecord, error) {
	var rec LayoutRecord

	query := s.qb.Build(
		"SELECT id, name, seed, grid_size, room_count, grid_text, document, created_at FROM layouts WHERE name = ?",
	)
	err := s.db.QueryRow(query, name).Scan(
		&rec.ID, &rec.Name, &rec.Seed, &rec.GridSize, &rec.RoomCount, &rec.GridText, &rec.Document, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	return &rec, nil
}

// ListLayouts returns archived layouts, newest first. A limit of zero
// or less returns all of them.
func (s *Store) ListLayouts(limit int) ([]*LayoutRecord, error) {
	query := "SELECT id, name, seed, grid_size, room_count, grid_text, document, created_at FROM layouts ORDER BY created_at DESC, id DESC"

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(s.qb.Build(query+" LIMIT ?"), limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	defer rows.Close()

	var layouts []*LayoutRecord
	for rows.Next() {
		var rec LayoutRecord
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Seed, &rec.GridSize, &rec.RoomCount, &rec.GridText, &rec.Document, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan layout: %w", err)
		}
		layouts = append(layouts, &rec)
	}

	return layouts, rows.Err()
}

// DeleteLayout removes a layout from the archive.
func (s *Store) DeleteLayout(id int64) error {
	query := s.qb.Build("DELETE FROM layouts WHERE id = ?")
	result, err := s.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrLayoutNotFound
	}
	return nil
}

// CountLayouts returns the total number of archived layouts.
func (s *Store) CountLayouts() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM layouts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count layouts: %w", err)
	}
	return count, nil
}
