package capture

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mpvnotes/internal/config"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS captures (
    id               TEXT PRIMARY KEY,
    media            TEXT NOT NULL,
    position_seconds INTEGER NOT NULL,
    screenshot_path  TEXT NOT NULL,
    ocr_text         TEXT NOT NULL DEFAULT '',
    created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_captures_media ON captures(media);
`

// ErrNotFound is returned when a capture id does not exist.
var ErrNotFound = errors.New("capture not found")

// Capture is one stored screenshot, optionally with recognized text.
type Capture struct {
	ID              string
	Media           string
	PositionSeconds int
	ScreenshotPath  string
	OCRText         string
	CreatedAt       time.Time
}

// Store manages capture persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the capture database.
func Open(cfg *config.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Paths.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	dbPath := cfg.CaptureDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set schema version: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Add inserts a capture, assigning an id and timestamp when absent.
func (s *Store) Add(ctx context.Context, c Capture) (*Capture, error) {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO captures (id, media, position_seconds, screenshot_path, ocr_text, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Media,
		c.PositionSeconds,
		c.ScreenshotPath,
		c.OCRText,
		c.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert capture: %w", err)
	}
	return &c, nil
}

// SetOCRText attaches recognized text to an existing capture.
func (s *Store) SetOCRText(ctx context.Context, id, text string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE captures SET ocr_text = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("update capture: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// List returns captures newest first, optionally filtered by media path.
func (s *Store) List(ctx context.Context, media string) ([]Capture, error) {
	query := `SELECT id, media, position_seconds, screenshot_path, ocr_text, created_at
              FROM captures`
	args := []any{}
	if strings.TrimSpace(media) != "" {
		query += ` WHERE media = ?`
		args = append(args, media)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list captures: %w", err)
	}
	defer rows.Close()

	var captures []Capture
	for rows.Next() {
		var c Capture
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Media, &c.PositionSeconds, &c.ScreenshotPath, &c.OCRText, &createdAt); err != nil {
			return nil, fmt.Errorf("scan capture: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			c.CreatedAt = parsed
		}
		captures = append(captures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate captures: %w", err)
	}
	return captures, nil
}

// Delete removes a capture row. The screenshot file is left alone.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM captures WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete capture: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
