package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SessionRecord is a roster-owning session row.
type SessionRecord struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PinRecord is one pinned species in a session's roster. Position
// preserves insertion order so re-added species land at the end.
type PinRecord struct {
	Species  string `json:"species"`
	Position int    `json:"position"`
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS roster_pins (
	session_id TEXT NOT NULL,
	species_key TEXT NOT NULL COLLATE NOCASE,
	species TEXT NOT NULL,
	position INTEGER NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE,
	UNIQUE(session_id, species_key)
);

CREATE INDEX IF NOT EXISTS idx_roster_pins_session ON roster_pins(session_id);
`

// Store persists sessions and their rosters in SQLite. All writes are
// synchronous; roster traffic is light and callers need the result of
// an add before answering.
type Store struct {
	db *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Store{db: db}, nil
}

// InitDB creates the database schema.
func (s *Store) InitDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession inserts a fresh session with a new id.
func (s *Store) CreateSession() (SessionRecord, error) {
	record := SessionRecord{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO sessions (session_id, created_at) VALUES (?, ?)`
	if _, err := s.db.Exec(query, record.SessionID, record.CreatedAt); err != nil {
		return SessionRecord{}, fmt.Errorf("failed to create session: %w", err)
	}

	return record, nil
}

// SessionExists reports whether a session id is known.
func (s *Store) SessionExists(sessionID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sessions WHERE session_id = ?`
	if err := s.db.QueryRow(query, sessionID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddPin appends a species to a session's roster. Adding a species
// already pinned (any casing) is a no-op and returns false.
func (s *Store) AddPin(sessionID, species string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	key := strings.ToLower(strings.TrimSpace(species))

	var count int
	existsQuery := `SELECT COUNT(*) FROM roster_pins WHERE session_id = ? AND species_key = ?`
	if err := tx.QueryRow(existsQuery, sessionID, key).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existing pin: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	var next sql.NullInt64
	positionQuery := `SELECT MAX(position) FROM roster_pins WHERE session_id = ?`
	if err := tx.QueryRow(positionQuery, sessionID).Scan(&next); err != nil {
		return false, fmt.Errorf("failed to read roster position: %w", err)
	}

	insertQuery := `INSERT INTO roster_pins (session_id, species_key, species, position) VALUES (?, ?, ?, ?)`
	if _, err := tx.Exec(insertQuery, sessionID, key, strings.TrimSpace(species), next.Int64+1); err != nil {
		return false, fmt.Errorf("failed to add pin: %w", err)
	}

	return true, tx.Commit()
}

// RemovePin unpins a species. Removing an absent species is a no-op.
func (s *Store) RemovePin(sessionID, species string) error {
	key := strings.ToLower(strings.TrimSpace(species))
	query := `DELETE FROM roster_pins WHERE session_id = ? AND species_key = ?`
	_, err := s.db.Exec(query, sessionID, key)
	return err
}

// ListPins returns a session's roster in insertion order.
func (s *Store) ListPins(sessionID string) ([]PinRecord, error) {
	query := `SELECT species, position FROM roster_pins WHERE session_id = ? ORDER BY position`
	rows, err := s.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pins: %w", err)
	}
	defer rows.Close()

	pins := make([]PinRecord, 0)
	for rows.Next() {
		var pin PinRecord
		if err := rows.Scan(&pin.Species, &pin.Position); err != nil {
			return nil, fmt.Errorf("failed to scan pin: %w", err)
		}
		pins = append(pins, pin)
	}

	return pins, rows.Err()
}
