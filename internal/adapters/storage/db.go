package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the SQLite schema for the optional embedded-database
// backend. The flat-file stores do not use it.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS content (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		doc TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS submission (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		fleet_size TEXT NOT NULL DEFAULT '',
		equipment_type TEXT NOT NULL DEFAULT '',
		hear_about TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS booking (
		id TEXT PRIMARY KEY,
		submission_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		meeting_date TEXT NOT NULL DEFAULT '',
		time_slot TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending'
	);

	CREATE INDEX IF NOT EXISTS idx_booking_submission ON booking(submission_id);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
