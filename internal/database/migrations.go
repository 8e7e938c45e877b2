package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS athletes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		second_last_name TEXT NOT NULL DEFAULT '',
		photo_url TEXT,
		age INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		sport TEXT NOT NULL DEFAULT '',
		curp TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS programs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0
	)`,
	// one row per assigned athlete, so an athlete belongs to at most one program
	`CREATE TABLE IF NOT EXISTS assignments (
		athlete_id INTEGER PRIMARY KEY,
		program_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (athlete_id) REFERENCES athletes(id) ON DELETE CASCADE,
		FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_program
		ON assignments(program_id, position)`,
	`CREATE TABLE IF NOT EXISTS catalog_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		resource TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_records_resource
		ON catalog_records(resource)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		athlete_id INTEGER NOT NULL,
		consulting_room_id INTEGER NOT NULL,
		responsible_id INTEGER NOT NULL,
		area TEXT NOT NULL,
		starts_at TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled',
		notes TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (athlete_id) REFERENCES athletes(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_room
		ON appointments(consulting_room_id, starts_at)`,
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
