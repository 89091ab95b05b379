package database

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; the schema_version table tracks progress.
var migrations = []string{
	// 1: dataset cache for the last successfully ingested asset
	`CREATE TABLE IF NOT EXISTS projects (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		record_id TEXT NOT NULL,
		lang TEXT NOT NULL,
		kind TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		project_name TEXT NOT NULL DEFAULT '',
		province TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		capital_cost REAL NOT NULL DEFAULT 0,
		capital_cost_raw TEXT NOT NULL DEFAULT '',
		capital_cost_range TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		clean_technology TEXT NOT NULL DEFAULT '',
		clean_technology_type TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL DEFAULT 0,
		lon REAL NOT NULL DEFAULT 0,
		line_type TEXT NOT NULL DEFAULT '',
		paths TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_lang ON projects(lang)`,
}

// migrate brings the schema up to date.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", i+1); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
	}
	return nil
}
