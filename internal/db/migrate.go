package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS staff (
		device_name   TEXT PRIMARY KEY,
		display_name  TEXT NOT NULL,
		active_seller TEXT REFERENCES sellers(id),
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sellers (
		id           TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		is_active    INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS interactions (
		id               TEXT PRIMARY KEY,
		interaction_type TEXT NOT NULL
		                 CHECK(interaction_type IN ('walk_by','conversation')),
		engaged          INTEGER NOT NULL DEFAULT 0,
		staff_device     TEXT,
		seller_id        TEXT REFERENCES sellers(id),
		persona          TEXT,
		hook             TEXT,
		sale_type        TEXT,
		quantity         INTEGER,
		unit_price       INTEGER,
		total_amount     INTEGER,
		lead_type        TEXT,
		objection        TEXT,
		notes            TEXT NOT NULL DEFAULT '',
		timestamp        TEXT NOT NULL,
		deleted_at       TEXT,
		updated_at       TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_interactions_timestamp ON interactions(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_seller ON interactions(seller_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_deleted ON interactions(deleted_at)`,

	`CREATE TABLE IF NOT EXISTS events (
		id           TEXT PRIMARY KEY,
		description  TEXT NOT NULL,
		staff_device TEXT,
		seller_id    TEXT REFERENCES sellers(id),
		timestamp    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp)`,
}
