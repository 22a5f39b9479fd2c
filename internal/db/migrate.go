package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must stay
// idempotent; ALTER TABLE duplicates are tolerated below.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS checklist_snapshots (
		case_id    TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS evidence (
		id         TEXT PRIMARY KEY,
		case_id    TEXT NOT NULL,
		item_id    TEXT NOT NULL,
		type       TEXT NOT NULL CHECK(type IN ('document','distribution','event')),
		title      TEXT NOT NULL,
		href       TEXT NOT NULL DEFAULT '',
		language   TEXT,
		meta       TEXT,
		seq        INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evidence_case_item ON evidence(case_id, item_id)`,

	`CREATE TABLE IF NOT EXISTS activity (
		id        TEXT PRIMARY KEY,
		case_id   TEXT NOT NULL,
		type      TEXT NOT NULL,
		title     TEXT NOT NULL,
		subtitle  TEXT,
		icon      TEXT,
		timestamp TEXT NOT NULL,
		seq       INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_case ON activity(case_id)`,
}

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
