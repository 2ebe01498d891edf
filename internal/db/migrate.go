package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// additions tolerate re-runs via the duplicate-column check.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_runs (
		id              TEXT PRIMARY KEY,
		created_at      TEXT NOT NULL,
		stress_level    INTEGER NOT NULL,
		mood            TEXT NOT NULL,
		analysis_method TEXT NOT NULL
		                CHECK(analysis_method IN ('rule_based','llm_assisted')),
		strategy        TEXT NOT NULL,
		total_tasks     INTEGER NOT NULL,
		scheduled_tasks INTEGER NOT NULL,
		allocated_min   INTEGER NOT NULL,
		response_json   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_runs_created ON plan_runs(created_at)`,

	`CREATE TABLE IF NOT EXISTS plan_run_entries (
		id            TEXT PRIMARY KEY,
		run_id        TEXT NOT NULL REFERENCES plan_runs(id) ON DELETE CASCADE,
		task_title    TEXT NOT NULL,
		segment       TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL
		              CHECK(status IN ('complete','partial','scaled','not_scheduled')),
		allocated_min INTEGER NOT NULL,
		confidence    REAL NOT NULL,
		block_start   TEXT,
		block_end     TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_run_entries_run ON plan_run_entries(run_id)`,

	`CREATE TABLE IF NOT EXISTS stress_logs (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL,
		score       REAL NOT NULL,
		level       TEXT NOT NULL CHECK(level IN ('Low','Medium','High')),
		keywords    TEXT NOT NULL DEFAULT '',
		explanation TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stress_logs_created ON stress_logs(created_at)`,

	// Mood was added after the first release of the stress command.
	`ALTER TABLE stress_logs ADD COLUMN mood TEXT NOT NULL DEFAULT ''`,
}
