package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigratedDB(t)

	// Re-running must tolerate the ALTER TABLE additions.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openMigratedDB(t)

	expected := []string{"plan_runs", "plan_run_entries", "stress_logs"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openMigratedDB(t)

	expected := []string{
		"idx_plan_runs_created",
		"idx_plan_run_entries_run",
		"idx_stress_logs_created",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_StressLogsMoodColumn(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO stress_logs (id, created_at, score, level, mood)
		VALUES ('s1', '2026-03-02T08:00:00Z', 4.5, 'Medium', 'tired')`)
	require.NoError(t, err)

	var mood string
	require.NoError(t, db.QueryRow(`SELECT mood FROM stress_logs WHERE id = 's1'`).Scan(&mood))
	assert.Equal(t, "tired", mood)
}

func TestMigrate_EntriesCascadeOnRunDelete(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO plan_runs (id, created_at, stress_level, mood, analysis_method, strategy, total_tasks, scheduled_tasks, allocated_min, response_json)
		VALUES ('r1', '2026-03-02T08:00:00Z', 4, 'focused', 'rule_based', 'adequate_time', 2, 2, 180, '{}')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO plan_run_entries (id, run_id, task_title, status, allocated_min, confidence)
		VALUES ('e1', 'r1', 'Write report', 'complete', 120, 0.8)`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM plan_runs WHERE id = 'r1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM plan_run_entries`).Scan(&count))
	assert.Zero(t, count)
}

func TestMigrate_RejectsUnknownMethod(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO plan_runs (id, created_at, stress_level, mood, analysis_method, strategy, total_tasks, scheduled_tasks, allocated_min, response_json)
		VALUES ('r1', '2026-03-02T08:00:00Z', 4, 'focused', 'psychic', 'adequate_time', 1, 1, 60, '{}')`)
	assert.Error(t, err)
}
