package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/attuneapp/attune/internal/db"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/google/uuid"
)

// SQLitePlanHistoryRepo implements PlanHistoryRepo over a DBTX, so it works
// both on a plain connection and inside a unit of work.
type SQLitePlanHistoryRepo struct {
	db db.DBTX
}

// NewSQLitePlanHistoryRepo creates a new SQLitePlanHistoryRepo.
func NewSQLitePlanHistoryRepo(dbtx db.DBTX) *SQLitePlanHistoryRepo {
	return &SQLitePlanHistoryRepo{db: dbtx}
}

func (r *SQLitePlanHistoryRepo) SaveRun(ctx context.Context, run *domain.PlanRun, entries []domain.PlanRunEntry) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO plan_runs (id, created_at, stress_level, mood, analysis_method, strategy, total_tasks, scheduled_tasks, allocated_min, response_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339),
		run.StressLevel,
		run.Mood,
		run.AnalysisMethod,
		run.Strategy,
		run.TotalTasks,
		run.ScheduledTasks,
		run.AllocatedMin,
		run.ResponseJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting plan run: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.RunID = run.ID
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_run_entries (id, run_id, task_title, segment, status, allocated_min, confidence, block_start, block_end)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID,
			e.RunID,
			e.TaskTitle,
			e.Segment,
			e.Status,
			e.AllocatedMin,
			e.Confidence,
			nullableTimeToString(e.BlockStart),
			nullableTimeToString(e.BlockEnd),
		)
		if err != nil {
			return fmt.Errorf("inserting plan run entry: %w", err)
		}
	}
	return nil
}

func (r *SQLitePlanHistoryRepo) GetRun(ctx context.Context, id string) (*domain.PlanRun, error) {
	query := `SELECT id, created_at, stress_level, mood, analysis_method, strategy, total_tasks, scheduled_tasks, allocated_min, response_json
		FROM plan_runs WHERE id = ?`
	return r.scanRun(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePlanHistoryRepo) ListEntries(ctx context.Context, runID string) ([]domain.PlanRunEntry, error) {
	query := `SELECT id, run_id, task_title, segment, status, allocated_min, confidence, block_start, block_end
		FROM plan_run_entries WHERE run_id = ? ORDER BY block_start, task_title`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing plan run entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.PlanRunEntry
	for rows.Next() {
		var e domain.PlanRunEntry
		var start, end sql.NullString
		if err := rows.Scan(&e.ID, &e.RunID, &e.TaskTitle, &e.Segment, &e.Status,
			&e.AllocatedMin, &e.Confidence, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning plan run entry: %w", err)
		}
		e.BlockStart = parseNullableTime(start)
		e.BlockEnd = parseNullableTime(end)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLitePlanHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.PlanRun, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT id, created_at, stress_level, mood, analysis_method, strategy, total_tasks, scheduled_tasks, allocated_min, response_json
		FROM plan_runs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent plan runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.PlanRun
	for rows.Next() {
		run, err := r.scanRunRows(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *SQLitePlanHistoryRepo) DeleteRun(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan run %s not found", id)
	}
	return nil
}

func (r *SQLitePlanHistoryRepo) scanRun(row *sql.Row) (*domain.PlanRun, error) {
	var run domain.PlanRun
	var createdAt string
	err := row.Scan(&run.ID, &createdAt, &run.StressLevel, &run.Mood,
		&run.AnalysisMethod, &run.Strategy, &run.TotalTasks, &run.ScheduledTasks,
		&run.AllocatedMin, &run.ResponseJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan run: %w", err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &run, nil
}

func (r *SQLitePlanHistoryRepo) scanRunRows(rows *sql.Rows) (*domain.PlanRun, error) {
	var run domain.PlanRun
	var createdAt string
	err := rows.Scan(&run.ID, &createdAt, &run.StressLevel, &run.Mood,
		&run.AnalysisMethod, &run.Strategy, &run.TotalTasks, &run.ScheduledTasks,
		&run.AllocatedMin, &run.ResponseJSON)
	if err != nil {
		return nil, fmt.Errorf("scanning plan run: %w", err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &run, nil
}
