package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/attuneapp/attune/internal/db"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/google/uuid"
)

// SQLiteStressLogRepo implements StressLogRepo using a SQLite database.
type SQLiteStressLogRepo struct {
	db db.DBTX
}

// NewSQLiteStressLogRepo creates a new SQLiteStressLogRepo.
func NewSQLiteStressLogRepo(dbtx db.DBTX) *SQLiteStressLogRepo {
	return &SQLiteStressLogRepo{db: dbtx}
}

func (r *SQLiteStressLogRepo) Create(ctx context.Context, log *domain.StressLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO stress_logs (id, created_at, score, level, mood, keywords, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.CreatedAt.UTC().Format(time.RFC3339),
		log.Score,
		log.Level,
		log.Mood,
		joinKeywords(log.Keywords),
		log.Explanation,
	)
	if err != nil {
		return fmt.Errorf("inserting stress log: %w", err)
	}
	return nil
}

func (r *SQLiteStressLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.StressLog, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT id, created_at, score, level, mood, keywords, explanation
		FROM stress_logs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent stress logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.StressLog
	for rows.Next() {
		var l domain.StressLog
		var createdAt, keywords string
		if err := rows.Scan(&l.ID, &createdAt, &l.Score, &l.Level, &l.Mood, &keywords, &l.Explanation); err != nil {
			return nil, fmt.Errorf("scanning stress log: %w", err)
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		l.Keywords = splitKeywords(keywords)
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// TrendSince aggregates estimates recorded at or after the given time.
func (r *SQLiteStressLogRepo) TrendSince(ctx context.Context, since time.Time) (*StressTrend, error) {
	query := `SELECT COUNT(*),
		COALESCE(AVG(score), 0),
		COALESCE(SUM(CASE WHEN level = 'High' THEN 1 ELSE 0 END), 0)
		FROM stress_logs WHERE created_at >= ?`
	var trend StressTrend
	err := r.db.QueryRowContext(ctx, query, since.UTC().Format(time.RFC3339)).
		Scan(&trend.Count, &trend.AverageScore, &trend.HighCount)
	if err != nil {
		return nil, fmt.Errorf("computing stress trend: %w", err)
	}
	return &trend, nil
}
