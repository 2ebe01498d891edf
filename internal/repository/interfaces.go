// Package repository persists scheduling history in SQLite. The planning
// engine itself never touches storage; the CLI records runs and stress
// estimates after the fact so trends can be reviewed later.
package repository

import (
	"context"
	"time"

	"github.com/attuneapp/attune/internal/domain"
)

// StressTrend summarizes recent stress estimates.
type StressTrend struct {
	Count        int
	AverageScore float64
	HighCount    int
}

type PlanHistoryRepo interface {
	// SaveRun stores a run and its schedule lines atomically.
	SaveRun(ctx context.Context, run *domain.PlanRun, entries []domain.PlanRunEntry) error
	GetRun(ctx context.Context, id string) (*domain.PlanRun, error)
	ListEntries(ctx context.Context, runID string) ([]domain.PlanRunEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.PlanRun, error)
	DeleteRun(ctx context.Context, id string) error
}

type StressLogRepo interface {
	Create(ctx context.Context, log *domain.StressLog) error
	ListRecent(ctx context.Context, limit int) ([]*domain.StressLog, error)
	TrendSince(ctx context.Context, since time.Time) (*StressTrend, error)
}
