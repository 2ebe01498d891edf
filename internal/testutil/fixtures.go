package testutil

import (
	"time"

	"github.com/attuneapp/attune/internal/domain"
	"github.com/google/uuid"
)

// FixtureTime is the reference instant used by persistence fixtures.
var FixtureTime = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// PlanRun options
type PlanRunOption func(*domain.PlanRun)

func WithRunCreatedAt(t time.Time) PlanRunOption {
	return func(r *domain.PlanRun) { r.CreatedAt = t }
}

func WithRunStress(level int, mood string) PlanRunOption {
	return func(r *domain.PlanRun) {
		r.StressLevel = level
		r.Mood = mood
	}
}

func WithRunMethod(method string) PlanRunOption {
	return func(r *domain.PlanRun) { r.AnalysisMethod = method }
}

func NewTestPlanRun(opts ...PlanRunOption) *domain.PlanRun {
	r := &domain.PlanRun{
		ID:             uuid.NewString(),
		CreatedAt:      FixtureTime,
		StressLevel:    4,
		Mood:           "focused",
		AnalysisMethod: "rule_based",
		Strategy:       "adequate_time",
		TotalTasks:     2,
		ScheduledTasks: 2,
		AllocatedMin:   180,
		ResponseJSON:   `{"optimized_schedule":[]}`,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestRunEntry(runID, title, status string, allocatedMin int) domain.PlanRunEntry {
	start := FixtureTime.Add(time.Hour)
	end := start.Add(time.Duration(allocatedMin) * time.Minute)
	return domain.PlanRunEntry{
		ID:           uuid.NewString(),
		RunID:        runID,
		TaskTitle:    title,
		Status:       status,
		AllocatedMin: allocatedMin,
		Confidence:   0.8,
		BlockStart:   &start,
		BlockEnd:     &end,
	}
}

func NewTestStressLog(score float64, level string) *domain.StressLog {
	return &domain.StressLog{
		ID:          uuid.NewString(),
		CreatedAt:   FixtureTime,
		Score:       score,
		Level:       level,
		Mood:        "focused",
		Keywords:    []string{"deadline"},
		Explanation: "You seem to be under some pressure.",
	}
}
