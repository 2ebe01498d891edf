package service

import (
	"context"
	"time"

	"github.com/attuneapp/attune/internal/contract"
	"github.com/attuneapp/attune/internal/textscore"
)

// PlanService produces an optimized schedule from a planning request.
type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

// ScheduleStrategy builds a complete plan response from normalized input.
// A generative strategy may fail (model unavailable, unparsable output);
// the plan service then falls back to the deterministic engine.
type ScheduleStrategy interface {
	Name() string
	Schedule(ctx context.Context, plan contract.NormalizedPlan, now time.Time) (*contract.PlanResponse, error)
}

// StressEstimate is the result of scoring free text for stress signals.
type StressEstimate struct {
	Score       float64
	Level       string // Low, Medium, High
	Keywords    []string
	Explanation string
	Sentiment   textscore.Sentiment
}

// StressService estimates stress from a free-text check-in.
type StressService interface {
	Estimate(ctx context.Context, text string) (*StressEstimate, error)
}

// MotivationRequest asks for an encouraging message in the context of the
// user's current stress and a suggested next step.
type MotivationRequest struct {
	StressLevel         int
	RecommendedActivity string
	UserMessage         string
}

// MotivationResponse carries the generated message. Generated is false when
// the fixed fallback text was used instead of the language model.
type MotivationResponse struct {
	Message   string
	Generated bool
}

// MotivationService produces short motivational messages.
type MotivationService interface {
	Motivate(ctx context.Context, req MotivationRequest) (*MotivationResponse, error)
}
