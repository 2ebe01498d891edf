package service

import (
	"context"
	"fmt"
	"time"

	"github.com/attuneapp/attune/internal/contract"
	"github.com/attuneapp/attune/internal/scheduler"
)

type planService struct {
	generative ScheduleStrategy // optional; nil means engine only
	engineCfg  scheduler.Config
	observer   UseCaseObserver
	clock      func() time.Time
}

// PlanServiceOption configures a plan service.
type PlanServiceOption func(*planService)

// WithGenerativeStrategy makes the service try the given strategy before
// the deterministic engine.
func WithGenerativeStrategy(s ScheduleStrategy) PlanServiceOption {
	return func(ps *planService) { ps.generative = s }
}

// WithEngineConfig sets the deterministic engine's behavior switches.
func WithEngineConfig(cfg scheduler.Config) PlanServiceOption {
	return func(ps *planService) { ps.engineCfg = cfg }
}

// WithObserver attaches use-case telemetry.
func WithObserver(o UseCaseObserver) PlanServiceOption {
	return func(ps *planService) { ps.observer = o }
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) PlanServiceOption {
	return func(ps *planService) { ps.clock = clock }
}

// NewPlanService creates the planning orchestrator.
func NewPlanService(opts ...PlanServiceOption) PlanService {
	ps := &planService{
		observer: NoopUseCaseObserver{},
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Plan runs normalize → strategy → engine fallback. Any panic below the
// orchestrator is converted into a structured error so the caller always
// gets either a well-formed response or a typed failure, never a fault.
func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	start := s.clock()
	norm := req.Normalize()

	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &contract.PlanError{
				Code:        contract.PlanErrInternal,
				Message:     fmt.Sprintf("unexpected failure during planning: %v", r),
				TaskCount:   len(norm.Tasks),
				StressLevel: norm.Stress.StressLevel,
				Mood:        string(norm.Stress.Mood),
			}
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			Duration:  s.clock().Sub(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
			Fields: map[string]any{
				"tasks":  len(norm.Tasks),
				"blocks": len(norm.Blocks),
				"stress": norm.Stress.StressLevel,
			},
		})
	}()

	if len(norm.Tasks) == 0 {
		return nil, &contract.PlanError{
			Code:        contract.PlanErrNoTasks,
			Message:     "request contains no tasks to schedule",
			StressLevel: norm.Stress.StressLevel,
			Mood:        string(norm.Stress.Mood),
		}
	}

	if s.generative != nil {
		generated, gerr := s.generative.Schedule(ctx, norm, start)
		if gerr == nil && generated != nil {
			generated.Warnings = append(append([]string{}, norm.Warnings...), generated.Warnings...)
			return generated, nil
		}
		norm.Warnings = append(norm.Warnings, fmt.Sprintf(
			"%s strategy failed (%v) - using deterministic engine", s.generative.Name(), gerr))
	}

	return s.runEngine(norm, start), nil
}

// runEngine executes the deterministic pipeline over normalized input.
func (s *planService) runEngine(norm contract.NormalizedPlan, now time.Time) *contract.PlanResponse {
	analyzed := scheduler.AnalyzeTasks(norm.Tasks, norm.Stress, now)
	scheduler.SortByComposite(analyzed)

	capacity := scheduler.PlanCapacity(norm.Tasks, norm.Blocks)
	entries := scheduler.Allocate(analyzed, norm.Blocks, norm.Stress, capacity, s.engineCfg)
	insights := scheduler.Summarize(entries, norm.Stress)

	return assembleResponse(norm, analyzed, entries, capacity, insights, now, contract.MethodRuleBased)
}
