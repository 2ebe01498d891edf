// Package intelligence layers language-model assistance over the
// deterministic planning engine: a generative schedule strategy and a
// motivational message service, both with guaranteed non-LLM fallbacks.
package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/attuneapp/attune/internal/contract"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/attuneapp/attune/internal/llm"
	"github.com/attuneapp/attune/internal/scheduler"
	"github.com/attuneapp/attune/internal/service"
)

// llmSchedule is the JSON structure the model outputs.
type llmSchedule struct {
	Schedule    []llmPlacement `json:"schedule"`
	Warnings    []string       `json:"warnings"`
	Suggestions []string       `json:"suggestions"`
}

// llmPlacement is one task-to-block assignment proposed by the model.
type llmPlacement struct {
	TaskID       string   `json:"task_id"`
	Block        int      `json:"block"`
	AllocatedMin int      `json:"allocated_minutes"`
	Confidence   float64  `json:"confidence"`
	Notes        []string `json:"notes"`
}

// GenerativeScheduler builds a plan by asking a language model to place
// pre-analyzed tasks into time blocks. Analysis scores always come from the
// deterministic analyzer; only placement is delegated. Any failure returns
// a typed error so the plan service falls back to the engine.
type GenerativeScheduler struct {
	client llm.LLMClient
}

var _ service.ScheduleStrategy = (*GenerativeScheduler)(nil)

// NewGenerativeScheduler wraps an LLM client as a schedule strategy.
func NewGenerativeScheduler(client llm.LLMClient) *GenerativeScheduler {
	return &GenerativeScheduler{client: client}
}

func (g *GenerativeScheduler) Name() string { return "generative scheduler" }

// Schedule produces a full plan response, or an error when the model is
// unreachable or its output cannot be validated.
func (g *GenerativeScheduler) Schedule(ctx context.Context, plan contract.NormalizedPlan, now time.Time) (*contract.PlanResponse, error) {
	if g.client == nil || !g.client.Available(ctx) {
		return nil, llm.ErrUnavailable
	}

	analyzed := scheduler.AnalyzeTasks(plan.Tasks, plan.Stress, now)
	scheduler.SortByComposite(analyzed)

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSchedule,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   buildSchedulePrompt(plan, analyzed, now),
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON[llmSchedule](resp.Text, nil)
	if err != nil {
		return nil, err
	}

	entries, warnings, err := g.placements(parsed, analyzed, plan)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, parsed.Warnings...)

	return g.assemble(plan, analyzed, entries, warnings, parsed.Suggestions, now), nil
}

// placements validates the model's assignments against the input and turns
// them into schedule entries. Structural violations (unknown ids, block
// indexes out of range, capacity overruns) are errors; softer problems
// (deadline misses, unplaced tasks) become warnings.
func (g *GenerativeScheduler) placements(parsed llmSchedule, analyzed []domain.AnalyzedTask, plan contract.NormalizedPlan) ([]domain.ScheduleEntry, []string, error) {
	byID := make(map[string]domain.AnalyzedTask, len(analyzed))
	for _, at := range analyzed {
		byID[at.Task.ID] = at
	}

	grouped := make(map[string][]llmPlacement)
	order := make([]string, 0, len(analyzed))
	blockRemaining := make([]int, len(plan.Blocks))
	for i, b := range plan.Blocks {
		blockRemaining[i] = b.CapacityMin()
	}

	for _, p := range parsed.Schedule {
		if _, ok := byID[p.TaskID]; !ok {
			return nil, nil, fmt.Errorf("%w: placement references unknown task %q", llm.ErrInvalidOutput, p.TaskID)
		}
		if p.Block < 0 || p.Block >= len(plan.Blocks) {
			return nil, nil, fmt.Errorf("%w: placement for %q uses block index %d", llm.ErrInvalidOutput, p.TaskID, p.Block)
		}
		if p.AllocatedMin < scheduler.MinChunkMin {
			return nil, nil, fmt.Errorf("%w: placement for %q allocates %d minutes", llm.ErrInvalidOutput, p.TaskID, p.AllocatedMin)
		}
		blockRemaining[p.Block] -= p.AllocatedMin
		if blockRemaining[p.Block] < 0 {
			return nil, nil, fmt.Errorf("%w: block %d is overfilled", llm.ErrInvalidOutput, p.Block)
		}
		if len(grouped[p.TaskID]) == 0 {
			order = append(order, p.TaskID)
		}
		grouped[p.TaskID] = append(grouped[p.TaskID], p)
	}

	var warnings []string
	var entries []domain.ScheduleEntry

	for _, id := range order {
		at := byID[id]
		placements := grouped[id]

		total := 0
		for _, p := range placements {
			total += p.AllocatedMin
		}
		if total > at.Task.DurationMin {
			return nil, nil, fmt.Errorf("%w: task %q allocated %d of %d requested minutes",
				llm.ErrInvalidOutput, id, total, at.Task.DurationMin)
		}

		for i, p := range placements {
			block := plan.Blocks[p.Block]
			entry := domain.ScheduleEntry{
				Task:            at.Task,
				Block:           &block,
				AllocatedMin:    p.AllocatedMin,
				Status:          domain.StatusComplete,
				Confidence:      clamp01(p.Confidence),
				DeadlineUrgency: at.DeadlineUrgency,
				Notes:           p.Notes,
			}
			if len(placements) > 1 {
				entry.Segment = fmt.Sprintf("Part %d", i+1)
			}
			if i < len(placements)-1 || total < at.Task.DurationMin {
				entry.Status = domain.StatusPartial
			}
			if at.Task.Deadline != nil && block.Start.After(*at.Task.Deadline) {
				warnings = append(warnings, fmt.Sprintf(
					"task %q is scheduled after its deadline", at.Task.Title))
			}
			entries = append(entries, entry)
		}
	}

	// Every input task must surface in the schedule, placed or not.
	for _, at := range analyzed {
		if _, ok := grouped[at.Task.ID]; ok {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("task %q was not placed by the schedule generator", at.Task.Title))
		entries = append(entries, domain.ScheduleEntry{
			Task:            at.Task,
			Status:          domain.StatusNotScheduled,
			DeadlineUrgency: at.DeadlineUrgency,
			Notes:           []string{"The schedule generator could not place this task"},
		})
	}

	return entries, warnings, nil
}

// assemble mirrors the engine's response shape for the generative path.
func (g *GenerativeScheduler) assemble(plan contract.NormalizedPlan, analyzed []domain.AnalyzedTask, entries []domain.ScheduleEntry, warnings, suggestions []string, now time.Time) *contract.PlanResponse {
	byID := make(map[string]domain.AnalyzedTask, len(analyzed))
	for _, at := range analyzed {
		byID[at.Task.ID] = at
	}

	capacity := scheduler.PlanCapacity(plan.Tasks, plan.Blocks)
	insights := scheduler.Summarize(entries, plan.Stress)
	recommendations := append(insights.Recommendations, suggestions...)

	schedule := make([]contract.ScheduleEntryOut, 0, len(entries))
	scheduled := make(map[string]bool)
	distribution := make(map[string]int)
	for _, t := range plan.Tasks {
		distribution[string(t.Priority)]++
	}

	for _, e := range entries {
		at := byID[e.Task.ID]
		out := contract.ScheduleEntryOut{
			Task: contract.TaskOut{
				ID:                  e.Task.ID,
				Title:               e.Task.Title,
				Priority:            string(e.Task.Priority),
				EstimatedDuration:   e.Task.DurationMin,
				TaskType:            string(at.Type),
				Complexity:          at.Complexity,
				Importance:          at.Importance,
				StressCompatibility: at.StressCompatibility,
				CompositePriority:   at.CompositePriority,
			},
			Segment:              e.Segment,
			AllocatedDuration:    e.AllocatedMin,
			CompletionStatus:     string(e.Status),
			SchedulingConfidence: e.Confidence,
			DeadlineUrgency:      e.DeadlineUrgency,
			Notes:                e.Notes,
		}
		if e.Block != nil {
			out.TimeBlock = &contract.TimeBlockOut{Start: e.Block.Start, End: e.Block.End}
		}
		if e.Scheduled() {
			scheduled[e.Task.ID] = true
		}
		schedule = append(schedule, out)
	}

	return &contract.PlanResponse{
		OptimizedSchedule: schedule,
		StressAnalysis: contract.StressAnalysis{
			Level:              plan.Stress.StressLevel,
			Mood:               string(plan.Stress.Mood),
			Impact:             service.StressImpact(plan.Stress.StressLevel),
			RecommendedActions: service.StressActions(plan.Stress),
		},
		TaskAnalysis: contract.TaskAnalysis{
			TotalTasks:           len(plan.Tasks),
			ScheduledTasks:       len(scheduled),
			PriorityDistribution: distribution,
		},
		Insights: contract.InsightsOut{
			Strategy:           string(capacity.Strategy),
			CompleteCount:      insights.CompleteCount,
			PartialCount:       insights.PartialCount,
			ScaledCount:        insights.ScaledCount,
			NotScheduledCount:  insights.NotScheduledCount,
			TotalAllocatedMin:  insights.TotalAllocatedMin,
			AvailableMinutes:   capacity.SupplyMin,
			RequestedMinutes:   capacity.DemandMin,
			UrgentTaskCoverage: insights.UrgentCoverage,
			Recommendations:    recommendations,
		},
		Metadata: contract.Metadata{
			GeneratedAt:    now,
			AnalysisMethod: contract.MethodLLM,
		},
		Warnings: warnings,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
