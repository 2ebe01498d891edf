package service

import (
	"time"

	"github.com/attuneapp/attune/internal/contract"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/attuneapp/attune/internal/scheduler"
)

// assembleResponse renders the engine's output into the wire response.
func assembleResponse(
	norm contract.NormalizedPlan,
	analyzed []domain.AnalyzedTask,
	entries []domain.ScheduleEntry,
	capacity scheduler.CapacityPlan,
	insights scheduler.Insights,
	now time.Time,
	method string,
) *contract.PlanResponse {
	byID := make(map[string]domain.AnalyzedTask, len(analyzed))
	for _, at := range analyzed {
		byID[at.Task.ID] = at
	}

	schedule := make([]contract.ScheduleEntryOut, 0, len(entries))
	scheduledTasks := make(map[string]bool)
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
			scheduledTasks[e.Task.ID] = true
		}
		schedule = append(schedule, out)
	}

	distribution := make(map[string]int)
	for _, t := range norm.Tasks {
		distribution[string(t.Priority)]++
	}

	return &contract.PlanResponse{
		OptimizedSchedule: schedule,
		StressAnalysis: contract.StressAnalysis{
			Level:              norm.Stress.StressLevel,
			Mood:               string(norm.Stress.Mood),
			Impact:             StressImpact(norm.Stress.StressLevel),
			RecommendedActions: StressActions(norm.Stress),
		},
		TaskAnalysis: contract.TaskAnalysis{
			TotalTasks:           len(norm.Tasks),
			ScheduledTasks:       len(scheduledTasks),
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
			Recommendations:    insights.Recommendations,
		},
		Metadata: contract.Metadata{
			GeneratedAt:    now,
			AnalysisMethod: method,
		},
		Warnings: norm.Warnings,
	}
}

// StressImpact is a one-line description of how the stress level shapes
// scheduling.
func StressImpact(level int) string {
	switch {
	case level >= 7:
		return "high - complex work is penalized and extra breaks are advised"
	case level >= 4:
		return "moderate - demanding tasks are slightly deprioritized"
	default:
		return "low - scheduling is driven by deadlines and priorities"
	}
}

// StressActions mirrors the advice the allocator attaches per entry, at the
// whole-plan level.
func StressActions(stress domain.StressContext) []string {
	var actions []string
	switch {
	case stress.StressLevel >= 7:
		actions = append(actions,
			"Start with the most stress-compatible task to build momentum",
			"Take a 5-minute break between every scheduled task",
			"Defer non-urgent decisions until stress subsides")
	case stress.StressLevel >= 4:
		actions = append(actions,
			"Alternate demanding and routine tasks",
			"Take short breaks between longer work sessions")
	default:
		actions = append(actions,
			"Good capacity for deep work - consider tackling complex tasks first")
	}
	if stress.Mood == domain.MoodTired {
		actions = append(actions, "Schedule demanding work for when your energy returns")
	}
	if stress.Mood == domain.MoodScattered {
		actions = append(actions, "Silence notifications during focused blocks")
	}
	return actions
}
