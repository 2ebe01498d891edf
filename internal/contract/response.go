package contract

import "time"

// PlanResponse is the wire shape of a finished plan.
type PlanResponse struct {
	OptimizedSchedule []ScheduleEntryOut `json:"optimized_schedule"`
	StressAnalysis    StressAnalysis     `json:"stress_analysis"`
	TaskAnalysis      TaskAnalysis       `json:"task_analysis"`
	Insights          InsightsOut        `json:"insights"`
	Metadata          Metadata           `json:"metadata"`
	Warnings          []string           `json:"warnings,omitempty"`
}

// ScheduleEntryOut is one line of the optimized schedule.
type ScheduleEntryOut struct {
	Task                 TaskOut       `json:"task"`
	Segment              string        `json:"segment,omitempty"`
	TimeBlock            *TimeBlockOut `json:"time_block"`
	AllocatedDuration    int           `json:"allocated_duration"`
	CompletionStatus     string        `json:"completion_status"`
	SchedulingConfidence float64       `json:"scheduling_confidence"`
	DeadlineUrgency      float64       `json:"deadline_urgency"`
	Notes                []string      `json:"notes"`
}

// TaskOut echoes the task identity plus its analysis scores.
type TaskOut struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Priority            string  `json:"priority"`
	EstimatedDuration   int     `json:"estimated_duration"`
	TaskType            string  `json:"task_type"`
	Complexity          float64 `json:"complexity"`
	Importance          float64 `json:"importance"`
	StressCompatibility float64 `json:"stress_compatibility"`
	CompositePriority   float64 `json:"composite_priority"`
}

// TimeBlockOut is the assigned availability window, null for unscheduled
// entries.
type TimeBlockOut struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// StressAnalysis reports the stress context the plan was built under.
type StressAnalysis struct {
	Level              int      `json:"level"`
	Mood               string   `json:"mood"`
	Impact             string   `json:"impact"`
	RecommendedActions []string `json:"recommended_actions"`
}

// TaskAnalysis aggregates simple task statistics.
type TaskAnalysis struct {
	TotalTasks           int            `json:"total_tasks"`
	ScheduledTasks       int            `json:"scheduled_tasks"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
}

// InsightsOut carries coverage statistics and recommendations.
type InsightsOut struct {
	Strategy           string   `json:"strategy"`
	CompleteCount      int      `json:"complete_count"`
	PartialCount       int      `json:"partial_count"`
	ScaledCount        int      `json:"scaled_count"`
	NotScheduledCount  int      `json:"not_scheduled_count"`
	TotalAllocatedMin  int      `json:"total_allocated_minutes"`
	AvailableMinutes   int      `json:"available_minutes"`
	RequestedMinutes   int      `json:"requested_minutes"`
	UrgentTaskCoverage float64  `json:"urgent_task_coverage"`
	Recommendations    []string `json:"recommendations"`
}

// Metadata identifies when and how the plan was produced.
type Metadata struct {
	GeneratedAt    time.Time `json:"generated_at"`
	AnalysisMethod string    `json:"analysis_method"`
}

// Analysis method values reported in response metadata.
const (
	MethodRuleBased = "rule_based"
	MethodLLM       = "llm_assisted"
)
