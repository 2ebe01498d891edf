package domain

import "time"

// PlanRun is one persisted scheduling run: the summary columns that history
// queries need, plus the full response JSON for exact replay.
type PlanRun struct {
	ID             string
	CreatedAt      time.Time
	StressLevel    int
	Mood           string
	AnalysisMethod string
	Strategy       string
	TotalTasks     int
	ScheduledTasks int
	AllocatedMin   int
	ResponseJSON   string
}

// PlanRunEntry is one schedule line of a persisted run, denormalized for
// history listings without unpacking the response JSON.
type PlanRunEntry struct {
	ID           string
	RunID        string
	TaskTitle    string
	Segment      string
	Status       string
	AllocatedMin int
	Confidence   float64
	BlockStart   *time.Time
	BlockEnd     *time.Time
}

// StressLog is one persisted stress estimate.
type StressLog struct {
	ID          string
	CreatedAt   time.Time
	Score       float64
	Level       string
	Mood        string
	Keywords    []string
	Explanation string
}
