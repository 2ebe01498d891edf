package domain

// AnalyzedTask wraps a Task with its derived scores. All score fields are
// in [0,1]; Type is a closed enumeration.
type AnalyzedTask struct {
	Task                Task
	DeadlineUrgency     float64
	Importance          float64
	Complexity          float64
	StressCompatibility float64
	Type                TaskType
	CompositePriority   float64

	// Degraded marks a task whose analysis failed and was replaced by the
	// documented default record. Scheduling confidence is lowered for it.
	Degraded bool
}

// ScheduleEntry is the terminal classification of how one task (or one
// segment of a split task) was placed.
type ScheduleEntry struct {
	Task            Task
	Segment         string // "" for unsplit tasks, otherwise "Part N"
	Block           *TimeBlock
	AllocatedMin    int
	Status          CompletionStatus
	Confidence      float64
	DeadlineUrgency float64
	Notes           []string
}

// Scheduled reports whether the entry received any time at all.
func (e ScheduleEntry) Scheduled() bool {
	return e.Status != StatusNotScheduled
}
