package domain

import "time"

// DefaultDurationMin is substituted when a task arrives without a usable
// duration estimate.
const DefaultDurationMin = 60

type Task struct {
	ID          string
	Title       string
	Description string
	Deadline    *time.Time
	Priority    Priority
	DurationMin int
	Category    string
}

// TimeBlock is a bounded interval of available capacity.
type TimeBlock struct {
	Start time.Time
	End   time.Time
	Label string
}

// CapacityMin returns the block's capacity in whole minutes.
// Inverted or zero-length blocks contribute zero.
func (b TimeBlock) CapacityMin() int {
	mins := int(b.End.Sub(b.Start).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// StressContext carries the caller-supplied stress and mood state for a run.
type StressContext struct {
	StressLevel int // 0–10
	Mood        Mood
}

// NewStressContext clamps the stress level into 0–10 and normalizes the mood.
func NewStressContext(level int, mood string) StressContext {
	if level < 0 {
		level = 0
	}
	if level > 10 {
		level = 10
	}
	return StressContext{StressLevel: level, Mood: ParseMood(mood)}
}
