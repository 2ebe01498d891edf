package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps a raw priority string to a closed Priority value.
// Unrecognized input defaults to medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	}
	return PriorityMedium
}

type Mood string

const (
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
	MoodFocused   Mood = "focused"
	MoodScattered Mood = "scattered"
)

// ParseMood maps a raw mood string to a closed Mood value.
// Unrecognized input defaults to focused.
func ParseMood(s string) Mood {
	switch Mood(s) {
	case MoodEnergetic, MoodTired, MoodFocused, MoodScattered:
		return Mood(s)
	}
	return MoodFocused
}

type TaskType string

const (
	TypeDeepWork       TaskType = "deep_work"
	TypeCreative       TaskType = "creative"
	TypeAdministrative TaskType = "administrative"
	TypeRoutine        TaskType = "routine"
)

// TaskTypeOrder is the canonical enumeration order, used to break ties
// when archetype keyword counts are equal.
var TaskTypeOrder = []TaskType{TypeDeepWork, TypeCreative, TypeAdministrative, TypeRoutine}

type CompletionStatus string

const (
	StatusComplete     CompletionStatus = "complete"
	StatusPartial      CompletionStatus = "partial"
	StatusScaled       CompletionStatus = "scaled"
	StatusNotScheduled CompletionStatus = "not_scheduled"
)
