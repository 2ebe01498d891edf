// Package scheduler implements the adaptive scheduling engine: task
// analysis, prioritization, capacity planning, allocation, and insights.
// The engine is a pure computation over immutable inputs; it performs no
// I/O and never blocks.
package scheduler

import "github.com/attuneapp/attune/internal/domain"

// MinChunkMin is the minimum schedulable chunk. Segments and scaled
// durations never go below it.
const MinChunkMin = 15

// Config carries the engine's behavior switches.
type Config struct {
	// ReuseLeftoverCapacity lets the adequate-time strategy place further
	// tasks into a block's remaining minutes. The default (false) matches
	// the legacy behavior where a block is fully consumed by its first
	// task regardless of leftover capacity.
	ReuseLeftoverCapacity bool
}

// archetypeKeywords maps each task archetype to its fixed keyword list.
// Buckets are scored by hit count; ties break in TaskTypeOrder.
var archetypeKeywords = map[domain.TaskType][]string{
	domain.TypeDeepWork: {
		"analyze", "analysis", "research", "develop", "code", "program",
		"debug", "write", "study", "report", "technical", "review",
	},
	domain.TypeCreative: {
		"create", "design", "brainstorm", "draft", "compose", "sketch",
		"plan", "planning", "idea", "prototype",
	},
	domain.TypeAdministrative: {
		"email", "meeting", "call", "schedule", "organize", "invoice",
		"form", "paperwork", "submit", "sync", "admin",
	},
	domain.TypeRoutine: {
		"clean", "grocery", "groceries", "shopping", "laundry", "errand",
		"chores", "maintenance", "exercise", "walk", "daily",
	},
}

// Keyword lists for the complexity heuristic. Complexity keywords are
// checked before simplicity keywords; only the first match adjusts.
var (
	complexityKeywords = []string{
		"complex", "difficult", "challenging", "detailed", "comprehensive",
		"advanced", "intricate", "thorough",
	}
	simplicityKeywords = []string{
		"simple", "quick", "easy", "brief", "short", "basic",
		"routine", "straightforward",
	}
)

// hourWindow is a half-open [From,To) hour-of-day range with a score bonus.
type hourWindow struct {
	From  int
	To    int
	Bonus float64
}

// timePreferences maps each archetype to its preferred time-of-day windows.
// Loaded once, shared-read for the process lifetime.
var timePreferences = map[domain.TaskType][]hourWindow{
	domain.TypeDeepWork:       {{From: 6, To: 12, Bonus: 0.3}},
	domain.TypeCreative:       {{From: 6, To: 12, Bonus: 0.2}, {From: 17, To: 22, Bonus: 0.1}},
	domain.TypeAdministrative: {{From: 12, To: 17, Bonus: 0.3}},
	domain.TypeRoutine:        {{From: 17, To: 22, Bonus: 0.3}},
}

// nightPenalty applies to blocks starting between 22:00 and 06:00,
// regardless of archetype.
const nightPenalty = -0.4

// timeOfDayBonus returns the preference adjustment for placing a task of
// the given archetype into a block starting at the given hour.
func timeOfDayBonus(taskType domain.TaskType, hour int) float64 {
	if hour >= 22 || hour < 6 {
		return nightPenalty
	}
	for _, w := range timePreferences[taskType] {
		if hour >= w.From && hour < w.To {
			return w.Bonus
		}
	}
	return 0
}
