package scheduler

import (
	"strings"
	"time"

	"github.com/attuneapp/attune/internal/domain"
	"github.com/attuneapp/attune/internal/textscore"
)

// Composite priority weights: deadline urgency dominates, then importance,
// then inverted complexity.
const (
	weightUrgency    = 0.5
	weightImportance = 0.3
	weightSimplicity = 0.2
)

// noDeadlineUrgency is the urgency assigned to tasks without a deadline.
const noDeadlineUrgency = 0.2

// AnalyzeTasks scores every task on the four analysis axes and computes
// composite priorities. A failure analyzing one task is isolated to that
// task: it receives the documented default analysis record instead of
// aborting the batch.
func AnalyzeTasks(tasks []domain.Task, stress domain.StressContext, now time.Time) []domain.AnalyzedTask {
	analyzed := make([]domain.AnalyzedTask, len(tasks))
	for i, t := range tasks {
		analyzed[i] = analyzeOne(t, stress, now)
	}
	return analyzed
}

func analyzeOne(t domain.Task, stress domain.StressContext, now time.Time) (result domain.AnalyzedTask) {
	defer func() {
		if r := recover(); r != nil {
			result = defaultAnalysis(t, stress)
		}
	}()

	text := t.Title + " " + t.Description
	urgency := DeadlineUrgency(t.Deadline, now)
	importance := ImportanceScore(t.Priority)
	complexity := ComplexityScore(text)

	return domain.AnalyzedTask{
		Task:                t,
		DeadlineUrgency:     urgency,
		Importance:          importance,
		Complexity:          complexity,
		StressCompatibility: StressCompatibility(complexity, stress.StressLevel),
		Type:                ClassifyTaskType(text),
		CompositePriority:   CompositePriority(urgency, importance, complexity),
	}
}

// defaultAnalysis is the fallback record substituted when analysis fails:
// neutral complexity, administrative type, and a lowered-confidence flag.
func defaultAnalysis(t domain.Task, stress domain.StressContext) domain.AnalyzedTask {
	const complexity = 0.5
	urgency := noDeadlineUrgency
	importance := ImportanceScore(domain.PriorityMedium)
	return domain.AnalyzedTask{
		Task:                t,
		DeadlineUrgency:     urgency,
		Importance:          importance,
		Complexity:          complexity,
		StressCompatibility: StressCompatibility(complexity, stress.StressLevel),
		Type:                domain.TypeAdministrative,
		CompositePriority:   CompositePriority(urgency, importance, complexity),
		Degraded:            true,
	}
}

// DeadlineUrgency maps hours-until-deadline onto a non-increasing step
// function. No deadline scores 0.2.
func DeadlineUrgency(deadline *time.Time, now time.Time) float64 {
	if deadline == nil {
		return noDeadlineUrgency
	}
	hours := deadline.Sub(now).Hours()
	switch {
	case hours <= 6:
		return 1.0
	case hours <= 24:
		return 0.95
	case hours <= 48:
		return 0.8
	case hours <= 96:
		return 0.6
	case hours <= 168:
		return 0.4
	default:
		return noDeadlineUrgency
	}
}

// ImportanceScore maps the priority enum to an importance score.
// The Parse* defaulting means unrecognized input already reads as medium.
func ImportanceScore(p domain.Priority) float64 {
	switch p {
	case domain.PriorityHigh:
		return 1.0
	case domain.PriorityLow:
		return 0.3
	default:
		return 0.6
	}
}

// ComplexityScore estimates task complexity from its title and description
// without any NLP model: a sentiment bonus, a word-count adjustment, and a
// one-time keyword adjustment, clamped to [0.1, 1.0].
func ComplexityScore(text string) float64 {
	score := 0.5

	if textscore.Analyze(text).Compound < -0.3 {
		score += 0.2
	}

	words := len(strings.Fields(text))
	if words > 15 {
		score += 0.1
	} else if words < 5 {
		score -= 0.1
	}

	score += keywordAdjustment(strings.ToLower(text))

	return clamp(score, 0.1, 1.0)
}

// keywordAdjustment returns ±0.15 for the first matching keyword,
// complexity keywords checked first.
func keywordAdjustment(lower string) float64 {
	for _, kw := range complexityKeywords {
		if strings.Contains(lower, kw) {
			return 0.15
		}
	}
	for _, kw := range simplicityKeywords {
		if strings.Contains(lower, kw) {
			return -0.15
		}
	}
	return 0
}

// ClassifyTaskType picks the archetype bucket with the most keyword hits.
// Ties break in canonical enumeration order; zero hits everywhere defaults
// to administrative.
func ClassifyTaskType(text string) domain.TaskType {
	lower := strings.ToLower(text)

	best := domain.TypeAdministrative
	bestHits := 0
	for _, tt := range domain.TaskTypeOrder {
		hits := 0
		for _, kw := range archetypeKeywords[tt] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = tt
			bestHits = hits
		}
	}
	return best
}

// StressCompatibility measures how well a task's complexity suits the
// current stress level: higher complexity under higher stress lowers it.
// Result is clamped to [0.1, 1.0].
func StressCompatibility(complexity float64, stressLevel int) float64 {
	return clamp(1-complexity*(float64(stressLevel)/10)*0.7, 0.1, 1.0)
}

// CompositePriority combines the analysis axes into the ordering score.
func CompositePriority(urgency, importance, complexity float64) float64 {
	return weightUrgency*urgency + weightImportance*importance + weightSimplicity*(1-complexity)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
