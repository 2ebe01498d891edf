package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/attuneapp/attune/internal/contract"
	"github.com/attuneapp/attune/internal/domain"
)

// scheduleSystemPrompt instructs the LLM to place pre-analyzed tasks into
// time blocks. Stress assessment has already happened; the model only
// schedules.
const scheduleSystemPrompt = `You are a task scheduler for a personal wellness planner.
The user's stress has ALREADY been assessed; you only place tasks into time blocks.

You must output ONLY a JSON object with these exact fields:
- schedule: array of placements, each with:
    task_id: string (must match an input task id exactly)
    block: number (zero-based index into the input time blocks)
    allocated_minutes: number (>0, at least 15)
    confidence: number 0 to 1
    notes: array of strings (may be empty)
- warnings: array of strings
- suggestions: array of strings

RULES:
1. Meet deadlines first: tasks with closer deadlines go into earlier blocks.
2. Respect block capacity: total allocated minutes per block must not exceed its length.
3. A task may be split across blocks; never allocate more than its estimated duration in total.
4. Match task archetypes to time of day: deep work in the morning, routine work in the evening.
5. Follow the stress rules given in the request.
6. Never invent task ids or block indexes.`

// buildSchedulePrompt renders the normalized request, the engine's analysis
// scores, and the stress-mode rules into the user prompt.
func buildSchedulePrompt(plan contract.NormalizedPlan, analyzed []domain.AnalyzedTask, now time.Time) string {
	type taskView struct {
		ID                string  `json:"id"`
		Title             string  `json:"title"`
		Priority          string  `json:"priority"`
		EstimatedDuration int     `json:"estimated_duration"`
		Deadline          string  `json:"deadline,omitempty"`
		TaskType          string  `json:"task_type"`
		DeadlineUrgency   float64 `json:"deadline_urgency"`
		CompositePriority float64 `json:"composite_priority"`
	}
	type blockView struct {
		Index   int    `json:"index"`
		Start   string `json:"start_time"`
		End     string `json:"end_time"`
		Minutes int    `json:"minutes"`
	}

	tasks := make([]taskView, 0, len(analyzed))
	for _, at := range analyzed {
		tv := taskView{
			ID:                at.Task.ID,
			Title:             at.Task.Title,
			Priority:          string(at.Task.Priority),
			EstimatedDuration: at.Task.DurationMin,
			TaskType:          string(at.Type),
			DeadlineUrgency:   at.DeadlineUrgency,
			CompositePriority: at.CompositePriority,
		}
		if at.Task.Deadline != nil {
			tv.Deadline = at.Task.Deadline.Format(time.RFC3339)
		}
		tasks = append(tasks, tv)
	}

	blocks := make([]blockView, 0, len(plan.Blocks))
	for i, b := range plan.Blocks {
		blocks = append(blocks, blockView{
			Index:   i,
			Start:   b.Start.Format(time.RFC3339),
			End:     b.End.Format(time.RFC3339),
			Minutes: b.CapacityMin(),
		})
	}

	tasksJSON, _ := json.MarshalIndent(tasks, "", "  ")
	blocksJSON, _ := json.MarshalIndent(blocks, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Current time: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "Stress level: %d/10, mood: %s\n\n", plan.Stress.StressLevel, plan.Stress.Mood)
	fmt.Fprintf(&b, "Stress rules:\n%s\n\n", stressRules(plan.Stress.StressLevel))
	fmt.Fprintf(&b, "Tasks to schedule (sorted by priority):\n%s\n\n", tasksJSON)
	fmt.Fprintf(&b, "Available time blocks:\n%s\n", blocksJSON)
	return b.String()
}

// stressRules returns the scheduling constraints for the current stress band.
func stressRules(level int) string {
	switch {
	case level >= 7:
		return `HIGH STRESS MODE:
- no back-to-back difficult tasks
- prefer short allocations with slack between them
- prioritize easy tasks over complex ones
- leave capacity unused rather than overfilling blocks`
	case level >= 4:
		return `MEDIUM STRESS MODE:
- balance difficult and easy tasks
- keep some slack between longer allocations
- reserve morning blocks for complex work`
	default:
		return `LOW STRESS MODE:
- full blocks may be used
- challenging tasks are fine, including back-to-back`
	}
}

// motivationSystemPrompt frames the model as a stress-management coach.
const motivationSystemPrompt = `You are a compassionate stress management coach.
Reply with a short message of 2-3 sentences, plain text only, no lists and no JSON.
Never be dismissive of the user's stress and never overpromise.`

// buildMotivationPrompt picks the tone for the stress band, mirroring the
// tiers of the coaching prompts.
func buildMotivationPrompt(stressLevel int, activity, userMessage string) string {
	var tone string
	switch {
	case stressLevel >= 7:
		tone = "The user is under high stress. Be gentle and empathetic, acknowledge the difficulty, offer hope, and softly encourage the suggested activity."
	case stressLevel >= 4:
		tone = "The user is under moderate stress. Be balanced and motivating, acknowledge their state, and highlight the benefits of the suggested activity."
	default:
		tone = "The user is managing well. Be brief and uplifting, celebrate their good stress management, and encourage keeping the habit."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nStress level: %d/10\n", tone, stressLevel)
	if activity != "" {
		fmt.Fprintf(&b, "Suggested activity: %s\n", activity)
	}
	if userMessage != "" {
		fmt.Fprintf(&b, "The user said: %q\n", userMessage)
	}
	return b.String()
}
