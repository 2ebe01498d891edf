package scheduler

import (
	"fmt"
	"math"

	"github.com/attuneapp/attune/internal/domain"
)

// Allocate assigns prioritized tasks to time blocks under the planned
// strategy. Every input task produces at least one entry; tasks that get
// no time produce a not_scheduled entry with zero allocation.
func Allocate(tasks []domain.AnalyzedTask, blocks []domain.TimeBlock, stress domain.StressContext, plan CapacityPlan, cfg Config) []domain.ScheduleEntry {
	if plan.Strategy == StrategyAdequateTime {
		return allocateAdequate(tasks, blocks, stress, cfg)
	}
	return allocateDivision(tasks, blocks, stress, plan.ScaleRatio)
}

// blockState tracks per-block consumption during a run.
type blockState struct {
	block        domain.TimeBlock
	remainingMin int
	consumed     bool
}

func newBlockStates(blocks []domain.TimeBlock) []blockState {
	states := make([]blockState, len(blocks))
	for i, b := range blocks {
		states[i] = blockState{block: b, remainingMin: b.CapacityMin()}
	}
	return states
}

// allocateAdequate walks tasks in priority order and places each whole
// task into its best-scoring eligible block. A block is fully consumed by
// its first task regardless of leftover capacity unless leftover reuse is
// enabled in the config.
func allocateAdequate(tasks []domain.AnalyzedTask, blocks []domain.TimeBlock, stress domain.StressContext, cfg Config) []domain.ScheduleEntry {
	states := newBlockStates(blocks)
	entries := make([]domain.ScheduleEntry, 0, len(tasks))

	for _, at := range tasks {
		best := -1
		bestScore := math.Inf(-1)
		for i := range states {
			if !eligible(&states[i], at.Task.DurationMin, cfg) {
				continue
			}
			score := pairingScore(at, states[i].block)
			// Strict comparison: ties go to the earliest block in input order.
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best == -1 {
			entries = append(entries, notScheduledEntry(at, ""))
			continue
		}

		states[best].consumed = true
		states[best].remainingMin -= at.Task.DurationMin
		block := states[best].block
		entries = append(entries, domain.ScheduleEntry{
			Task:            at.Task,
			Block:           &block,
			AllocatedMin:    at.Task.DurationMin,
			Status:          domain.StatusComplete,
			Confidence:      confidence(at, domain.StatusComplete),
			DeadlineUrgency: at.DeadlineUrgency,
			Notes:           taskNotes(at, stress),
		})
	}

	return entries
}

func eligible(s *blockState, durationMin int, cfg Config) bool {
	if cfg.ReuseLeftoverCapacity {
		return s.remainingMin >= durationMin
	}
	return !s.consumed && s.remainingMin >= durationMin
}

// pairingScore is the additive block/task compatibility: a time-of-day
// preference for the task's archetype, a deadline-urgency bonus, and a
// stress-compatibility contribution scaled around its midpoint.
func pairingScore(at domain.AnalyzedTask, block domain.TimeBlock) float64 {
	score := 0.5
	score += timeOfDayBonus(at.Type, block.Start.Hour())
	switch {
	case at.DeadlineUrgency > 0.8:
		score += 0.2
	case at.DeadlineUrgency > 0.6:
		score += 0.1
	}
	score += (at.StressCompatibility - 0.5) * 0.3
	return score
}

// segment is one queued unit of work during time division.
type segment struct {
	at           domain.AnalyzedTask
	remainingMin int
	part         int // 0 until the task is split
	scaled       bool
}

func (s segment) label() string {
	if s.part == 0 {
		return ""
	}
	return fmt.Sprintf("Part %d", s.part)
}

// allocateDivision performs the single left-to-right greedy pass: scale
// durations when demand exceeds supply, then walk the blocks in their
// original order, splitting segments into remaining capacity. No
// backtracking: priority order wins over packing optimality.
func allocateDivision(tasks []domain.AnalyzedTask, blocks []domain.TimeBlock, stress domain.StressContext, ratio float64) []domain.ScheduleEntry {
	queue := make([]segment, 0, len(tasks))
	for _, at := range tasks {
		seg := segment{at: at, remainingMin: at.Task.DurationMin}
		if ratio < 1 {
			scaledMin := int(math.Round(float64(at.Task.DurationMin) * ratio))
			if scaledMin < MinChunkMin {
				scaledMin = MinChunkMin
			}
			if scaledMin < at.Task.DurationMin {
				seg.remainingMin = scaledMin
				seg.scaled = true
			}
		}
		queue = append(queue, seg)
	}

	states := newBlockStates(blocks)
	entries := make([]domain.ScheduleEntry, 0, len(tasks))
	bi := 0

	for len(queue) > 0 {
		seg := queue[0]
		queue = queue[1:]

		placed := false
		for bi < len(states) {
			rem := states[bi].remainingMin

			if seg.remainingMin <= rem {
				states[bi].remainingMin -= seg.remainingMin
				entries = append(entries, placedEntry(seg, &states[bi].block, seg.remainingMin, stress))
				placed = true
				break
			}

			if rem >= MinChunkMin {
				// Split: the chunk takes the block's whole remaining
				// capacity and the remainder re-enqueues at the head so it
				// keeps seeking capacity in subsequent blocks. The remainder
				// may fall below the minimum chunk; it can still land via
				// the fits-entirely path above.
				chunk := seg
				if chunk.part == 0 {
					chunk.part = 1
				}
				states[bi].remainingMin -= rem
				entries = append(entries, partialEntry(chunk, &states[bi].block, rem, stress))

				rest := seg
				rest.remainingMin = seg.remainingMin - rem
				rest.part = chunk.part + 1
				queue = append([]segment{rest}, queue...)
				placed = true
				bi++
				break
			}

			// Too little left to be worth a chunk; move on.
			bi++
		}

		if !placed {
			entries = append(entries, notScheduledEntry(seg.at, seg.label()))
		}
	}

	return entries
}

func placedEntry(seg segment, block *domain.TimeBlock, allocated int, stress domain.StressContext) domain.ScheduleEntry {
	status := domain.StatusComplete
	if seg.scaled {
		status = domain.StatusScaled
	}
	notes := taskNotes(seg.at, stress)
	if seg.scaled {
		notes = append(notes, "Duration reduced to fit available time")
	}
	return domain.ScheduleEntry{
		Task:            seg.at.Task,
		Segment:         seg.label(),
		Block:           block,
		AllocatedMin:    allocated,
		Status:          status,
		Confidence:      confidence(seg.at, status),
		DeadlineUrgency: seg.at.DeadlineUrgency,
		Notes:           notes,
	}
}

func partialEntry(seg segment, block *domain.TimeBlock, allocated int, stress domain.StressContext) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Task:            seg.at.Task,
		Segment:         seg.label(),
		Block:           block,
		AllocatedMin:    allocated,
		Status:          domain.StatusPartial,
		Confidence:      confidence(seg.at, domain.StatusPartial),
		DeadlineUrgency: seg.at.DeadlineUrgency,
		Notes:           append(taskNotes(seg.at, stress), "Continues in a later block"),
	}
}

func notScheduledEntry(at domain.AnalyzedTask, label string) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Task:            at.Task,
		Segment:         label,
		AllocatedMin:    0,
		Status:          domain.StatusNotScheduled,
		Confidence:      0,
		DeadlineUrgency: at.DeadlineUrgency,
		Notes:           []string{"Could not fit into any remaining time block"},
	}
}

// confidence derives scheduling confidence from stress compatibility,
// discounted for reduced placements and for degraded analyses.
func confidence(at domain.AnalyzedTask, status domain.CompletionStatus) float64 {
	c := at.StressCompatibility
	switch status {
	case domain.StatusScaled:
		c *= 0.9
	case domain.StatusPartial:
		c *= 0.8
	case domain.StatusNotScheduled:
		return 0
	}
	if at.Degraded {
		c *= 0.5
	}
	return clamp(c, 0, 1)
}

// taskNotes produces the advisory notes attached to a scheduled entry.
func taskNotes(at domain.AnalyzedTask, stress domain.StressContext) []string {
	var notes []string

	if stress.StressLevel >= 7 {
		if at.Task.DurationMin > 60 {
			notes = append(notes, "Consider breaking this task into smaller chunks due to high stress")
		}
		notes = append(notes, "Take short breaks every 25 minutes to maintain focus")
	}

	switch stress.Mood {
	case domain.MoodTired:
		notes = append(notes, "This might feel challenging given your current energy level")
	case domain.MoodEnergetic:
		notes = append(notes, "Good time to tackle this with your current energy")
	case domain.MoodScattered:
		notes = append(notes, "Try minimizing distractions while working on this task")
	}

	if at.Task.Priority == domain.PriorityHigh {
		notes = append(notes, "High priority task - focus on completion")
	}

	return notes
}
