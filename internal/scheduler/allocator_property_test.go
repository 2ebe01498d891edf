package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/attuneapp/attune/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAllocate_Invariants property-tests the pipeline over random task and
// block mixes: every task appears in the output, per-task allocation never
// exceeds the requested duration, total allocation never exceeds supply,
// and partial chunks respect the minimum chunk size.
func TestAllocate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	titles := []string{
		"Write quarterly report", "Email inbox cleanup", "Grocery shopping",
		"Design review", "Debug the deploy script", "Plan the offsite",
		"Laundry and chores", "Call the bank",
	}
	priorities := []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}
	moods := []domain.Mood{domain.MoodFocused, domain.MoodTired, domain.MoodEnergetic, domain.MoodScattered}

	for trial := 0; trial < 200; trial++ {
		numTasks := rng.Intn(6) + 1
		tasks := make([]domain.Task, numTasks)
		for i := range tasks {
			tasks[i] = domain.Task{
				ID:          fmt.Sprintf("t-%d", i),
				Title:       titles[rng.Intn(len(titles))],
				Priority:    priorities[rng.Intn(len(priorities))],
				DurationMin: rng.Intn(166) + 15, // 15–180
			}
			if rng.Intn(2) == 1 {
				d := now.Add(time.Duration(rng.Intn(200)+1) * time.Hour)
				tasks[i].Deadline = &d
			}
		}

		numBlocks := rng.Intn(5) // 0–4, zero blocks included on purpose
		blocks := make([]domain.TimeBlock, numBlocks)
		hour := 6 + rng.Intn(3)
		for i := range blocks {
			lengthMin := rng.Intn(211) + 30 // 30–240
			start := time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC)
			blocks[i] = domain.TimeBlock{Start: start, End: start.Add(time.Duration(lengthMin) * time.Minute)}
			hour += lengthMin/60 + 1
		}

		stress := domain.NewStressContext(rng.Intn(11), string(moods[rng.Intn(len(moods))]))
		cfg := Config{ReuseLeftoverCapacity: rng.Intn(2) == 1}

		plan := PlanCapacity(tasks, blocks)
		entries := runPlan(tasks, blocks, stress, cfg, now)

		// Invariant 1: every task appears in at least one entry.
		seen := make(map[string]bool)
		perTask := make(map[string]int)
		total := 0
		for _, e := range entries {
			seen[e.Task.ID] = true
			perTask[e.Task.ID] += e.AllocatedMin
			total += e.AllocatedMin
		}
		for _, task := range tasks {
			assert.True(t, seen[task.ID], "trial %d: task %s missing from output", trial, task.ID)
		}

		// Invariant 2: per-task allocation never exceeds its requested duration.
		for _, task := range tasks {
			assert.LessOrEqual(t, perTask[task.ID], task.DurationMin,
				"trial %d: task %s allocated %d of %d requested", trial, task.ID, perTask[task.ID], task.DurationMin)
		}

		// Invariant 3: total allocation never exceeds block supply.
		assert.LessOrEqual(t, total, plan.SupplyMin,
			"trial %d: allocated %d exceeds supply %d", trial, total, plan.SupplyMin)

		// Invariant 4: partial chunks respect the minimum chunk size; the
		// tail of a split may be smaller when it fits a block entirely.
		// Unscheduled entries carry zero time and zero confidence.
		for j, e := range entries {
			if e.Scheduled() {
				assert.Positive(t, e.AllocatedMin, "trial %d entry %d", trial, j)
				if e.Status == domain.StatusPartial {
					assert.GreaterOrEqual(t, e.AllocatedMin, MinChunkMin,
						"trial %d entry %d: partial chunk below minimum", trial, j)
				}
				assert.NotNil(t, e.Block, "trial %d entry %d: scheduled entry without a block", trial, j)
			} else {
				assert.Zero(t, e.AllocatedMin, "trial %d entry %d", trial, j)
				assert.Zero(t, e.Confidence, "trial %d entry %d", trial, j)
			}
			assert.GreaterOrEqual(t, e.Confidence, 0.0, "trial %d entry %d", trial, j)
			assert.LessOrEqual(t, e.Confidence, 1.0, "trial %d entry %d", trial, j)
		}
	}
}

// TestAllocate_Deterministic verifies the pipeline is a pure function of its
// inputs: identical runs produce identical schedules.
func TestAllocate_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	for trial := 0; trial < 50; trial++ {
		numTasks := rng.Intn(5) + 1
		tasks := make([]domain.Task, numTasks)
		for i := range tasks {
			tasks[i] = domain.Task{
				ID:          fmt.Sprintf("t-%d", i),
				Title:       "Review notes",
				Priority:    domain.PriorityMedium,
				DurationMin: rng.Intn(120) + 15,
			}
		}
		blocks := []domain.TimeBlock{
			block(testDay, 9, 0, 9+rng.Intn(3)+1, 0),
			block(testDay, 14, 0, 14+rng.Intn(3)+1, 0),
		}
		stress := domain.NewStressContext(rng.Intn(11), string(domain.MoodFocused))

		first := runPlan(tasks, blocks, stress, Config{}, now)
		second := runPlan(tasks, blocks, stress, Config{}, now)
		assert.Equal(t, first, second, "trial %d", trial)
	}
}
