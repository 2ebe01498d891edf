package scheduler

import (
	"fmt"

	"github.com/attuneapp/attune/internal/domain"
)

// urgentThreshold marks a task as urgent for coverage accounting.
const urgentThreshold = 0.8

// Insights summarizes a finished schedule: entry status counts, urgent
// task coverage, and fixed-threshold recommendations.
type Insights struct {
	CompleteCount     int
	PartialCount      int
	ScaledCount       int
	NotScheduledCount int

	TotalAllocatedMin int
	UrgentTotal       int
	UrgentScheduled   int
	UrgentCoverage    float64

	Recommendations []string
}

// Summarize aggregates schedule entries into coverage statistics and
// human-readable recommendations.
func Summarize(entries []domain.ScheduleEntry, stress domain.StressContext) Insights {
	var ins Insights

	// Urgency and scheduling are tracked per task; split tasks contribute
	// several entries but count once.
	urgentSeen := make(map[string]bool)
	urgentPlaced := make(map[string]bool)

	for _, e := range entries {
		switch e.Status {
		case domain.StatusComplete:
			ins.CompleteCount++
		case domain.StatusPartial:
			ins.PartialCount++
		case domain.StatusScaled:
			ins.ScaledCount++
		case domain.StatusNotScheduled:
			ins.NotScheduledCount++
		}
		ins.TotalAllocatedMin += e.AllocatedMin

		if e.DeadlineUrgency > urgentThreshold {
			urgentSeen[e.Task.ID] = true
			if e.Scheduled() {
				urgentPlaced[e.Task.ID] = true
			}
		}
	}

	ins.UrgentTotal = len(urgentSeen)
	ins.UrgentScheduled = len(urgentPlaced)
	if ins.UrgentTotal > 0 {
		ins.UrgentCoverage = float64(ins.UrgentScheduled) / float64(ins.UrgentTotal)
	} else {
		ins.UrgentCoverage = 1.0
	}

	ins.Recommendations = recommendations(ins, stress)
	return ins
}

func recommendations(ins Insights, stress domain.StressContext) []string {
	var recs []string

	if ins.NotScheduledCount > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d tasks could not be scheduled - consider extending your available time", ins.NotScheduledCount))
	}
	if ins.ScaledCount > 0 {
		recs = append(recs, "Some task durations were reduced to fit - revisit estimates or free up more time")
	}
	if ins.UrgentTotal > 0 && ins.UrgentScheduled < ins.UrgentTotal {
		recs = append(recs, "Not all urgent tasks received time - review deadlines before committing to this plan")
	}
	if stress.StressLevel >= 7 {
		recs = append(recs, "High stress detected - schedule regular breaks and consider postponing non-urgent work")
	}
	if ins.TotalAllocatedMin > 480 {
		recs = append(recs, "Schedule exceeds 8 hours of work - consider postponing some tasks")
	}

	return recs
}
