package scheduler

import "github.com/attuneapp/attune/internal/domain"

// Strategy selects how the allocator assigns tasks to blocks.
type Strategy string

const (
	// StrategyAdequateTime places each whole task into its best-matching
	// block. Used when supply strictly exceeds demand.
	StrategyAdequateTime Strategy = "adequate_time"

	// StrategyTimeDivision splits and, under over-demand, scales tasks
	// across blocks in a single greedy pass.
	StrategyTimeDivision Strategy = "time_division"
)

// CapacityPlan is the capacity planner's verdict for one run.
type CapacityPlan struct {
	Strategy   Strategy
	SupplyMin  int
	DemandMin  int
	ScaleRatio float64 // supply/demand; 1.0 when demand fits
}

// PlanCapacity compares total task demand against total block supply and
// selects the allocation strategy. Tasks whose demand does not strictly
// fit the supply go through time division, where the exact-fit case (ratio
// 1.0) splits without scaling.
func PlanCapacity(tasks []domain.Task, blocks []domain.TimeBlock) CapacityPlan {
	var supply int
	for _, b := range blocks {
		supply += b.CapacityMin()
	}
	var demand int
	for _, t := range tasks {
		demand += t.DurationMin
	}

	plan := CapacityPlan{SupplyMin: supply, DemandMin: demand, ScaleRatio: 1.0}
	if demand < supply || demand == 0 {
		plan.Strategy = StrategyAdequateTime
		return plan
	}

	plan.Strategy = StrategyTimeDivision
	plan.ScaleRatio = float64(supply) / float64(demand)
	return plan
}
