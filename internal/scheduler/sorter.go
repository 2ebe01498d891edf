package scheduler

import (
	"sort"

	"github.com/attuneapp/attune/internal/domain"
)

// SortByComposite orders analyzed tasks by composite priority, highest
// first. The sort is stable: equal-score tasks keep their original input
// order, which downstream splitting relies on for reproducible output.
func SortByComposite(tasks []domain.AnalyzedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CompositePriority > tasks[j].CompositePriority
	})
}
