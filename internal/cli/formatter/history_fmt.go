package formatter

import (
	"fmt"
	"strings"

	"github.com/attuneapp/attune/internal/domain"
)

// FormatPlanRuns renders recent plan runs, newest first.
func FormatPlanRuns(runs []*domain.PlanRun) string {
	if len(runs) == 0 {
		return Dim("No plan runs recorded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Recent plans (%d)", len(runs))))
	b.WriteString("\n\n")

	for i, run := range runs {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			TruncID(run.ID),
			StyleFg.Render(HumanTimestamp(run.CreatedAt))))
		b.WriteString(fmt.Sprintf("   %s\n",
			Dim(fmt.Sprintf("%d/%d tasks scheduled, %s allocated, stress %d/10 (%s)",
				run.ScheduledTasks,
				run.TotalTasks,
				FormatMinutes(run.AllocatedMin),
				run.StressLevel,
				run.Mood))))
		b.WriteString(fmt.Sprintf("   %s %s\n",
			Dim("method:"), methodBadge(run.AnalysisMethod)))
		if i < len(runs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func methodBadge(method string) string {
	switch method {
	case "llm_assisted":
		return StylePurple.Render("llm assisted")
	case "rule_based":
		return StyleBlue.Render("rule based")
	default:
		return StyleDim.Render(method)
	}
}
