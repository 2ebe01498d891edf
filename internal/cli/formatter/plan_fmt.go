package formatter

import (
	"fmt"
	"strings"

	"github.com/attuneapp/attune/internal/contract"
)

// FormatPlanResponse renders a full scheduling response as a styled CLI view.
func FormatPlanResponse(resp *contract.PlanResponse) string {
	var b strings.Builder

	// Stress summary line.
	b.WriteString(StylePurple.Render(fmt.Sprintf("STRESS %d/10", resp.StressAnalysis.Level)))
	b.WriteString(Dim(fmt.Sprintf("  mood: %s", resp.StressAnalysis.Mood)))
	b.WriteString("\n")
	b.WriteString(Dim(resp.StressAnalysis.Impact))
	b.WriteString("\n\n")

	b.WriteString(Header(fmt.Sprintf("Schedule (%s strategy)", strategyLabel(resp.Insights.Strategy))))
	b.WriteString("\n\n")

	if len(resp.OptimizedSchedule) == 0 {
		b.WriteString(Dim("Nothing to schedule."))
		b.WriteString("\n")
	}
	for i, entry := range resp.OptimizedSchedule {
		b.WriteString(formatEntry(entry))
		if i < len(resp.OptimizedSchedule)-1 {
			b.WriteString("\n")
		}
	}

	// Insights summary.
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"%s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Allocated: %s", FormatMinutes(resp.Insights.TotalAllocatedMin))),
		StyleDim.Render("|"),
		StyleFg.Render(fmt.Sprintf("Available: %s  Requested: %s",
			FormatMinutes(resp.Insights.AvailableMinutes),
			FormatMinutes(resp.Insights.RequestedMinutes))),
	))
	b.WriteString(Dim(fmt.Sprintf("Scheduled %d of %d tasks, urgent coverage %s",
		resp.TaskAnalysis.ScheduledTasks,
		resp.TaskAnalysis.TotalTasks,
		Percent(resp.Insights.UrgentTaskCoverage))))
	b.WriteString("\n")

	if len(resp.Insights.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		for _, rec := range resp.Insights.Recommendations {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("→"), StyleFg.Render(rec)))
		}
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("WARNING:"), Dim(w)))
		}
	}

	return b.String()
}

func formatEntry(entry contract.ScheduleEntryOut) string {
	var b strings.Builder

	title := entry.Task.Title
	if entry.Segment != "" {
		title = fmt.Sprintf("%s (%s)", title, entry.Segment)
	}

	when := Dim("unscheduled")
	if entry.TimeBlock != nil {
		when = StyleBlue.Render(ClockRange(entry.TimeBlock.Start, entry.TimeBlock.End))
	}

	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		when,
		Bold(title),
		StyleFg.Render(FormatMinutes(entry.AllocatedDuration)),
		StatusPill(entry.CompletionStatus),
	))
	b.WriteString(fmt.Sprintf("   %s\n",
		Dim(fmt.Sprintf("%s priority, confidence %.2f", entry.Task.Priority, entry.SchedulingConfidence))))
	for _, note := range entry.Notes {
		b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("NOTE:"), Dim(note)))
	}
	return b.String()
}

func strategyLabel(strategy string) string {
	switch strategy {
	case "adequate_time":
		return "adequate time"
	case "time_division":
		return "time division"
	default:
		return strategy
	}
}
