package formatter

import (
	"fmt"
	"strings"

	"github.com/attuneapp/attune/internal/repository"
	"github.com/attuneapp/attune/internal/service"
)

// FormatStressEstimate renders a stress estimate with its explanation.
func FormatStressEstimate(est *service.StressEstimate) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n",
		StressPill(est.Level),
		Bold(fmt.Sprintf("%.1f/10", est.Score))))
	if len(est.Keywords) > 0 {
		b.WriteString(Dim(fmt.Sprintf("Keywords: %s", strings.Join(est.Keywords, ", "))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(est.Explanation))
	b.WriteString("\n")
	return b.String()
}

// FormatStressTrend renders the aggregate of recent estimates.
func FormatStressTrend(trend *repository.StressTrend, days int) string {
	if trend == nil || trend.Count == 0 {
		return Dim(fmt.Sprintf("No stress estimates in the last %d days.", days)) + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Last %d days", days)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleFg.Render(fmt.Sprintf("%d estimates, average %.1f/10", trend.Count, trend.AverageScore)),
		highCountLabel(trend.HighCount)))
	return b.String()
}

func highCountLabel(n int) string {
	if n == 0 {
		return StyleGreen.Render("no high-stress readings")
	}
	return StyleRed.Render(fmt.Sprintf("%d high-stress readings", n))
}
