package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/attuneapp/attune/internal/cli/formatter"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/attuneapp/attune/internal/service"
	"github.com/spf13/cobra"
)

func newStressCmd(app *App) *cobra.Command {
	var asJSON, noSave bool
	var mood string
	var trendDays int

	cmd := &cobra.Command{
		Use:   "stress [text...]",
		Short: "Estimate stress from free text and track it over time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			text := strings.Join(args, " ")

			est, err := app.Stress.Estimate(ctx, text)
			if err != nil {
				return err
			}

			if !noSave && app.StressLogs != nil {
				log := &domain.StressLog{
					Score:       est.Score,
					Level:       est.Level,
					Mood:        mood,
					Keywords:    est.Keywords,
					Explanation: est.Explanation,
				}
				if err := app.StressLogs.Create(ctx, log); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save stress log: %v\n", err)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(est)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStressEstimate(est))

			if msg := motivateFor(ctx, app, est); msg != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", formatter.StylePurple.Render(msg))
			}

			if trendDays > 0 && app.StressLogs != nil {
				since := time.Now().AddDate(0, 0, -trendDays)
				trend, err := app.StressLogs.TrendSince(ctx, since)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s", formatter.FormatStressTrend(trend, trendDays))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw estimate JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record this estimate")
	cmd.Flags().StringVar(&mood, "mood", "", "Current mood to record alongside the estimate")
	cmd.Flags().IntVar(&trendDays, "trend", 0, "Also show the trend over the last N days")

	return cmd
}

// motivateFor fetches an encouraging message for medium and high stress.
// Failures are swallowed; the estimate output stands on its own.
func motivateFor(ctx context.Context, app *App, est *service.StressEstimate) string {
	if app.Motivation == nil || est.Level == "Low" {
		return ""
	}
	resp, err := app.Motivation.Motivate(ctx, service.MotivationRequest{
		StressLevel:         int(est.Score),
		RecommendedActivity: activityFor(est.Level),
	})
	if err != nil {
		return ""
	}
	return resp.Message
}

func activityFor(level string) string {
	if level == "High" {
		return "a short breathing exercise"
	}
	return "a short walk"
}
