package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/attuneapp/attune/internal/cli/formatter"
	"github.com/attuneapp/attune/internal/contract"
	"github.com/attuneapp/attune/internal/db"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/attuneapp/attune/internal/repository"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var file string
	var asJSON, useLLM, interactive, noSave bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a stress-aware schedule from tasks and time blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req, err := readPlanRequest(cmd, app, file, interactive)
			if err != nil {
				return err
			}

			planner := app.Plan
			if useLLM {
				if app.PlanLLM == nil {
					return fmt.Errorf("--llm requires ATTUNE_LLM_ENABLED=true")
				}
				planner = app.PlanLLM
			}

			resp, err := planner.Plan(ctx, req)
			if err != nil {
				return err
			}

			if !noSave && app.History != nil {
				if err := savePlanRun(ctx, app, resp); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save plan history: %v\n", err)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Request JSON file, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response JSON")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "Try the generative scheduler first")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect the request with an interactive form")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in history")

	return cmd
}

func readPlanRequest(cmd *cobra.Command, app *App, file string, interactive bool) (contract.PlanRequest, error) {
	if interactive {
		if app.IsInteractive != nil && !app.IsInteractive() {
			return contract.PlanRequest{}, fmt.Errorf("--interactive requires a terminal")
		}
		return runPlanWizard()
	}

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return contract.PlanRequest{}, fmt.Errorf("reading request: %w", err)
	}
	return contract.DecodePlanRequest(data)
}

// savePlanRun records the response in history: the run row and its schedule
// lines commit together or not at all.
func savePlanRun(ctx context.Context, app *App, resp *contract.PlanResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}

	run := &domain.PlanRun{
		CreatedAt:      resp.Metadata.GeneratedAt,
		StressLevel:    resp.StressAnalysis.Level,
		Mood:           resp.StressAnalysis.Mood,
		AnalysisMethod: resp.Metadata.AnalysisMethod,
		Strategy:       resp.Insights.Strategy,
		TotalTasks:     resp.TaskAnalysis.TotalTasks,
		ScheduledTasks: resp.TaskAnalysis.ScheduledTasks,
		AllocatedMin:   resp.Insights.TotalAllocatedMin,
		ResponseJSON:   string(raw),
	}

	entries := make([]domain.PlanRunEntry, 0, len(resp.OptimizedSchedule))
	for _, e := range resp.OptimizedSchedule {
		entry := domain.PlanRunEntry{
			TaskTitle:    e.Task.Title,
			Segment:      e.Segment,
			Status:       e.CompletionStatus,
			AllocatedMin: e.AllocatedDuration,
			Confidence:   e.SchedulingConfidence,
		}
		if e.TimeBlock != nil {
			start, end := e.TimeBlock.Start, e.TimeBlock.End
			entry.BlockStart = &start
			entry.BlockEnd = &end
		}
		entries = append(entries, entry)
	}

	if app.UoW != nil {
		return app.UoW.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLitePlanHistoryRepo(tx).SaveRun(ctx, run, entries)
		})
	}
	return app.History.SaveRun(ctx, run, entries)
}
