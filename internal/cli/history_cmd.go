package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/attuneapp/attune/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var asJSON bool
	var show string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent plan runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if show != "" {
				return showRun(ctx, cmd, app, show)
			}

			runs, err := app.History.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanRuns(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw run list JSON")
	cmd.Flags().StringVar(&show, "show", "", "Print the stored response JSON for one run id")

	return cmd
}

func showRun(ctx context.Context, cmd *cobra.Command, app *App, id string) error {
	run, err := app.History.GetRun(ctx, id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("plan run %s not found", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), run.ResponseJSON)
	return nil
}
