// Package cli wires the planning, stress and history commands onto cobra.
package cli

import (
	"github.com/attuneapp/attune/internal/db"
	"github.com/attuneapp/attune/internal/repository"
	"github.com/attuneapp/attune/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan       service.PlanService
	PlanLLM    service.PlanService // nil unless the LLM is enabled
	Stress     service.StressService
	Motivation service.MotivationService

	History    repository.PlanHistoryRepo
	StressLogs repository.StressLogRepo
	UoW        db.UnitOfWork

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "attune" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "attune",
		Short: "Stress-aware task scheduler",
	}

	root.AddCommand(
		newPlanCmd(app),
		newStressCmd(app),
		newHistoryCmd(app),
	)

	return root
}
