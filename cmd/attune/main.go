package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/attuneapp/attune/internal/cli"
	"github.com/attuneapp/attune/internal/db"
	"github.com/attuneapp/attune/internal/intelligence"
	"github.com/attuneapp/attune/internal/llm"
	"github.com/attuneapp/attune/internal/repository"
	"github.com/attuneapp/attune/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.attune/attune.db
	dbPath := os.Getenv("ATTUNE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".attune", "attune.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	observer := service.NewLogUseCaseObserver(os.Stderr)

	app := &cli.App{
		Plan:       service.NewPlanService(service.WithObserver(observer)),
		Stress:     service.NewStressService(),
		History:    repository.NewSQLitePlanHistoryRepo(database),
		StressLogs: repository.NewSQLiteStressLogRepo(database),
		UoW:        db.NewSQLiteUnitOfWork(database),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// LLM-backed services are wired only when enabled; everything still
	// works without them through the deterministic engine and fixed
	// motivational fallbacks.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, llmObserver)

		app.PlanLLM = service.NewPlanService(
			service.WithObserver(observer),
			service.WithGenerativeStrategy(intelligence.NewGenerativeScheduler(client)),
		)
		app.Motivation = intelligence.NewMotivationService(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
