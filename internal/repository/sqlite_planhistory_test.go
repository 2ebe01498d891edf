package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attuneapp/attune/internal/db"
	"github.com/attuneapp/attune/internal/domain"
	"github.com/attuneapp/attune/internal/repository"
	"github.com/attuneapp/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanHistory_SaveAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanHistoryRepo(database)
	ctx := context.Background()

	run := testutil.NewTestPlanRun()
	entries := []domain.PlanRunEntry{
		testutil.NewTestRunEntry(run.ID, "Write report", "complete", 120),
		testutil.NewTestRunEntry(run.ID, "Email cleanup", "complete", 60),
	}
	require.NoError(t, repo.SaveRun(ctx, run, entries))

	got, err := repo.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, 4, got.StressLevel)
	assert.Equal(t, "focused", got.Mood)
	assert.Equal(t, "rule_based", got.AnalysisMethod)
	assert.Equal(t, run.ResponseJSON, got.ResponseJSON)
	assert.True(t, got.CreatedAt.Equal(testutil.FixtureTime))

	saved, err := repo.ListEntries(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, e := range saved {
		assert.Equal(t, run.ID, e.RunID)
		assert.NotNil(t, e.BlockStart)
		assert.NotNil(t, e.BlockEnd)
	}
}

func TestPlanHistory_GetMissingRun(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanHistoryRepo(database)

	got, err := repo.GetRun(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlanHistory_SaveGeneratesIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanHistoryRepo(database)

	run := testutil.NewTestPlanRun()
	run.ID = ""
	run.CreatedAt = time.Time{}
	entry := testutil.NewTestRunEntry("", "Water plants", "complete", 15)
	entry.ID = ""

	require.NoError(t, repo.SaveRun(context.Background(), run, []domain.PlanRunEntry{entry}))
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	saved, err := repo.ListEntries(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotEmpty(t, saved[0].ID)
}

func TestPlanHistory_ListRecentOrderAndLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanHistoryRepo(database)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		run := testutil.NewTestPlanRun(
			testutil.WithRunCreatedAt(testutil.FixtureTime.Add(time.Duration(i) * time.Hour)),
		)
		require.NoError(t, repo.SaveRun(ctx, run, nil))
	}

	runs, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	// Newest first.
	assert.True(t, runs[0].CreatedAt.After(runs[1].CreatedAt))
	assert.True(t, runs[1].CreatedAt.After(runs[2].CreatedAt))
}

func TestPlanHistory_DeleteRun(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanHistoryRepo(database)
	ctx := context.Background()

	run := testutil.NewTestPlanRun()
	entry := testutil.NewTestRunEntry(run.ID, "Write report", "complete", 120)
	require.NoError(t, repo.SaveRun(ctx, run, []domain.PlanRunEntry{entry}))

	require.NoError(t, repo.DeleteRun(ctx, run.ID))

	got, err := repo.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Entries cascade with the run.
	saved, err := repo.ListEntries(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.Error(t, repo.DeleteRun(ctx, run.ID))
}

func TestPlanHistory_SaveRunRollsBackInUoW(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// Fail on the second insert: the run row must not survive.
	uow := &testutil.FaultyUoW{DB: database, FailOn: 2, Err: fmt.Errorf("disk full")}
	run := testutil.NewTestPlanRun()
	entry := testutil.NewTestRunEntry(run.ID, "Write report", "complete", 120)

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanHistoryRepo(tx).SaveRun(ctx, run, []domain.PlanRunEntry{entry})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	got, err := repository.NewSQLitePlanHistoryRepo(database).GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "run should roll back with its entries")
}
