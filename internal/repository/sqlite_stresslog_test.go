package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/attuneapp/attune/internal/repository"
	"github.com/attuneapp/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStressLog_CreateAndListRecent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStressLogRepo(database)
	ctx := context.Background()

	for i, score := range []float64{2.0, 5.5, 8.0} {
		log := testutil.NewTestStressLog(score, levelFor(score))
		log.CreatedAt = testutil.FixtureTime.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, log))
	}

	logs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 8.0, logs[0].Score, "newest first")
	assert.Equal(t, 5.5, logs[1].Score)
	assert.Equal(t, []string{"deadline"}, logs[0].Keywords)
	assert.Equal(t, "focused", logs[0].Mood)
}

func TestStressLog_CreateGeneratesID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStressLogRepo(database)

	log := testutil.NewTestStressLog(3.0, "Low")
	log.ID = ""
	require.NoError(t, repo.Create(context.Background(), log))
	assert.NotEmpty(t, log.ID)
}

func TestStressLog_TrendSince(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStressLogRepo(database)
	ctx := context.Background()

	old := testutil.NewTestStressLog(9.0, "High")
	old.CreatedAt = testutil.FixtureTime.AddDate(0, 0, -30)
	require.NoError(t, repo.Create(ctx, old))

	for _, score := range []float64{2.0, 4.0, 9.0} {
		log := testutil.NewTestStressLog(score, levelFor(score))
		require.NoError(t, repo.Create(ctx, log))
	}

	trend, err := repo.TrendSince(ctx, testutil.FixtureTime.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 3, trend.Count, "old entry excluded")
	assert.InDelta(t, 5.0, trend.AverageScore, 1e-9)
	assert.Equal(t, 1, trend.HighCount)
}

func TestStressLog_TrendEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStressLogRepo(database)

	trend, err := repo.TrendSince(context.Background(), testutil.FixtureTime)
	require.NoError(t, err)
	assert.Zero(t, trend.Count)
	assert.Zero(t, trend.AverageScore)
	assert.Zero(t, trend.HighCount)
}

func levelFor(score float64) string {
	switch {
	case score <= 3.0:
		return "Low"
	case score <= 6.0:
		return "Medium"
	default:
		return "High"
	}
}
