package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/attuneapp/attune/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return planNow }

func sampleRequest() contract.PlanRequest {
	return contract.PlanRequest{
		Tasks: []contract.TaskInput{
			{ID: "report", Title: "Write report", Priority: "high",
				Deadline: "2026-03-03T20:00:00Z", Duration: []byte(`120`)},
			{ID: "email", Title: "Email cleanup", Priority: "medium", Duration: []byte(`60`)},
		},
		TimeBlocks: []contract.TimeBlockInput{
			{Start: "2026-03-02T09:00:00Z", End: "2026-03-02T12:00:00Z"},
			{Start: "2026-03-02T13:00:00Z", End: "2026-03-02T17:00:00Z"},
		},
		StressLevel: 4,
		Mood:        "focused",
	}
}

func TestPlanService_EngineOnly(t *testing.T) {
	svc := NewPlanService(WithClock(fixedClock))

	resp, err := svc.Plan(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Len(t, resp.OptimizedSchedule, 2)
	assert.Equal(t, contract.MethodRuleBased, resp.Metadata.AnalysisMethod)
	assert.Equal(t, planNow, resp.Metadata.GeneratedAt)
	assert.Equal(t, 2, resp.TaskAnalysis.TotalTasks)
	assert.Equal(t, 2, resp.TaskAnalysis.ScheduledTasks)
	assert.Equal(t, map[string]int{"high": 1, "medium": 1}, resp.TaskAnalysis.PriorityDistribution)
	assert.Equal(t, "adequate_time", resp.Insights.Strategy)
	assert.Equal(t, 420, resp.Insights.AvailableMinutes)
	assert.Equal(t, 180, resp.Insights.RequestedMinutes)
	assert.Equal(t, 4, resp.StressAnalysis.Level)
	assert.NotEmpty(t, resp.StressAnalysis.RecommendedActions)

	for _, entry := range resp.OptimizedSchedule {
		assert.NotNil(t, entry.TimeBlock)
		assert.Equal(t, "complete", entry.CompletionStatus)
		assert.NotEmpty(t, entry.Task.TaskType)
	}
}

func TestPlanService_NoTasks(t *testing.T) {
	svc := NewPlanService(WithClock(fixedClock))

	_, err := svc.Plan(context.Background(), contract.PlanRequest{StressLevel: 5})

	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.PlanErrNoTasks, planErr.Code)
}

func TestPlanService_WarningsCarriedIntoResponse(t *testing.T) {
	req := sampleRequest()
	req.Tasks[0].Deadline = "someday"
	req.TimeBlocks = append(req.TimeBlocks, contract.TimeBlockInput{
		Start: "2026-03-02T18:00:00Z", End: "2026-03-02T15:00:00Z",
	})

	svc := NewPlanService(WithClock(fixedClock))
	resp, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Warnings, 2)
}

type stubStrategy struct {
	name string
	resp *contract.PlanResponse
	err  error
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Schedule(context.Context, contract.NormalizedPlan, time.Time) (*contract.PlanResponse, error) {
	return s.resp, s.err
}

func TestPlanService_GenerativeStrategyWins(t *testing.T) {
	generated := &contract.PlanResponse{
		Metadata: contract.Metadata{AnalysisMethod: contract.MethodLLM},
	}
	svc := NewPlanService(
		WithClock(fixedClock),
		WithGenerativeStrategy(&stubStrategy{name: "generative", resp: generated}),
	)

	resp, err := svc.Plan(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, contract.MethodLLM, resp.Metadata.AnalysisMethod)
}

func TestPlanService_FallsBackWhenStrategyFails(t *testing.T) {
	svc := NewPlanService(
		WithClock(fixedClock),
		WithGenerativeStrategy(&stubStrategy{name: "generative", err: errors.New("model unavailable")}),
	)

	resp, err := svc.Plan(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, contract.MethodRuleBased, resp.Metadata.AnalysisMethod)
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[len(resp.Warnings)-1], "using deterministic engine")
}

type panicStrategy struct{}

func (panicStrategy) Name() string { return "panicky" }

func (panicStrategy) Schedule(context.Context, contract.NormalizedPlan, time.Time) (*contract.PlanResponse, error) {
	panic("boom")
}

func TestPlanService_PanicBecomesStructuredError(t *testing.T) {
	svc := NewPlanService(
		WithClock(fixedClock),
		WithGenerativeStrategy(panicStrategy{}),
	)

	resp, err := svc.Plan(context.Background(), sampleRequest())
	assert.Nil(t, resp)

	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.PlanErrInternal, planErr.Code)
	assert.Equal(t, 2, planErr.TaskCount)
	assert.Equal(t, 4, planErr.StressLevel)
	assert.Equal(t, "focused", planErr.Mood)
	assert.Contains(t, planErr.Message, "boom")
}

func TestPlanService_OverDemandEndToEnd(t *testing.T) {
	req := contract.PlanRequest{
		Tasks: []contract.TaskInput{
			{ID: "a", Title: "Task one", Duration: []byte(`60`)},
			{ID: "b", Title: "Task two", Duration: []byte(`60`)},
		},
		TimeBlocks: []contract.TimeBlockInput{
			{Start: "2026-03-02T09:00:00Z", End: "2026-03-02T10:00:00Z"},
		},
		StressLevel: 5,
	}

	svc := NewPlanService(WithClock(fixedClock))
	resp, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "time_division", resp.Insights.Strategy)
	assert.Equal(t, 2, resp.Insights.ScaledCount)
	assert.Equal(t, 60, resp.Insights.TotalAllocatedMin)
	assert.NotEmpty(t, resp.Insights.Recommendations)
}
