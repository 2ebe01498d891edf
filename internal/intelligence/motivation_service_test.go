package intelligence

import (
	"context"
	"testing"

	"github.com/attuneapp/attune/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotivate_Generated(t *testing.T) {
	srv := fakeOllama(t, "One step at a time. A ten minute walk will reset your focus.")
	defer srv.Close()

	svc := NewMotivationService(clientFor(srv.URL))
	resp, err := svc.Motivate(context.Background(), service.MotivationRequest{
		StressLevel:         8,
		RecommendedActivity: "a ten minute walk",
	})
	require.NoError(t, err)
	assert.True(t, resp.Generated)
	assert.Equal(t, "One step at a time. A ten minute walk will reset your focus.", resp.Message)
}

func TestMotivate_FallbackWithoutClient(t *testing.T) {
	svc := NewMotivationService(nil)

	tests := []struct {
		name   string
		stress int
		want   string
	}{
		{"high stress", 8, "I can see you're going through a tough time. Trying deep breathing might help provide some relief. You're not alone in this."},
		{"medium stress", 5, "Managing stress is a process, and you're taking good steps. deep breathing could be really helpful right now."},
		{"low stress", 2, "Great job maintaining your well-being! deep breathing will help you continue feeling your best."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Motivate(context.Background(), service.MotivationRequest{
				StressLevel:         tt.stress,
				RecommendedActivity: "deep breathing",
			})
			require.NoError(t, err)
			assert.False(t, resp.Generated)
			assert.Equal(t, tt.want, resp.Message)
		})
	}
}

func TestMotivate_FallbackWhenServerDown(t *testing.T) {
	svc := NewMotivationService(clientFor("http://127.0.0.1:1"))
	resp, err := svc.Motivate(context.Background(), service.MotivationRequest{StressLevel: 3})
	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Contains(t, resp.Message, "a short break")
}

func TestMotivate_EmptyGenerationFallsBack(t *testing.T) {
	srv := fakeOllama(t, "   ")
	defer srv.Close()

	svc := NewMotivationService(clientFor(srv.URL))
	resp, err := svc.Motivate(context.Background(), service.MotivationRequest{StressLevel: 9})
	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Contains(t, resp.Message, "tough time")
}

func TestMotivate_StressLevelOutOfRange(t *testing.T) {
	svc := NewMotivationService(nil)
	_, err := svc.Motivate(context.Background(), service.MotivationRequest{StressLevel: 11})
	assert.Error(t, err)
	_, err = svc.Motivate(context.Background(), service.MotivationRequest{StressLevel: -1})
	assert.Error(t, err)
}
