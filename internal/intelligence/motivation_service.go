package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/attuneapp/attune/internal/llm"
	"github.com/attuneapp/attune/internal/service"
)

type motivationService struct {
	client llm.LLMClient
}

var _ service.MotivationService = (*motivationService)(nil)

// NewMotivationService creates a motivational message generator. The client
// may be nil; every request then gets the fixed fallback message for its
// stress band.
func NewMotivationService(client llm.LLMClient) service.MotivationService {
	return &motivationService{client: client}
}

// Motivate generates a short encouraging message for the current stress
// level. LLM failures are absorbed: the caller always gets a message.
func (s *motivationService) Motivate(ctx context.Context, req service.MotivationRequest) (*service.MotivationResponse, error) {
	if req.StressLevel < 0 || req.StressLevel > 10 {
		return nil, fmt.Errorf("motivate: stress level %d out of range", req.StressLevel)
	}

	if s.client != nil && s.client.Available(ctx) {
		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskMotivate,
			SystemPrompt: motivationSystemPrompt,
			UserPrompt:   buildMotivationPrompt(req.StressLevel, req.RecommendedActivity, req.UserMessage),
		})
		if err == nil && strings.TrimSpace(resp.Text) != "" {
			return &service.MotivationResponse{
				Message:   strings.TrimSpace(resp.Text),
				Generated: true,
			}, nil
		}
	}

	return &service.MotivationResponse{
		Message:   fallbackMessage(req.StressLevel, req.RecommendedActivity),
		Generated: false,
	}, nil
}

// fallbackMessage returns the fixed encouragement for a stress band.
func fallbackMessage(stressLevel int, activity string) string {
	if activity == "" {
		activity = "a short break"
	}
	switch {
	case stressLevel >= 7:
		return fmt.Sprintf("I can see you're going through a tough time. Trying %s might help provide some relief. You're not alone in this.", activity)
	case stressLevel >= 4:
		return fmt.Sprintf("Managing stress is a process, and you're taking good steps. %s could be really helpful right now.", activity)
	default:
		return fmt.Sprintf("Great job maintaining your well-being! %s will help you continue feeling your best.", activity)
	}
}
