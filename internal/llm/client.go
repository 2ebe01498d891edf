package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest carries one scheduling prompt to the model. Sampling
// parameters come from the task's configuration, not from the caller.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
}

// GenerateResponse is the model's raw text plus call metadata.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient generates text for the scheduling, motivation, and stress
// explanation tasks.
type LLMClient interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the model endpoint answers at all; callers
	// use it to decide between the generative and rule-based paths.
	Available(ctx context.Context) bool
}

// ollamaClient talks to a local Ollama instance over its HTTP API.
type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

// generatePayload is the body of POST /api/generate. Stream is always
// false; the engine consumes whole responses.
type generatePayload struct {
	Model   string         `json:"model"`
	System  string         `json:"system,omitempty"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options payloadOptions `json:"options,omitempty"`
}

type payloadOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResult struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(parent context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	taskCfg := c.cfg.Tasks[req.Task]
	perAttempt := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond

	payload := generatePayload{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Options: payloadOptions{
			Temperature: taskCfg.Temperature,
			NumPredict:  taskCfg.MaxTokens,
		},
	}

	var lastErr error
	attempts := 0
	for attempts < 1+c.cfg.MaxRetries {
		attempts++
		// Each attempt gets its own deadline; a slow first answer should
		// not eat the retry budget.
		ctx, cancel := context.WithTimeout(parent, perAttempt)
		result, err := c.post(ctx, payload)
		cancel()

		if err == nil {
			elapsed := time.Since(start)
			c.report(req, attempts, elapsed, nil)
			return &GenerateResponse{
				Text:      result.Response,
				Model:     result.Model,
				LatencyMs: elapsed.Milliseconds(),
			}, nil
		}
		lastErr = err

		if parent.Err() != nil {
			break
		}
	}

	final := classify(lastErr)
	c.report(req, attempts, time.Since(start), final)
	return nil, final
}

// classify maps the last attempt's error onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTimeout
	case connectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetriesExhausted, err)
	}
}

func (c *ollamaClient) report(req GenerateRequest, attempts int, elapsed time.Duration, err error) {
	c.observer.ObserveCall(CallEvent{
		Task:        req.Task,
		Model:       c.cfg.Model,
		Attempts:    attempts,
		PromptChars: len(req.SystemPrompt) + len(req.UserPrompt),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		ErrorCode:   eventCode(err),
	})
}

func (c *ollamaClient) post(ctx context.Context, payload generatePayload) (*generateResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding generate payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.Endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading generate response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generate returned status %d: %s", httpResp.StatusCode, raw)
	}

	var result generateResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding generate response: %w", err)
	}
	return &result, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
