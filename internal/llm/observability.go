package llm

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// CallEvent describes one completed generation attempt sequence: which
// scheduling task asked for it, how long the whole sequence took, and how
// it ended.
type CallEvent struct {
	Task        TaskType
	Model       string
	Attempts    int
	PromptChars int
	LatencyMs   int64
	Success     bool
	ErrorCode   string
}

// Observer receives call events for logging and diagnostics.
type Observer interface {
	ObserveCall(event CallEvent)
}

// LogObserver writes one line per call to an io.Writer. Wired to stderr
// when call logging is enabled.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) ObserveCall(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm task=%s model=%s attempts=%d prompt_chars=%d latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339),
		event.Task, event.Model, event.Attempts, event.PromptChars, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) ObserveCall(CallEvent) {}

// eventCode maps an error to the stable code reported in CallEvent.
func eventCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrRetriesExhausted):
		return "RETRIES_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
