package contract

import "fmt"

// PlanErrorCode classifies planning failures.
type PlanErrorCode string

const (
	PlanErrInvalidRequest PlanErrorCode = "INVALID_REQUEST"
	PlanErrNoTasks        PlanErrorCode = "NO_TASKS"
	PlanErrInternal       PlanErrorCode = "INTERNAL"
)

// PlanError is the structured failure payload. The orchestrator converts
// any unexpected fault into one of these so callers always receive a
// well-formed result, never a raw panic.
type PlanError struct {
	Code        PlanErrorCode `json:"code"`
	Message     string        `json:"message"`
	TaskCount   int           `json:"task_count"`
	StressLevel int           `json:"stress_level"`
	Mood        string        `json:"mood"`
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
