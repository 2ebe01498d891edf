// Package contract defines the JSON wire types for planning requests and
// responses, and the normalization from wire input to domain values.
// Malformed fields never abort a request: each one substitutes its default
// and is reported as a validation warning.
package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/attuneapp/attune/internal/domain"
)

// PlanRequest is the wire shape of a planning request.
type PlanRequest struct {
	Tasks       []TaskInput      `json:"tasks"`
	TimeBlocks  []TimeBlockInput `json:"time_blocks"`
	StressLevel int              `json:"stress_level"`
	Mood        string           `json:"mood"`
}

// TaskInput is one task as submitted. Deadline and duration are kept raw so
// malformed values degrade to defaults instead of failing the decode.
type TaskInput struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Deadline    string          `json:"deadline,omitempty"`
	Priority    string          `json:"priority,omitempty"`
	Duration    json.RawMessage `json:"estimated_duration,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// TimeBlockInput is one availability window as submitted.
type TimeBlockInput struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// DecodePlanRequest parses a JSON planning request. Only a structurally
// invalid document is an error; field-level problems surface later during
// Normalize.
func DecodePlanRequest(data []byte) (PlanRequest, error) {
	var req PlanRequest
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&req); err != nil {
		return PlanRequest{}, fmt.Errorf("decode plan request: %w", err)
	}
	return req, nil
}

// NormalizedPlan is the domain-level view of a request after defaulting.
type NormalizedPlan struct {
	Tasks    []domain.Task
	Blocks   []domain.TimeBlock
	Stress   domain.StressContext
	Warnings []string
}

// Normalize converts the wire request into domain values, substituting the
// documented defaults for anything malformed and recording one warning per
// substitution.
func (r PlanRequest) Normalize() NormalizedPlan {
	var out NormalizedPlan

	for i, t := range r.Tasks {
		task := domain.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    domain.ParsePriority(t.Priority),
			Category:    t.Category,
		}
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		name := t.Title
		if name == "" {
			name = fmt.Sprintf("task %d", i+1)
		}

		task.DurationMin = parseDuration(t.Duration, func(raw string) {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"%s: invalid estimated_duration %q, using default %d minutes", name, raw, domain.DefaultDurationMin))
		})

		if t.Deadline != "" {
			if dl, err := ParseDeadline(t.Deadline); err != nil {
				out.Warnings = append(out.Warnings, fmt.Sprintf(
					"%s: invalid deadline %q, treating task as having none", name, t.Deadline))
			} else {
				task.Deadline = &dl
			}
		}

		out.Tasks = append(out.Tasks, task)
	}

	for i, b := range r.TimeBlocks {
		start, errS := parseTimestamp(b.Start)
		end, errE := parseTimestamp(b.End)
		if errS != nil || errE != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"time block %d: invalid timestamps, block contributes no capacity", i+1))
			continue
		}
		blk := domain.TimeBlock{Start: start, End: end}
		if blk.CapacityMin() == 0 {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"time block %d: end does not follow start, block contributes no capacity", i+1))
			continue
		}
		out.Blocks = append(out.Blocks, blk)
	}

	mood := domain.ParseMood(r.Mood)
	if r.Mood != "" && string(mood) != strings.ToLower(strings.TrimSpace(r.Mood)) {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"unrecognized mood %q, using %s", r.Mood, mood))
	}
	if r.StressLevel < 0 || r.StressLevel > 10 {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"stress_level %d out of range, clamping to 0-10", r.StressLevel))
	}
	out.Stress = domain.NewStressContext(r.StressLevel, string(mood))

	return out
}

// parseDuration accepts a JSON number or a numeric string; anything else
// falls back to the default estimate.
func parseDuration(raw json.RawMessage, warn func(raw string)) int {
	if len(raw) == 0 {
		return domain.DefaultDurationMin
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n > 0 {
			return int(n)
		}
		warn(string(raw))
		return domain.DefaultDurationMin
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v > 0 {
			return v
		}
	}

	warn(string(raw))
	return domain.DefaultDurationMin
}

// deadline layouts tried in order; date-only values imply end-of-day.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

const dateOnlyLayout = "2006-01-02"

// ParseDeadline parses an ISO-8601 timestamp or a bare date. A bare date
// means the very end of that day.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(dateOnlyLayout, s, time.Local); err == nil {
		return d.Add(24*time.Hour - time.Second), nil
	}
	return parseTimestamp(s)
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
