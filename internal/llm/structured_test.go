package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlacement struct {
	TaskID     string  `json:"task_id"`
	Confidence float64 `json:"confidence"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"task_id":"t1","confidence":0.95}`
	result, err := ExtractJSON[testPlacement](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "t1", result.TaskID)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"task_id\":\"t2\",\"confidence\":0.88}\n```"
	result, err := ExtractJSON[testPlacement](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "t2", result.TaskID)
	assert.Equal(t, 0.88, result.Confidence)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your schedule:\n{\"task_id\":\"t3\",\"confidence\":0.72}\nHope that helps!"
	result, err := ExtractJSON[testPlacement](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "t3", result.TaskID)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		TaskID string            `json:"task_id"`
		Extra  map[string]string `json:"extra"`
	}
	raw := `{"task_id":"t4","extra":{"note":"morning block"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "t4", result.TaskID)
	assert.Equal(t, "morning block", result.Extra["note"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I cannot produce a schedule for that."
	_, err := ExtractJSON[testPlacement](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"task_id":"t1", broken}`
	_, err := ExtractJSON[testPlacement](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"task_id":"t1","confidence":1.5}`
	validator := func(p testPlacement) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	raw := `{"task_id":"t1","confidence":0.9}`
	validator := func(p testPlacement) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence out of range")
		}
		return nil
	}
	result, err := ExtractJSON(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "t1", result.TaskID)
}

func TestExtractJSON_LeadingDecimalNormalized(t *testing.T) {
	raw := `{"task_id":"t1","confidence":.8}`
	result, err := ExtractJSON[testPlacement](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestExtractJSON_CommentsStripped(t *testing.T) {
	raw := "{\"task_id\":\"t1\", // best fit\n\"confidence\":0.9}"
	result, err := ExtractJSON[testPlacement](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "t1", result.TaskID)
}

func TestExtractJSON_MultipleFences(t *testing.T) {
	raw := "Some text\n```\n{\"task_id\":\"t5\",\"confidence\":0.8}\n```\nMore text"
	result, err := ExtractJSON[testPlacement](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "t5", result.TaskID)
}
