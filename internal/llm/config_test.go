package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30000, cfg.Tasks[TaskSchedule].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("ATTUNE_LLM_TIMEOUT_MS", "9000")
	t.Setenv("ATTUNE_LLM_SCHEDULE_TIMEOUT_MS", "15000")
	t.Setenv("ATTUNE_LLM_MOTIVATE_TIMEOUT_MS", "7000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskSchedule))
	assert.Equal(t, 7000, cfg.TaskTimeout(TaskMotivate))
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskStressExplain))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("ATTUNE_LLM_SCHEDULE_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 30000, cfg.TaskTimeout(TaskSchedule))
}

func TestLoadConfig_EnabledAndModel(t *testing.T) {
	t.Setenv("ATTUNE_LLM_ENABLED", "true")
	t.Setenv("ATTUNE_LLM_MODEL", "mistral")
	t.Setenv("ATTUNE_LLM_ENDPOINT", "http://10.0.0.2:11434")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, "http://10.0.0.2:11434", cfg.Endpoint)
}
