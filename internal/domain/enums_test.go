package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority_Defaults(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority("high"))
	assert.Equal(t, PriorityLow, ParsePriority("low"))
	assert.Equal(t, PriorityMedium, ParsePriority("urgent"), "unrecognized priority defaults to medium")
	assert.Equal(t, PriorityMedium, ParsePriority(""))
}

func TestParseMood_Defaults(t *testing.T) {
	assert.Equal(t, MoodTired, ParseMood("tired"))
	assert.Equal(t, MoodScattered, ParseMood("scattered"))
	assert.Equal(t, MoodFocused, ParseMood("grumpy"), "unrecognized mood defaults to focused")
	assert.Equal(t, MoodFocused, ParseMood(""))
}

func TestTimeBlock_CapacityMin(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 180, TimeBlock{Start: start, End: start.Add(3 * time.Hour)}.CapacityMin())
	assert.Equal(t, 0, TimeBlock{Start: start, End: start}.CapacityMin())
	assert.Equal(t, 0, TimeBlock{Start: start, End: start.Add(-time.Hour)}.CapacityMin(),
		"inverted block contributes zero capacity")
}

func TestNewStressContext_Clamps(t *testing.T) {
	ctx := NewStressContext(14, "energetic")
	assert.Equal(t, 10, ctx.StressLevel)
	assert.Equal(t, MoodEnergetic, ctx.Mood)

	ctx = NewStressContext(-2, "")
	assert.Equal(t, 0, ctx.StressLevel)
	assert.Equal(t, MoodFocused, ctx.Mood)
}
