package textscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Polarity(t *testing.T) {
	pos := Analyze("I feel great and really happy today")
	assert.Greater(t, pos.Compound, 0.0)
	assert.Greater(t, pos.Positive, pos.Negative)

	neg := Analyze("completely overwhelmed and stressed, this is terrible")
	assert.Less(t, neg.Compound, 0.0)
	assert.Greater(t, neg.Negative, neg.Positive)

	neutral := Analyze("the quarterly report covers three regions")
	assert.InDelta(t, 0.0, neutral.Compound, 0.001)
	assert.InDelta(t, 1.0, neutral.Neutral, 0.001)
}

func TestAnalyze_NegationFlipsPolarity(t *testing.T) {
	plain := Analyze("I am happy")
	negated := Analyze("I am not happy")

	assert.Greater(t, plain.Compound, 0.0)
	assert.Less(t, negated.Compound, 0.0, "negation within the window flips positive to negative")
}

func TestAnalyze_IntensifierAmplifies(t *testing.T) {
	base := Analyze("this is bad")
	amplified := Analyze("this is extremely bad")

	assert.Less(t, amplified.Compound, base.Compound)
}

func TestAnalyze_CompoundBounded(t *testing.T) {
	s := Analyze("terrible awful horrible hate depressed anxious stressed overwhelmed panic hopeless helpless")
	assert.Greater(t, s.Compound, -1.0)
	assert.Less(t, s.Compound, 0.0)
}

func TestStressKeywords(t *testing.T) {
	kws := StressKeywords("I'm so stressed about the exam deadline, totally overwhelmed!")
	assert.Equal(t, []string{"deadline", "exam", "overwhelmed", "stressed"}, kws)

	assert.Empty(t, StressKeywords("a perfectly pleasant afternoon walk"))
}
