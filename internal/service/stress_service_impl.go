package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/attuneapp/attune/internal/textscore"
)

// Stress level category boundaries on the 0-10 score.
const (
	stressLowMax    = 3.0
	stressMediumMax = 6.0
)

type stressService struct{}

// NewStressService creates the lexicon-based stress estimator.
func NewStressService() StressService {
	return &stressService{}
}

// Estimate scores free text on a 0-10 stress scale: a sentiment base,
// a stress-keyword adjustment weighted by sentiment polarity, a rumination
// signal from text length, and an exclamation signal.
func (s *stressService) Estimate(_ context.Context, text string) (*StressEstimate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("stress estimate: empty input text")
	}

	sentiment := textscore.Analyze(text)
	keywords := textscore.StressKeywords(text)

	// Sentiment base maps compound [-1,1] onto [0,5].
	score := (1.0 - sentiment.Compound) * 2.5

	// Keywords carry more weight when sentiment is already negative, less
	// when the text reads positive.
	switch {
	case sentiment.Compound < -0.3:
		score += minF(float64(len(keywords))*1.5, 3.0)
	case sentiment.Compound > 0.3:
		score += minF(float64(len(keywords))*0.5, 1.0)
	default:
		score += minF(float64(len(keywords))*1.0, 2.0)
	}

	words := len(strings.Fields(text))
	score += minF(float64(words)*0.1, 2.0)
	score += minF(float64(strings.Count(text, "!"))*0.2, 1.0)

	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}

	level := stressLevelName(score)
	return &StressEstimate{
		Score:       score,
		Level:       level,
		Keywords:    keywords,
		Explanation: stressExplanation(level, keywords, sentiment, score, words),
		Sentiment:   sentiment,
	}, nil
}

func stressLevelName(score float64) string {
	switch {
	case score <= stressLowMax:
		return "Low"
	case score <= stressMediumMax:
		return "Medium"
	default:
		return "High"
	}
}

var stressLevelSummaries = map[string]string{
	"Low":    "You seem to be handling things well and maintaining a positive outlook.",
	"Medium": "You're showing some signs of stress but seem to be managing overall.",
	"High":   "You're experiencing significant stress that would benefit from attention.",
}

func stressExplanation(level string, keywords []string, sentiment textscore.Sentiment, score float64, words int) string {
	var b strings.Builder
	b.WriteString(stressLevelSummaries[level])

	if len(keywords) > 0 {
		shown := keywords
		if len(shown) > 3 {
			shown = shown[:3]
		}
		fmt.Fprintf(&b, " Keywords like '%s' suggest specific stressors.", strings.Join(shown, ", "))
	}

	if sentiment.Compound < -0.3 {
		b.WriteString(" Your language indicates negative emotions which may contribute to stress.")
	} else if sentiment.Compound > 0.3 {
		b.WriteString(" Your positive outlook helps mitigate stress.")
	}

	if words > 30 {
		b.WriteString(" The detailed description suggests you're giving this significant thought.")
	} else if words < 5 {
		b.WriteString(" The brief response might indicate you're not fully expressing your feelings.")
	}

	fmt.Fprintf(&b, " (Stress score: %.1f/10)", score)
	return b.String()
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
