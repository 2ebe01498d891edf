// Package textscore provides lexicon-based text scoring: a small rule-based
// sentiment analyzer and stress-keyword extraction. No external NLP models
// are involved; everything is deterministic table lookups.
package textscore

import (
	"math"
	"strings"
	"unicode"
)

// Sentiment holds normalized sentiment scores. Compound is in (-1,1);
// Positive/Negative/Neutral are derived from it.
type Sentiment struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// Word weights are magnitudes; sign is applied during accumulation.
var positiveWords = map[string]float64{
	"good": 1, "great": 1.5, "excellent": 2, "awesome": 1.5, "wonderful": 1.5,
	"fantastic": 1.5, "amazing": 1.5, "perfect": 2, "love": 2, "like": 1,
	"happy": 1.5, "joy": 1.5, "pleased": 1, "content": 1, "satisfied": 1,
	"better": 1, "best": 1.5, "fine": 0.5, "okay": 0.5, "alright": 0.5,
	"calm": 1, "relaxed": 1, "peaceful": 1, "grateful": 1, "thankful": 1,
}

var negativeWords = map[string]float64{
	"bad": 1, "terrible": 2, "awful": 2, "horrible": 2, "hate": 2,
	"dislike": 1.5, "angry": 1.5, "mad": 1.5, "upset": 1.5, "sad": 1.5,
	"unhappy": 1.5, "depressed": 2, "anxious": 2, "worried": 1.5,
	"stressed": 2.5, "overwhelmed": 2.5, "tired": 1, "exhausted": 1.5,
	"frustrated": 1.5, "annoyed": 1, "problem": 1, "issue": 1,
	"difficult": 1, "hard": 1, "challenging": 0.5, "struggle": 1.5,
	"panic": 2, "nervous": 1.5, "scared": 1.5, "afraid": 1.5,
	"hopeless": 2, "helpless": 2, "lost": 1.5,
}

var intensifiers = map[string]float64{
	"very": 1.5, "really": 1.3, "extremely": 1.7, "quite": 1.2,
	"too": 1.3, "so": 1.2, "absolutely": 1.6, "completely": 1.5,
	"totally": 1.4, "utterly": 1.6,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "none": true,
	"nothing": true, "nobody": true, "nowhere": true, "n't": true,
}

// negationWindow is how many tokens a negation keeps flipping sentiment for.
const negationWindow = 3

// Analyze scores text with the word lexicons. Intensifiers amplify the next
// sentiment word; negations flip polarity for a short window; the raw sum is
// squashed with tanh so the compound score stays in (-1,1).
func Analyze(text string) Sentiment {
	var score float64
	intensifier := 1.0
	negated := 0

	for _, word := range Tokenize(text) {
		switch {
		case intensifiers[word] != 0:
			intensifier = intensifiers[word]
		case negations[word]:
			negated = negationWindow
		case positiveWords[word] != 0:
			w := positiveWords[word] * intensifier
			if negated > 0 {
				score -= w
			} else {
				score += w
			}
			intensifier = 1.0
			negated = 0
		case negativeWords[word] != 0:
			w := negativeWords[word] * intensifier
			if negated > 0 {
				score += w
			} else {
				score -= w
			}
			intensifier = 1.0
			negated = 0
		default:
			if negated > 0 {
				negated--
			}
		}
	}

	compound := math.Tanh(score / 3.0)
	return Sentiment{
		Compound: compound,
		Positive: math.Max(0, compound),
		Negative: math.Max(0, -compound),
		Neutral:  1 - math.Abs(compound),
	}
}

// Tokenize lowercases text and splits it into alphabetic words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
