package textscore

import "sort"

// stressTerms is the stressor vocabulary: direct stress language, workload
// pressure words, and common stressor events.
var stressTerms = map[string]bool{
	"stress": true, "stressed": true, "stressful": true,
	"overwhelm": true, "overwhelmed": true, "anxious": true, "anxiety": true,
	"worry": true, "worried": true, "pressure": true, "pressured": true,
	"burnout": true, "burntout": true, "exhausted": true,
	"deadline": true, "exam": true, "test": true, "presentation": true,
	"interview": true, "meeting": true, "assignment": true,
	"drowning": true, "overloaded": true,
	"panic": true, "nervous": true, "tense": true, "frustrated": true,
	"annoyed": true, "irritated": true, "angry": true, "mad": true,
	"depressed": true, "sad": true, "unhappy": true, "miserable": true,
	"hopeless": true, "helpless": true, "lost": true,
}

// StressKeywords returns the distinct stress-related words found in text,
// sorted for deterministic output.
func StressKeywords(text string) []string {
	seen := make(map[string]bool)
	for _, word := range Tokenize(text) {
		if stressTerms[word] {
			seen[word] = true
		}
	}
	keywords := make([]string, 0, len(seen))
	for w := range seen {
		keywords = append(keywords, w)
	}
	sort.Strings(keywords)
	return keywords
}
