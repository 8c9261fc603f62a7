package examparse

import (
	"regexp"
	"strings"
)

// Stats summarizes reconstruction quality for one Test. Produced for offline
// auditing; heuristic false positives in word repair only surface here, not
// in the parse path.
type Stats struct {
	Questions      int `json:"questions"`
	Answered       int `json:"answered"`
	MissingOptions int `json:"missing_options"`
	MissingPrompts int `json:"missing_prompts"`
	SuspectTokens  int `json:"suspect_tokens"`
}

var suspectPairRe = regexp.MustCompile(`\b([a-zA-Z]{1,2})\s+([a-zA-Z]{1,2})\b`)

// Analyze computes quality statistics over a parsed Test.
func Analyze(t *Test) Stats {
	var s Stats
	rules := DefaultRules()

	s.Questions = len(t.Questions)
	for _, q := range t.Questions {
		if q.CorrectIndex >= 0 {
			s.Answered++
		}
		if q.Question == MissingPrompt {
			s.MissingPrompts++
		}
		for _, o := range q.Options {
			if o == MissingOption {
				s.MissingOptions++
			}
			s.SuspectTokens += countSuspectPairs(o, rules)
		}
		s.SuspectTokens += countSuspectPairs(q.Question, rules)
		s.SuspectTokens += countSuspectPairs(q.Explanation, rules)
	}
	return s
}

// countSuspectPairs counts adjacent 1-2 letter token pairs where neither
// token is a valid short word, the signature of residual spacing damage.
func countSuspectPairs(text string, rules *RuleSet) int {
	n := 0
	for _, m := range suspectPairRe.FindAllStringSubmatch(text, -1) {
		if rules.shortWords[strings.ToLower(m[1])] || rules.shortWords[strings.ToLower(m[2])] {
			continue
		}
		n++
	}
	return n
}
