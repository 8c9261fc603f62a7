package examparse

import (
	"fmt"
	"sort"
)

// mergeQuestions joins scanned blocks with answer-key entries and emits the
// final ordered question list. Duplicate numbers keep the first occurrence;
// numbers outside the accepted range are dropped. Missing data stays visible
// through sentinels rather than being silently omitted.
func mergeQuestions(testID string, blocks []QuestionBlock, answers map[int]AnswerEntry) []Question {
	seen := make(map[int]bool, len(blocks))
	questions := make([]Question, 0, len(blocks))

	for _, b := range blocks {
		if b.Number < minQuestionNumber || b.Number > maxQuestionNumber {
			continue
		}
		if seen[b.Number] {
			continue
		}
		seen[b.Number] = true

		opts := padOptions(b.Options)

		q := Question{
			ID:            fmt.Sprintf("%s-q%d", testID, b.Number),
			Number:        b.Number,
			Question:      b.Prompt,
			Options:       opts,
			CorrectIndex:  -1,
			CorrectLetter: UnknownLetter,
			Explanation:   MissingExplanation,
		}

		if a, ok := answers[b.Number]; ok && len(a.Letter) == 1 {
			q.CorrectLetter = a.Letter
			if idx := int(a.Letter[0] - 'A'); idx >= 0 && idx < len(opts) {
				q.CorrectIndex = idx
			}
			if a.Explanation != "" {
				q.Explanation = a.Explanation
			}
		}

		questions = append(questions, q)
	}

	sort.Slice(questions, func(i, j int) bool { return questions[i].Number < questions[j].Number })
	return questions
}

// padOptions sorts options by label and fills label gaps with the missing
// sentinel, producing max(4, highest label index + 1) entries.
func padOptions(options []Option) []string {
	byLabel := make(map[byte]string, len(options))
	target := 4
	for _, o := range options {
		if o.Label < 'A' || o.Label > 'E' {
			continue
		}
		if _, ok := byLabel[o.Label]; !ok {
			byLabel[o.Label] = o.Text
		}
		if n := int(o.Label-'A') + 1; n > target {
			target = n
		}
	}

	out := make([]string, target)
	for i := range out {
		if text, ok := byLabel[byte('A'+i)]; ok {
			out[i] = text
		} else {
			out[i] = MissingOption
		}
	}
	return out
}
