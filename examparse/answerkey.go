package examparse

import (
	"regexp"
	"strings"
)

var (
	keyHeaderRe = regexp.MustCompile(`(?i)answer\s*(key|section)`)

	// Number + optional separator + letter, used both to locate the section
	// by sequence and to extract entries.
	keyNumRe   = regexp.MustCompile(`(?i)^\s*(\d{1,3})\s*[:.\-]?\s*([A-E])\b`)
	keyEntryRe = regexp.MustCompile(`(?i)^\s*(\d{1,3})\s*[:.\-]?\s*([A-E])\b\s*(.*)`)

	// A line packing several bare entries ("97.B 98.C") and nothing else.
	packedEntryRe  = regexp.MustCompile(`(?i)(\d{1,3})\s*[:.\-]?\s*([A-E])\b`)
	packedOnlyRe   = regexp.MustCompile(`(?i)^\s*(?:\d{1,3}\s*[:.\-]?\s*[A-E]\b[\s,]*){2,}$`)
	keySearchStart = 0.1
	keyFallbackAt  = 0.8
)

// Lines scanned ahead per expected number when confirming a detected
// answer-key sequence.
const keyLookahead = 50

// locateAnswerKey returns the index where the answer-key section starts.
// Priority: explicit header, standalone "KEY", detected 1-2-3 sequence,
// then a fixed proportional offset.
func locateAnswerKey(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if keyHeaderRe.MatchString(lines[i]) {
			return i
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.ToUpper(strings.TrimSpace(lines[i])) == "KEY" {
			return i
		}
	}

	// Sequence detection: find "1 <sep> <letter>" past the opening tenth of
	// the document, then confirm numbers 2 and 3 follow within a bounded
	// window. A lone "1. A" early on is usually the first question, not
	// the key.
	start := int(float64(len(lines)) * keySearchStart)
	for i := start; i < len(lines); i++ {
		m := keyNumRe.FindStringSubmatch(lines[i])
		if m == nil || m[1] != "1" {
			continue
		}
		next := 2
		window := min(i+keyLookahead*next, len(lines))
		for j := i + 1; j < window; j++ {
			m2 := keyNumRe.FindStringSubmatch(lines[j])
			if m2 == nil {
				continue
			}
			if atoiSafe(m2[1]) == next {
				next++
				if next > 3 {
					return i
				}
			}
		}
	}

	idx := int(float64(len(lines)) * keyFallbackAt)
	if idx < 0 {
		idx = 0
	}
	return idx
}

// parseAnswerKey extracts number -> (letter, explanation) from the line
// sequence. Entries outside [1,100] are ignored; duplicates keep the first
// occurrence. Header noise inside the section is skipped without ending
// the scan.
func parseAnswerKey(lines []string, rep *Repairer) map[int]AnswerEntry {
	answers := make(map[int]AnswerEntry)
	i := locateAnswerKey(lines)

	for i < len(lines) {
		line := lines[i]
		if looksLikeHeaderLine(line) || strings.Contains(strings.ToLower(line), "answer key") {
			i++
			continue
		}

		// Several entries packed on one physical line with no explanations.
		if packedOnlyRe.MatchString(line) {
			for _, m := range packedEntryRe.FindAllStringSubmatch(line, -1) {
				storeAnswer(answers, atoiSafe(m[1]), strings.ToUpper(m[2]), "", rep)
			}
			i++
			continue
		}

		m := keyEntryRe.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}
		num := atoiSafe(m[1])
		letter := strings.ToUpper(m[2])
		expl := strings.TrimSpace(m[3])

		// Following non-entry, non-header lines continue the explanation.
		i++
		for i < len(lines) {
			next := lines[i]
			if keyEntryRe.MatchString(next) || packedOnlyRe.MatchString(next) || looksLikeHeaderLine(next) {
				break
			}
			expl += " " + rep.Repair(strings.TrimSpace(next))
			i++
		}

		storeAnswer(answers, num, letter, expl, rep)
	}

	return answers
}

func storeAnswer(answers map[int]AnswerEntry, num int, letter, expl string, rep *Repairer) {
	if num < minQuestionNumber || num > maxQuestionNumber {
		return
	}
	if _, ok := answers[num]; ok {
		return
	}
	answers[num] = AnswerEntry{Letter: letter, Explanation: rep.Repair(expl)}
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
