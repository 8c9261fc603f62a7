package examparse

import (
	"regexp"
	"strings"
)

// Implicit answer-key detection: a run of keyRunLength bare "<n>. <letter>"
// lines while already past question keyMinQuestion ends the question scan
// even without an "Answer Key" header. Both thresholds are inherited tuning
// values; tests pin the current behavior.
const (
	keyRunLength   = 3
	keyMinQuestion = 50
)

var (
	questionStartRe = regexp.MustCompile(`^(\d{1,3})\s*[).:\-]\s+(.*)`)
	optionStartRe   = regexp.MustCompile(`^\s*\(?([A-E])(?:[).:\-]|\))\s*(.*)`)
	inlineOptRe     = regexp.MustCompile(`(?:\s{2,}|\s+)\(?([A-E])(?:[).:\-]|\))\s*`)
	bareEntryRe     = regexp.MustCompile(`(?i)^(\d{1,3})\s*[).:\-]\s*([A-E])\s*$`)
	singleLetterRe  = regexp.MustCompile(`(?i)^[A-E]$`)
)

// scanState tags the question scanner's position explicitly instead of
// re-deriving it from accumulator contents.
type scanState int

const (
	stateNoQuestion scanState = iota
	stateInQuestion
)

type questionScanner struct {
	rep     *Repairer
	state   scanState
	cur     QuestionBlock
	lastNum int
	blocks  []QuestionBlock
}

// scanQuestions reconstructs question blocks with labeled options from the
// cleaned line sequence. The scan stops at an explicit answer-key header or
// at a detected run of bare key entries.
func scanQuestions(lines []string, rep *Repairer) []QuestionBlock {
	s := &questionScanner{rep: rep}

	i := 0
	for i < len(lines) {
		line := lines[i]
		i++

		if strings.EqualFold(strings.TrimSpace(line), "answer key") {
			break
		}
		if bareEntryRe.MatchString(line) && bareRunFollows(lines, i) && s.lastNum >= keyMinQuestion {
			break
		}

		if m := questionStartRe.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[2])
			// "12. A" is a key entry that slipped through, not a prompt.
			if singleLetterRe.MatchString(text) {
				continue
			}
			s.startQuestion(atoiSafe(m[1]), text)
			continue
		}

		if m := optionStartRe.FindStringSubmatch(line); m != nil {
			label := strings.ToUpper(m[1])[0]
			text := m[2]

			// Bare label: borrow the next line as the option body, unless
			// it opens a new question or option itself.
			if strings.TrimSpace(text) == "" && i < len(lines) {
				next := lines[i]
				if !optionStartRe.MatchString(next) && !questionStartRe.MatchString(next) {
					text = next
					i++
				}
			}

			s.addOption(label, text)
			continue
		}

		s.continuation(line)
	}

	s.finalize()
	return s.blocks
}

// bareRunFollows reports whether the next keyRunLength lines all look like
// bare answer-key entries (blank lines don't break the run).
func bareRunFollows(lines []string, i int) bool {
	for j := i; j < min(i+keyRunLength, len(lines)); j++ {
		if !bareEntryRe.MatchString(lines[j]) && strings.TrimSpace(lines[j]) != "" {
			return false
		}
	}
	return true
}

func (s *questionScanner) startQuestion(num int, prompt string) {
	s.finalize()
	s.cur = QuestionBlock{Number: num, Prompt: prompt}
	s.state = stateInQuestion
}

func (s *questionScanner) addOption(label byte, text string) {
	if s.state == stateInQuestion && label == 'A' && s.hasLabel('A') {
		// A second "A" means the next question's start line was lost;
		// close the current block and open a numbered placeholder.
		prev := s.cur.Number
		s.finalize()
		s.cur = QuestionBlock{Number: prev + 1, Prompt: MissingPrompt}
		s.state = stateInQuestion
	}

	if s.state == stateNoQuestion {
		switch {
		case label == 'A':
			num := 1
			if s.lastNum > 0 {
				num = s.lastNum + 1
			}
			s.cur = QuestionBlock{Number: num, Prompt: MissingPrompt}
			s.state = stateInQuestion
		case len(s.blocks) > 0 && s.reopenLast(label):
			// Continuing the previous question's option run.
		default:
			// A non-A option with no context carries too little signal.
			return
		}
	}

	s.cur.Options = append(s.cur.Options, Option{Label: label, Text: text})
	s.splitInline()
}

// reopenLast pulls the most recent finalized block back open when an orphan
// option label extends its run (e.g. a "D" after a block ending at "C").
func (s *questionScanner) reopenLast(label byte) bool {
	last := s.blocks[len(s.blocks)-1]
	if len(last.Options) == 0 || last.Options[len(last.Options)-1].Label >= label {
		return false
	}
	s.blocks = s.blocks[:len(s.blocks)-1]
	s.cur = last
	s.lastNum = last.Number - 1
	s.state = stateInQuestion
	return true
}

// splitInline breaks additional label markers out of the option just added
// ("Red  B. Green  C. Blue" on one physical line).
func (s *questionScanner) splitInline() {
	text := s.cur.Options[len(s.cur.Options)-1].Text
	found := inlineOptRe.FindAllStringSubmatchIndex(text, -1)
	if found == nil {
		return
	}

	s.cur.Options[len(s.cur.Options)-1].Text = strings.TrimSpace(text[:found[0][0]])
	for j, m := range found {
		label := strings.ToUpper(text[m[2]:m[3]])[0]
		end := len(text)
		if j < len(found)-1 {
			end = found[j+1][0]
		}
		s.cur.Options = append(s.cur.Options, Option{
			Label: label,
			Text:  strings.TrimSpace(text[m[1]:end]),
		})
	}
}

func (s *questionScanner) continuation(line string) {
	if s.state != stateInQuestion {
		return
	}
	if len(s.cur.Options) > 0 {
		s.cur.Options[len(s.cur.Options)-1].Text += " " + line
	} else {
		s.cur.Prompt += " " + line
	}
}

func (s *questionScanner) hasLabel(label byte) bool {
	for _, o := range s.cur.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// finalize word-repairs the open block and appends it to the result list.
func (s *questionScanner) finalize() {
	if s.state != stateInQuestion {
		return
	}
	s.cur.Prompt = s.rep.Repair(NormalizeWhitespace(s.cur.Prompt))
	for i, o := range s.cur.Options {
		s.cur.Options[i].Text = s.rep.Repair(NormalizeWhitespace(o.Text))
	}
	s.blocks = append(s.blocks, s.cur)
	s.lastNum = s.cur.Number
	s.cur = QuestionBlock{}
	s.state = stateNoQuestion
}
