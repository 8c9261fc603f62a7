package examparse

import (
	"regexp"
	"strings"
	"unicode"
)

// Repairer undoes intra-word spacing corruption left behind by text-layer
// extraction. Transformations run in strict precedence order; later passes
// assume earlier ones already normalized spacing and case, so the order is
// load-bearing.
type Repairer struct {
	rules *RuleSet
}

// NewRepairer returns a Repairer using the given tables, or DefaultRules
// when rules is nil. A Repairer is safe for concurrent use.
func NewRepairer(rules *RuleSet) *Repairer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Repairer{rules: rules}
}

var (
	labelSpaceRe  = regexp.MustCompile(`(?i)\b(SOURCE|Rationale|Answer|Note):(\S)`)
	sourcSplitRe  = regexp.MustCompile(`\bSOURC\s*E\b`)
	sourceColonRe = regexp.MustCompile(`\bSOURCE\s+:\s*`)

	hyphenLeftRe  = regexp.MustCompile(`(\w)\s+-(\w)`)
	hyphenRightRe = regexp.MustCompile(`(\w)-\s+(\w)`)
	hyphenBothRe  = regexp.MustCompile(`(\w)\s+-\s+(\w)`)

	commaJoinRe    = regexp.MustCompile(`(\w),(\w)`)
	spaceBeforePRe = regexp.MustCompile(`\s+([.,;:!?])`)
	sentenceCapRe  = regexp.MustCompile(`([.!?])([A-Z])`)
	multiSpaceRe   = regexp.MustCompile(`\s{2,}`)

	possessiveRe   = regexp.MustCompile(`(\w+)'s([a-z])`)
	contractionTRe = regexp.MustCompile(`(\w+)'t([a-z])`)
	contractionVe  = regexp.MustCompile(`(\w+)'ve([a-z])`)
	contractionRe2 = regexp.MustCompile(`(\w+)'re([a-z])`)
	contractionLl  = regexp.MustCompile(`(\w+)'ll([a-z])`)
	contractionD   = regexp.MustCompile(`(\w+)'d([a-z])`)

	labelCapRe = regexp.MustCompile(`(?i)\b(SOURCE|Rationale|Answer|Note):\s*([a-z])`)

	mergePrefixRe = regexp.MustCompile(`\b([a-zA-Z]{1,2})\s+([a-zA-Z]{3,})\b`)
	mergeSuffixRe = regexp.MustCompile(`\b([a-zA-Z]{2,})\s+([a-zA-Z]{1,2})\b`)
	wordTheRe     = regexp.MustCompile(`(?i)\b[a-zA-Z]{4,}the\b`)

	sourceHTTPRe = regexp.MustCompile(`SOURCE:\s*Http`)
	noteThisRe   = regexp.MustCompile(`(?i)Note:\s*this`)
)

// Repair applies the full cascade to text and returns the repaired string.
func (r *Repairer) Repair(text string) string {
	if text == "" {
		return ""
	}

	// Separate words glued onto explanation labels before anything else.
	text = labelSpaceRe.ReplaceAllString(text, "$1: $2")
	text = sourcSplitRe.ReplaceAllString(text, "SOURCE")
	text = sourceColonRe.ReplaceAllString(text, "SOURCE: ")

	// 1. Curated lexicon fixes, case shape preserved.
	for _, cr := range r.rules.common {
		text = cr.re.ReplaceAllStringFunc(text, func(m string) string {
			return matchCase(m, cr.out)
		})
	}

	// 2. Hyphenation: "word -word", "word- word", "word - word".
	text = hyphenLeftRe.ReplaceAllString(text, "$1-$2")
	text = hyphenRightRe.ReplaceAllString(text, "$1-$2")
	text = hyphenBothRe.ReplaceAllString(text, "$1-$2")

	// 3. Punctuation spacing.
	text = commaJoinRe.ReplaceAllString(text, "$1, $2")
	text = spaceBeforePRe.ReplaceAllString(text, "$1")
	text = sentenceCapRe.ReplaceAllString(text, "$1 $2")

	// 4. Collapse runs of whitespace.
	text = multiSpaceRe.ReplaceAllString(text, " ")

	// 4.5. Possessive/contraction run-ons: "business'slegal", "don'tget".
	text = possessiveRe.ReplaceAllString(text, "$1's $2")
	text = capitalizeAfterLabel(text)
	text = contractionTRe.ReplaceAllString(text, "$1't $2")
	text = contractionVe.ReplaceAllString(text, "$1've $2")
	text = contractionRe2.ReplaceAllString(text, "$1're $2")
	text = contractionLl.ReplaceAllString(text, "$1'll $2")
	text = contractionD.ReplaceAllString(text, "$1'd $2")

	// 4.6. Second curated table.
	for _, cr := range r.rules.additional {
		text = cr.re.ReplaceAllString(text, cr.out)
	}

	// 5. Generic merge fallbacks for whatever the tables missed.
	text = r.mergeShortPrefixes(text)
	text = r.mergeShortSuffixes(text)

	// 6. Run-on "...the" suffix fallback.
	text = wordTheRe.ReplaceAllStringFunc(text, func(w string) string {
		if r.rules.theWords[strings.ToLower(w)] {
			return w
		}
		base := w[:len(w)-3]
		if len(base) >= 2 {
			return base + " the"
		}
		return w
	})

	// 7. Final cleanup.
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = sourceHTTPRe.ReplaceAllString(text, "SOURCE: http")
	text = noteThisRe.ReplaceAllString(text, "Note: This")

	return strings.TrimSpace(text)
}

// mergeShortPrefixes joins an isolated 1-2 letter token onto a following
// 3+ letter token ("th eir" -> "their") unless the short token is a valid
// word, and never across an apostrophe (possessives stay intact).
func (r *Repairer) mergeShortPrefixes(text string) string {
	matches := mergePrefixRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '\'' {
			continue
		}
		prefix := text[m[2]:m[3]]
		if r.rules.shortWords[strings.ToLower(prefix)] {
			continue
		}
		sb.WriteString(text[last:start])
		sb.WriteString(prefix)
		sb.WriteString(text[m[4]:m[5]])
		last = end
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// singleSuffixLetters are the only single letters worth gluing back onto a
// preceding word ("wit h" -> "with"); anything else is more likely a label
// or initial.
const singleSuffixLetters = "sdrntlehkpgm"

// mergeShortSuffixes joins a trailing 1-2 letter fragment onto the word
// before it, skipping valid short words and option labels A-E.
func (r *Repairer) mergeShortSuffixes(text string) string {
	matches := mergeSuffixRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		word := text[m[2]:m[3]]
		suffix := text[m[4]:m[5]]
		if r.rules.shortWords[strings.ToLower(suffix)] {
			continue
		}
		if len(suffix) == 1 {
			if suffix[0] >= 'A' && suffix[0] <= 'E' {
				continue
			}
			if !strings.Contains(singleSuffixLetters, strings.ToLower(suffix)) {
				continue
			}
		}
		sb.WriteString(text[last:m[0]])
		sb.WriteString(word)
		sb.WriteString(suffix)
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// capitalizeAfterLabel upcases the first letter after "SOURCE:", "Note:" etc.
func capitalizeAfterLabel(text string) string {
	matches := labelCapRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m[0]])
		sb.WriteString(text[m[2]:m[3]])
		sb.WriteString(": ")
		sb.WriteString(strings.ToUpper(text[m[4]:m[5]]))
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// matchCase transfers the case shape of match onto repl: all-caps stays
// all-caps, a capitalized match capitalizes the replacement.
func matchCase(match, repl string) string {
	if isAllUpper(match) {
		return strings.ToUpper(repl)
	}
	if match != "" {
		r := []rune(match)
		if unicode.IsUpper(r[0]) && repl != "" {
			out := []rune(repl)
			out[0] = unicode.ToUpper(out[0])
			return string(out)
		}
	}
	return repl
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

var (
	camelSplitRe = regexp.MustCompile(`([a-z])([A-Z])`)
	sourcWordRe  = regexp.MustCompile(`\b(SOURC)\s+(E)\b`)
	suffixJoinRe = regexp.MustCompile(`\b(\w+)\s+(ment|tion|ing|able|ible|ness)\b`)
	anySpaceRe   = regexp.MustCompile(`\s+`)
)

// NormalizeWhitespace splits fused case transitions ("wordThe"), rejoins
// common suffixes separated by a space, and collapses whitespace. Runs
// before Repair on finalized prompts and options.
func NormalizeWhitespace(text string) string {
	text = camelSplitRe.ReplaceAllString(text, "$1 $2")
	text = strings.ReplaceAll(text, "SOURC E", "SOURCE")
	text = sourcWordRe.ReplaceAllString(text, "SOURCE")
	text = suffixJoinRe.ReplaceAllString(text, "$1$2")
	return strings.TrimSpace(anySpaceRe.ReplaceAllString(text, " "))
}
