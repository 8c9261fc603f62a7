package examparse

import (
	"regexp"
	"strings"
)

// Fraction of pages on which a repeating line marks it as a running
// header/footer rather than content.
const repeatPageFraction = 0.4

var (
	// Entry markers packed onto unrelated lines: two-plus spaces followed by
	// a question number or option letter plus separator. The extractor splits
	// ahead of the marker, keeping the marker with the new segment.
	packedMarkerRe = regexp.MustCompile(`\s{2,}((?:\d{1,3}|[A-E])\s*[.:\-])`)

	optionLeadRe = regexp.MustCompile(`^\s*[A-E]\s*[).:\-]`)
	allCapsTokRe = regexp.MustCompile(`^[A-Z0-9\-]+$`)

	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcluster\b`),
		regexp.MustCompile(`(?i)\bcareer\s+cluster\b`),
		regexp.MustCompile(`(?i)\btest\s*(number|#)\b`),
		regexp.MustCompile(`(?i)\bdeca\b`),
		regexp.MustCompile(`(?i)\bexam\b`),
		regexp.MustCompile(`(?i)^page\s+\d+`),
		regexp.MustCompile(`^\d+\s*(of|/)\s*\d+$`),
		regexp.MustCompile(`(?i)copyright\s*©`),
		regexp.MustCompile(`(?i)copyright\s*\d{4}`),
		regexp.MustCompile(`^[A-Z]{3,4}\s+-\s+[A-Z]`),
	}

	embeddedFooterRe = regexp.MustCompile(`(?:^|\s+)([A-Z]{3,5}\s*[-–—]\s*[A-Z])`)
	footerTailAndRe  = regexp.MustCompile(`\s+(and|Cluster)$`)
	footerClusterRe  = regexp.MustCompile(`\s+(Business Management|Hospitality|Finance|Marketing|Entrepreneurship|Administration)\s*$`)
	copyrightOhioRe  = regexp.MustCompile(`(?i)(Center®?,?\s*Columbus,?\s*Ohio)\s*(\d{1,3}\s*[.:,-]?\s*[A-E].*)?$`)
	copyrightLeadRe  = regexp.MustCompile(`(?i)^.*?copyright.*?ohio\s*`)

	tailStrips = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:^|\s+)Hospitality and Tourism.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Business Management.*$`),
		regexp.MustCompile(`(?:^|\s+)\d{4}-\d{4}.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Copyright\s*©.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Copyright\s*\d{4}.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)CAUTION: Posting these materials.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Test questions were developed by.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Performance indicators for these.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)are at the prerequisite.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Competitive Events.*$`),
		regexp.MustCompile(`(?i)(?:^|\s+)Test-Item Bank.*$`),
	}
)

// looksLikeHeaderLine reports whether text is running header/footer noise.
// Option lines are never headers, whatever else they resemble.
func looksLikeHeaderLine(text string) bool {
	if optionLeadRe.MatchString(text) {
		return false
	}
	for _, p := range headerPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	// Runs of 3+ all-caps tokens are title lines, except capitalized
	// question openers.
	tokens := strings.Fields(text)
	if len(tokens) >= 3 {
		caps := true
		for _, tok := range tokens {
			if !isAllUpper(tok) && !allCapsTokRe.MatchString(tok) {
				caps = false
				break
			}
		}
		if caps {
			upper := strings.ToUpper(text)
			if strings.Contains(upper, "WHICH") || strings.Contains(upper, "WHAT") {
				return false
			}
			return true
		}
	}
	return false
}

// splitPacked splits a physical line at positions where a run of whitespace
// is immediately followed by a probable new entry marker, keeping the marker
// with the following segment.
func splitPacked(line string) []string {
	matches := packedMarkerRe.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return []string{line}
	}
	var parts []string
	last := 0
	for _, m := range matches {
		parts = append(parts, line[last:m[0]])
		last = m[2]
	}
	parts = append(parts, line[last:])
	return parts
}

// extractCleanLines turns per-page raw text into an ordered, deduplicated
// sequence of non-empty logical lines with header/footer noise removed.
func extractCleanLines(pages []string) []string {
	var lines []string

	for _, pageText := range pages {
		for _, rawLine := range strings.Split(pageText, "\n") {
			for _, line := range splitPacked(rawLine) {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				line = multiSpaceRe.ReplaceAllString(line, " ")

				// Footers concatenated mid-line: truncate at the marker.
				if loc := embeddedFooterRe.FindStringSubmatchIndex(line); loc != nil {
					line = strings.TrimSpace(line[:loc[0]])
					line = strings.TrimSpace(footerTailAndRe.ReplaceAllString(line, ""))
					line = strings.TrimSpace(footerClusterRe.ReplaceAllString(line, ""))
				}

				if strings.Contains(line, "specialist levels.") {
					line = strings.TrimSpace(strings.ReplaceAll(line, "specialist levels.", ""))
				}

				// Copyright lines sometimes swallow the first answer-key
				// entry ("...Columbus, Ohio1.A"); salvage the entry.
				if loc := copyrightOhioRe.FindStringSubmatchIndex(line); loc != nil {
					if loc[4] >= 0 {
						lines = append(lines, strings.TrimSpace(line[loc[4]:loc[5]]))
					}
					line = strings.TrimSpace(line[:loc[0]])
				}

				if idx := strings.Index(line, "career -sustaining"); idx >= 0 {
					line = strings.TrimSpace(line[:idx])
				}
				if strings.HasSuffix(line, "Business Management and") {
					line = strings.TrimSpace(strings.TrimSuffix(line, "Business Management and"))
				}
				if idx := strings.Index(line, "sustaining, specialist, supervi"); idx >= 0 {
					line = strings.TrimSpace(line[:idx])
				}

				for _, re := range tailStrips {
					line = strings.TrimSpace(re.ReplaceAllString(line, ""))
				}

				if looksLikeHeaderLine(line) {
					cleaned := copyrightLeadRe.ReplaceAllString(line, "")
					if cleaned == "" || cleaned == line {
						continue
					}
					line = cleaned
					if looksLikeHeaderLine(line) {
						continue
					}
				}

				if line != "" {
					lines = append(lines, line)
				}
			}
		}
	}

	// A line repeating on a large fraction of pages is a running header or
	// footer even when the structural patterns missed it.
	counts := make(map[string]int, len(lines))
	for _, l := range lines {
		counts[l]++
	}
	threshold := int(float64(len(pages)) * repeatPageFraction)
	if threshold < 2 {
		threshold = 2
	}

	final := lines[:0:0]
	for _, l := range lines {
		if counts[l] > threshold {
			continue
		}
		if looksLikeHeaderLine(l) {
			continue
		}
		final = append(final, l)
	}
	return final
}
