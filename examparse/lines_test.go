package examparse

import (
	"strings"
	"testing"
)

func TestLooksLikeHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"MARKETING CLUSTER EXAM", true},
		{"Career Cluster Exam 2023", true},
		{"Page 4", true},
		{"3 of 12", true},
		{"Copyright 2023 by MBA Research", true},
		{"HTDM - Hospitality", true},
		{"THE BIG THREE RULES", true},
		{"WHICH OF THE FOLLOWING APPLIES", false},
		{"What is the primary purpose of a budget?", false},
		{"A. An ordinary option line", false},
		// Option lines are exempt even when fully capitalized.
		{"C. FIXED ANNUAL OPERATING COSTS", false},
	}
	for _, tt := range tests {
		if got := looksLikeHeaderLine(tt.line); got != tt.want {
			t.Errorf("looksLikeHeaderLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSplitPacked(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{
			"increased sales.  23. Which of the following",
			[]string{"increased sales.", "23. Which of the following"},
		},
		{
			"some answer text  B. another option  C: third one",
			[]string{"some answer text", "B. another option", "C: third one"},
		},
		{
			"no markers on this line at all",
			[]string{"no markers on this line at all"},
		},
		{
			// Single spaces never split.
			"revenue grew by 23. 5 percent",
			[]string{"revenue grew by 23. 5 percent"},
		},
	}
	for _, tt := range tests {
		got := splitPacked(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("splitPacked(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if strings.TrimSpace(got[i]) != strings.TrimSpace(tt.want[i]) {
				t.Errorf("splitPacked(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}

func TestExtractCleanLinesDropsRepeatedLines(t *testing.T) {
	// A line repeating on most pages is a running footer, even when no
	// structural pattern matches it.
	pages := make([]string, 5)
	for i := range pages {
		pages[i] = "Totally Plain Footer Text\n" +
			string(rune('1'+i)) + ". A question unique to this page\n" +
			"A. first\nB. second\n"
	}
	// Option lines repeat too but question lines do not; only lines crossing
	// the page-fraction threshold vanish.
	lines := extractCleanLines(pages)
	questions := 0
	for _, l := range lines {
		if l == "Totally Plain Footer Text" {
			t.Fatalf("repeated footer survived: %v", lines)
		}
		if strings.Contains(l, "question unique") {
			questions++
		}
	}
	if questions != 5 {
		t.Fatalf("got %d question lines, want 5: %v", questions, lines)
	}
}

func TestExtractCleanLinesKeepsUniqueContent(t *testing.T) {
	pages := []string{
		"1. What is marketing?\nA. selling\nB. advertising\n",
		"2. What is finance?\nA. money\nB. budgets\n",
	}
	lines := extractCleanLines(pages)
	want := []string{
		"1. What is marketing?", "A. selling", "B. advertising",
		"2. What is finance?", "A. money", "B. budgets",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExtractCleanLinesDropsHeaders(t *testing.T) {
	pages := []string{
		"MARKETING CLUSTER EXAM\n1. What is a brand?\nA. a mark\nB. a logo\nPage 1\n",
	}
	lines := extractCleanLines(pages)
	for _, l := range lines {
		if strings.Contains(l, "CLUSTER") || strings.HasPrefix(l, "Page") {
			t.Fatalf("header survived: %v", lines)
		}
	}
	if lines[0] != "1. What is a brand?" {
		t.Fatalf("first line = %q", lines[0])
	}
}

func TestExtractCleanLinesSalvagesKeyEntryFromCopyright(t *testing.T) {
	pages := []string{
		"1. A question\nA. one\nB. two\nPublished by the Research Center, Columbus, Ohio 1. A\n",
	}
	lines := extractCleanLines(pages)
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "1. A") && !strings.Contains(l, "question") {
			found = true
		}
		if strings.Contains(l, "Columbus") {
			t.Fatalf("copyright text survived: %q", l)
		}
	}
	if !found {
		t.Fatalf("salvaged key entry missing: %v", lines)
	}
}

func TestExtractCleanLinesTruncatesEmbeddedFooter(t *testing.T) {
	pages := []string{
		"1. What drives demand?\nA. pricing decisions HTDM - Hospitality and\nB. supply\n",
	}
	lines := extractCleanLines(pages)
	for _, l := range lines {
		if strings.Contains(l, "HTDM") || strings.Contains(l, "Hospitality") {
			t.Fatalf("embedded footer survived: %q", l)
		}
	}
	joined := strings.Join(lines, "|")
	if !strings.Contains(joined, "A. pricing decisions") {
		t.Fatalf("option text lost: %v", lines)
	}
}
