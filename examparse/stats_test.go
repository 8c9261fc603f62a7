package examparse

import "testing"

func TestCountSuspectPairs(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		text string
		want int
	}{
		{"clean text with nothing wrong", 0},
		// Valid short words never count.
		{"it is an option", 0},
		// Residual fragments do.
		{"th ei r broken", 1},
	}
	for _, tt := range tests {
		if got := countSuspectPairs(tt.text, rules); got != tt.want {
			t.Errorf("countSuspectPairs(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestAnalyzeSentinels(t *testing.T) {
	test := &Test{
		ID: "x",
		Questions: []Question{
			{
				Number:       1,
				Question:     MissingPrompt,
				Options:      []string{"a", MissingOption, "c", "d"},
				CorrectIndex: -1,
			},
			{
				Number:       2,
				Question:     "fine",
				Options:      []string{"a", "b", "c", "d"},
				CorrectIndex: 1,
			},
		},
	}
	s := Analyze(test)
	if s.Questions != 2 || s.Answered != 1 {
		t.Fatalf("stats = %+v", s)
	}
	if s.MissingPrompts != 1 || s.MissingOptions != 1 {
		t.Fatalf("stats = %+v", s)
	}
}
