package examparse

import "testing"

func TestRepairKnownFixes(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"manage ment", "management"},
		{"a nd", "and"},
		{"busi ness", "business"},
		{"youcan", "you can"},
		{"ofthe", "of the"},
		{"under stand", "understand"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairPreservesCase(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"MANAGE MENT", "MANAGEMENT"},
		{"Manage ment", "Management"},
		{"manage ment", "management"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairGenericMerges(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"th eir products", "their products"},
		{"deal wit h", "deal with"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairWhitelistPreserved(t *testing.T) {
	rep := NewRepairer(nil)
	// Valid short words must never be glued onto neighbors.
	tests := []string{
		"we go home",
		"it is done",
		"to do lists",
		"an apple",
	}
	for _, in := range tests {
		if got := rep.Repair(in); got != in {
			t.Errorf("Repair(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestRepairApostropheGuard(t *testing.T) {
	rep := NewRepairer(nil)
	in := "the owner's invention was patented"
	if got := rep.Repair(in); got != in {
		t.Errorf("Repair(%q) = %q, want unchanged", in, got)
	}
}

func TestRepairContractions(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"don'tget upset", "don't get upset"},
		{"they'veleft already", "they've left already"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairPossessiveRunOn(t *testing.T) {
	rep := NewRepairer(nil)
	got := rep.Repair("the business'slegal obligations")
	want := "the business's legal obligations"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRepairHyphenation(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"well -known brand", "well-known brand"},
		{"well- known brand", "well-known brand"},
		{"well - known brand", "well-known brand"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairPunctuation(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"apples,oranges", "apples, oranges"},
		{"wrong .", "wrong."},
		{"The end.Next sentence", "The end. Next sentence"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairWordThe(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"extendthe deadline", "extend the deadline"},
		{"breathe deeply", "breathe deeply"},
		{"soothe the customer", "soothe the customer"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairIdempotent(t *testing.T) {
	rep := NewRepairer(nil)
	inputs := []string{
		"manage ment of the busi ness",
		"th eir customers don'tget refunds",
		"extendthe deadline a nd notify",
		"The end.Next sentence, please",
		"the owner's invention",
	}
	for _, in := range inputs {
		once := rep.Repair(in)
		twice := rep.Repair(once)
		if once != twice {
			t.Errorf("Repair not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestRepairLabelSpacing(t *testing.T) {
	rep := NewRepairer(nil)
	tests := []struct {
		in, want string
	}{
		{"SOURCE:marketing textbook", "SOURCE: Marketing textbook"},
		{"Note:this applies broadly", "Note: This applies broadly"},
	}
	for _, tt := range tests {
		if got := rep.Repair(tt.in); got != tt.want {
			t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairEmpty(t *testing.T) {
	rep := NewRepairer(nil)
	if got := rep.Repair(""); got != "" {
		t.Errorf("Repair(\"\") = %q", got)
	}
	if got := rep.Repair("   "); got != "" {
		t.Errorf("Repair(whitespace) = %q", got)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"choiceThe next part", "choice The next part"},
		{"manage ment", "management"},
		{"posi tion", "position"},
		{"SOURC E: text", "SOURCE: text"},
		{"  spaced   out  ", "spaced out"},
	}
	for _, tt := range tests {
		if got := NormalizeWhitespace(tt.in); got != tt.want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
