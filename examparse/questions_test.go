package examparse

import (
	"fmt"
	"testing"
)

func TestScanQuestionsCanonical(t *testing.T) {
	lines := []string{
		"1. Why is the sky blue?",
		"A. Rayleigh scattering",
		"B. Mie scattering",
		"C. Refraction",
		"D. Dispersion",
		"2. What color is grass?",
		"A. Red",
		"B. Green",
		"C. Blue",
		"D. Yellow",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	b := blocks[0]
	if b.Number != 1 || b.Prompt != "Why is the sky blue?" {
		t.Fatalf("block 0 = %+v", b)
	}
	if len(b.Options) != 4 {
		t.Fatalf("block 0 options = %d, want 4", len(b.Options))
	}
	if b.Options[0].Label != 'A' || b.Options[0].Text != "Rayleigh scattering" {
		t.Fatalf("option A = %+v", b.Options[0])
	}
	if blocks[1].Number != 2 || blocks[1].Options[3].Text != "Yellow" {
		t.Fatalf("block 1 = %+v", blocks[1])
	}
}

func TestScanQuestionsPromptContinuation(t *testing.T) {
	lines := []string{
		"1. A very long prompt that was split",
		"across two physical lines?",
		"A. one",
		"B. two",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	want := "A very long prompt that was split across two physical lines?"
	if blocks[0].Prompt != want {
		t.Fatalf("prompt = %q, want %q", blocks[0].Prompt, want)
	}
}

func TestScanQuestionsOptionContinuation(t *testing.T) {
	lines := []string{
		"1. Pick the best description",
		"A. a short option",
		"B. an option whose text runs",
		"onto the following line",
		"C. third",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 || len(blocks[0].Options) != 3 {
		t.Fatalf("blocks = %+v", blocks)
	}
	want := "an option whose text runs onto the following line"
	if blocks[0].Options[1].Text != want {
		t.Fatalf("option B = %q, want %q", blocks[0].Options[1].Text, want)
	}
}

func TestScanQuestionsDuplicateAStartsNewBlock(t *testing.T) {
	lines := []string{
		"3. A real prompt",
		"A. one",
		"B. two",
		"A. first option of a question whose start line vanished",
		"B. second",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(blocks), blocks)
	}
	if blocks[0].Number != 3 || len(blocks[0].Options) != 2 {
		t.Fatalf("block 0 = %+v", blocks[0])
	}
	if blocks[1].Number != 4 || blocks[1].Prompt != MissingPrompt {
		t.Fatalf("block 1 = %+v, want number 4 with missing prompt", blocks[1])
	}
	if len(blocks[1].Options) != 2 {
		t.Fatalf("block 1 options = %+v", blocks[1].Options)
	}
}

func TestScanQuestionsOrphanAOpensFirstBlock(t *testing.T) {
	lines := []string{
		"A. an option with no question line above it",
		"B. second",
		"C. third",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Number != 1 || blocks[0].Prompt != MissingPrompt {
		t.Fatalf("block = %+v", blocks[0])
	}
}

func TestScanQuestionsOrphanNonADropped(t *testing.T) {
	lines := []string{
		"C. stray option with no context at all",
		"1. The actual first question",
		"A. one",
		"B. two",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1: %+v", len(blocks), blocks)
	}
	if blocks[0].Number != 1 || len(blocks[0].Options) != 2 {
		t.Fatalf("block = %+v", blocks[0])
	}
}

func TestScannerReopensLastBlock(t *testing.T) {
	s := &questionScanner{rep: NewRepairer(nil)}
	s.startQuestion(7, "prompt")
	s.addOption('A', "one")
	s.addOption('B', "two")
	s.finalize()

	// An orphan option extending the closed block's run pulls it back open.
	s.addOption('C', "three")
	s.finalize()

	if len(s.blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(s.blocks))
	}
	if len(s.blocks[0].Options) != 3 || s.blocks[0].Options[2].Label != 'C' {
		t.Fatalf("options = %+v", s.blocks[0].Options)
	}

	// A label at or below the last one carries no signal and is dropped.
	s.addOption('B', "stray")
	s.finalize()
	if len(s.blocks) != 1 || len(s.blocks[0].Options) != 3 {
		t.Fatalf("stray option accepted: %+v", s.blocks)
	}
}

func TestScanQuestionsInlineOptions(t *testing.T) {
	lines := []string{
		"1. Pick a color",
		"A. Red  B. Green  C. Blue  D. White",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	opts := blocks[0].Options
	if len(opts) != 4 {
		t.Fatalf("got %d options, want 4: %+v", len(opts), opts)
	}
	want := []struct {
		label byte
		text  string
	}{{'A', "Red"}, {'B', "Green"}, {'C', "Blue"}, {'D', "White"}}
	for i, w := range want {
		if opts[i].Label != w.label || opts[i].Text != w.text {
			t.Errorf("option %d = %+v, want %c %q", i, opts[i], w.label, w.text)
		}
	}
}

func TestScanQuestionsBareLabelBorrowsNextLine(t *testing.T) {
	lines := []string{
		"1. A question",
		"A.",
		"the option body on its own line",
		"B. second",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 || len(blocks[0].Options) != 2 {
		t.Fatalf("blocks = %+v", blocks)
	}
	if blocks[0].Options[0].Text != "the option body on its own line" {
		t.Fatalf("option A = %q", blocks[0].Options[0].Text)
	}
}

func TestScanQuestionsStopsAtAnswerKeyHeader(t *testing.T) {
	lines := []string{
		"1. A question",
		"A. one",
		"B. two",
		"Answer Key",
		"1. A",
		"2. B",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (scan must stop at the key)", len(blocks))
	}
}

func TestScanQuestionsImplicitKeyRunStop(t *testing.T) {
	var lines []string
	for i := 1; i <= 51; i++ {
		lines = append(lines, fmt.Sprintf("%d. Question number %d", i, i))
		lines = append(lines, "A. yes", "B. no", "C. maybe", "D. never")
	}
	// No header: a run of bare entries past question 50 is the key.
	lines = append(lines, "1. A", "2. B", "3. C", "4. D")

	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 51 {
		t.Fatalf("got %d blocks, want 51", len(blocks))
	}
	for _, b := range blocks {
		if len(b.Options) != 4 {
			t.Fatalf("block %d has %d options", b.Number, len(b.Options))
		}
	}
}

func TestScanQuestionsSkipsStrayKeyEntry(t *testing.T) {
	// A lone "12. C" early in the document is neither a question start nor
	// an answer-key run.
	lines := []string{
		"1. First question",
		"A. one",
		"B. two",
		"12. C",
		"2. Second question",
		"A. uno",
		"B. dos",
	}
	blocks := scanQuestions(lines, NewRepairer(nil))
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(blocks), blocks)
	}
	if blocks[0].Number != 1 || blocks[1].Number != 2 {
		t.Fatalf("numbers = %d, %d", blocks[0].Number, blocks[1].Number)
	}
}
