package examparse

// Sentinel values inserted when source data could not be recovered.
// They are part of the output contract: consumers display them as-is.
const (
	MissingOption      = "[Option missing from PDF]"
	MissingPrompt      = "[Prompt text missing/merged]"
	MissingExplanation = "No explanation available"
	UnknownLetter      = "?"
)

// Question number bounds accepted from a source document. Anything outside
// is treated as a parsing artifact and dropped.
const (
	minQuestionNumber = 1
	maxQuestionNumber = 100
)

// Option is one labeled choice inside a question block, before merging.
type Option struct {
	Label byte   // 'A'..'E'
	Text  string
}

// QuestionBlock is the mutable accumulator produced by the question scanner.
// It never survives past Merge.
type QuestionBlock struct {
	Number  int
	Prompt  string
	Options []Option
}

// AnswerEntry maps a question number to its correct letter and explanation.
type AnswerEntry struct {
	Letter      string `json:"letter"`
	Explanation string `json:"explanation"`
}

// Question is a fully reconstructed multiple-choice question.
// Options always has at least four entries; missing ones carry the
// MissingOption sentinel. CorrectIndex is -1 when the answer key had no
// entry for this number.
type Question struct {
	ID            string   `json:"id"`
	Number        int      `json:"number"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	CorrectLetter string   `json:"correct_letter"`
	Explanation   string   `json:"explanation"`
}

// Test is the result of parsing one source document. Read-only after Parse.
type Test struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}
