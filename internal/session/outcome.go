package session

import "fmt"

// Outcome is the recorded result of presenting a question.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeSkipped
)

// Label returns the string written to the outcome log. Exactly three
// distinct labels exist, applied consistently.
func (o Outcome) Label() string {
	switch o {
	case OutcomeCorrect:
		return "Correct"
	case OutcomeIncorrect:
		return "Incorrect"
	case OutcomeSkipped:
		return "Not Answered"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
