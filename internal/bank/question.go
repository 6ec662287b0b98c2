package bank

// Question is a single trivia question as loaded from a source file.
// Questions are immutable once constructed; the bank hands out copies.
type Question struct {
	// ID is unique within a load batch but not globally enforced.
	ID string

	// Category is the grouping key used for queue refills.
	Category string

	// Prompt is the question text shown before the answer is revealed.
	Prompt string

	// Answer is revealed on buzz-in or skip.
	Answer string

	// Value is the question's point value. Sign and magnitude are
	// meaningful to the caller only; the core sorts by it.
	Value float64

	// Tags are the trailing columns of the source row, order preserved,
	// not deduplicated. May be empty.
	Tags []string
}
