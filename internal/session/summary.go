package session

import (
	"sort"
	"time"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration        time.Duration
	TotalAnswered   int
	Correct         int
	Incorrect       int
	Skipped         int
	Accuracy        float64
	CategoryResults []CategoryResult
}

// Summarize builds a Summary from everything recorded so far.
// Accuracy counts skips as attempts, matching how the outcome log
// reads: every presented-and-resolved question is one row.
func (c *Controller) Summarize() *Summary {
	s := &Summary{
		Duration:  time.Since(c.started),
		Correct:   c.counts[OutcomeCorrect],
		Incorrect: c.counts[OutcomeIncorrect],
		Skipped:   c.counts[OutcomeSkipped],
	}
	s.TotalAnswered = s.Correct + s.Incorrect + s.Skipped
	if s.TotalAnswered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.TotalAnswered)
	}

	for _, cr := range c.results {
		s.CategoryResults = append(s.CategoryResults, *cr)
	}
	sort.Slice(s.CategoryResults, func(i, j int) bool {
		return s.CategoryResults[i].Category < s.CategoryResults[j].Category
	})
	return s
}
