package session

import (
	"errors"
	"sort"
	"time"

	"github.com/LuChatri/j-practice/internal/bank"
)

// ErrNoActiveQuestion is returned when an outcome is recorded before
// any question has been drawn. That is a programming error in the
// caller and is never silently ignored.
var ErrNoActiveQuestion = errors.New("no active question")

// Controller runs one practice session over a read-only bank. It owns
// the FIFO question queue, the active question, and exclusive access
// to the outcome recorder for the session's lifetime. Not safe for
// concurrent use; a multi-session variant must create one Controller
// per session.
type Controller struct {
	bank     *bank.Bank
	recorder OutcomeRecorder
	weighted bool

	queue    []bank.Question
	active   *bank.Question
	category string

	id      string
	started time.Time
	results map[string]*CategoryResult
	counts  map[Outcome]int
}

// CategoryResult accumulates per-category outcome counts for the
// session summary.
type CategoryResult struct {
	Category  string
	Attempted int
	Correct   int
	Skipped   int
}

// New creates a controller over b identified by id. Outcomes are
// appended through recorder (nil means discard); weighted selects how
// refill categories are drawn, see bank.RandomCategory.
func New(b *bank.Bank, recorder OutcomeRecorder, weighted bool, id string) *Controller {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Controller{
		bank:     b,
		recorder: recorder,
		weighted: weighted,
		id:       id,
		started:  time.Now(),
		results:  make(map[string]*CategoryResult),
		counts:   make(map[Outcome]int),
	}
}

// ID returns the session identifier given at construction.
func (c *Controller) ID() string { return c.id }

// Category returns the category the current queue was drawn from, or
// "" before the first draw.
func (c *Controller) Category() string { return c.category }

// Active returns the question currently presented, or nil before the
// first draw.
func (c *Controller) Active() *bank.Question { return c.active }

// Remaining returns the number of queued questions left in the current
// category before the next refill.
func (c *Controller) Remaining() int { return len(c.queue) }

// NextQuestion advances to the next question. When the queue is empty
// a fresh category is drawn and the queue is refilled with every
// question in it, lowest value first, so a topic's difficulty ramps up
// before the session moves on. Returns bank.ErrEmptyBank if the bank
// has no questions when a refill is attempted.
func (c *Controller) NextQuestion() (bank.Question, error) {
	if len(c.queue) == 0 {
		category, err := c.bank.RandomCategory(c.weighted)
		if err != nil {
			return bank.Question{}, err
		}
		c.category = category
		c.queue = sortByValue(c.bank.Questions(category))
	}

	q := c.queue[0]
	c.queue = c.queue[1:]
	c.active = &q
	return q, nil
}

// RecordOutcome appends exactly one record for the active question.
// It must only be called after a successful NextQuestion.
func (c *Controller) RecordOutcome(o Outcome) error {
	if c.active == nil {
		return ErrNoActiveQuestion
	}
	if err := c.recorder.Record(c.category, *c.active, o); err != nil {
		return err
	}

	cr := c.results[c.category]
	if cr == nil {
		cr = &CategoryResult{Category: c.category}
		c.results[c.category] = cr
	}
	cr.Attempted++
	switch o {
	case OutcomeCorrect:
		cr.Correct++
	case OutcomeSkipped:
		cr.Skipped++
	}
	c.counts[o]++
	return nil
}

// Close ends the session, clearing the active question and releasing
// the recorder. Safe to call regardless of how the session terminated.
func (c *Controller) Close() error {
	c.active = nil
	c.queue = nil
	return c.recorder.Close()
}

// sortByValue orders questions ascending by value. The sort is stable:
// equal values keep their load order.
func sortByValue(qs []bank.Question) []bank.Question {
	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].Value < qs[j].Value
	})
	return qs
}
