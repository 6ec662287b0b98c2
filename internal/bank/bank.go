package bank

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyBank is returned by selection operations when no questions
// have been loaded.
var ErrEmptyBank = errors.New("question bank is empty")

// Bank holds every loaded question in load order. It is populated at
// startup and read-only for the rest of the session, so it is safe to
// share across controllers as long as nobody calls Load concurrently.
type Bank struct {
	questions []Question
	rng       *rand.Rand
}

// New creates an empty bank with a time-seeded random source.
func New() *Bank {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an empty bank using rng for all random draws.
func NewWithRand(rng *rand.Rand) *Bank {
	return &Bank{rng: rng}
}

// Len returns the number of loaded questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns a copy of every loaded question in load order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Questions returns every question in category, in load order.
func (b *Bank) Questions(category string) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool, len(b.questions))
	var out []string
	for _, q := range b.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

// RandomQuestion draws one question uniformly at random from all
// loaded questions.
func (b *Bank) RandomQuestion() (Question, error) {
	if len(b.questions) == 0 {
		return Question{}, ErrEmptyBank
	}
	return b.questions[b.rng.Intn(len(b.questions))], nil
}

// RandomCategory draws one category. With weighted=false every distinct
// category is equally likely; with weighted=true a category's chance is
// proportional to how many questions it has.
func (b *Bank) RandomCategory(weighted bool) (string, error) {
	if len(b.questions) == 0 {
		return "", ErrEmptyBank
	}
	if weighted {
		return b.questions[b.rng.Intn(len(b.questions))].Category, nil
	}
	cats := b.Categories()
	return cats[b.rng.Intn(len(cats))], nil
}
