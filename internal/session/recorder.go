package session

import (
	"github.com/LuChatri/j-practice/internal/bank"
)

// OutcomeRecorder receives one record per answered or skipped
// question. Records are append-only; implementations must never
// rewrite or drop earlier records. Close releases whatever resource
// backs the recorder and must be safe to call after a partial session.
type OutcomeRecorder interface {
	Record(category string, q bank.Question, o Outcome) error
	Close() error
}

// MultiRecorder fans each record out to every underlying recorder.
type MultiRecorder []OutcomeRecorder

func (m MultiRecorder) Record(category string, q bank.Question, o Outcome) error {
	for _, r := range m {
		if err := r.Record(category, q, o); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every recorder, returning the first error seen.
func (m MultiRecorder) Close() error {
	var firstErr error
	for _, r := range m {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NopRecorder discards all records. Useful for dry runs and tests.
type NopRecorder struct{}

func (NopRecorder) Record(string, bank.Question, Outcome) error { return nil }
func (NopRecorder) Close() error                                { return nil }
