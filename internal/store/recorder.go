package store

import (
	"context"

	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/session"
)

// SessionRecorder adapts an OutcomeRepo to session.OutcomeRecorder,
// stamping every record with the owning session's ID.
type SessionRecorder struct {
	repo      OutcomeRepo
	sessionID string
}

var _ session.OutcomeRecorder = (*SessionRecorder)(nil)

// NewSessionRecorder creates a recorder writing to repo under
// sessionID.
func NewSessionRecorder(repo OutcomeRepo, sessionID string) *SessionRecorder {
	return &SessionRecorder{repo: repo, sessionID: sessionID}
}

func (r *SessionRecorder) Record(category string, q bank.Question, o session.Outcome) error {
	return r.repo.Append(context.Background(), OutcomeRecord{
		SessionID:  r.sessionID,
		Category:   category,
		QuestionID: q.ID,
		Prompt:     q.Prompt,
		Answer:     q.Answer,
		Value:      q.Value,
		Tags:       q.Tags,
		Outcome:    o.Label(),
	})
}

// Close is a no-op; the Store owns the database connection.
func (r *SessionRecorder) Close() error {
	return nil
}
