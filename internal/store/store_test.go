package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.OutcomeRepo()
	ctx := context.Background()

	empty, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Attempted)
	assert.Zero(t, empty.Sessions)

	records := []OutcomeRecord{
		{SessionID: "s1", Category: "History", QuestionID: "q1", Prompt: "P", Answer: "A", Value: 100, Outcome: "Correct"},
		{SessionID: "s1", Category: "History", QuestionID: "q2", Prompt: "P", Answer: "A", Value: 200, Outcome: "Incorrect"},
		{SessionID: "s2", Category: "Science", QuestionID: "q3", Prompt: "P", Answer: "A", Value: 50, Outcome: "Not Answered"},
	}
	for _, rec := range records {
		require.NoError(t, repo.Append(ctx, rec))
	}

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Sessions)
	assert.Equal(t, 3, totals.Attempted)
	assert.Equal(t, 1, totals.Correct)
	assert.Equal(t, 1, totals.Incorrect)
	assert.Equal(t, 1, totals.Skipped)
}

func TestCategoryStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.OutcomeRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, OutcomeRecord{
			SessionID: "s1", Category: "History", QuestionID: "q",
			Prompt: "P", Answer: "A", Value: 100, Outcome: "Correct",
		}))
	}
	require.NoError(t, repo.Append(ctx, OutcomeRecord{
		SessionID: "s1", Category: "Science", QuestionID: "q",
		Prompt: "P", Answer: "A", Value: 100, Outcome: "Not Answered",
	}))

	stats, err := repo.CategoryStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Most attempted first.
	assert.Equal(t, "History", stats[0].Category)
	assert.Equal(t, 3, stats[0].Attempted)
	assert.Equal(t, 3, stats[0].Correct)
	assert.Equal(t, "Science", stats[1].Category)
	assert.Equal(t, 1, stats[1].Skipped)
}

func TestSessionRecorder(t *testing.T) {
	s := openTestStore(t)
	repo := s.OutcomeRepo()

	rec := NewSessionRecorder(repo, "session-1")
	q := bank.Question{ID: "q1", Category: "History", Prompt: "P", Answer: "A", Value: 100, Tags: []string{"t1"}}
	require.NoError(t, rec.Record("History", q, session.OutcomeCorrect))
	require.NoError(t, rec.Close())

	totals, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Attempted)
	assert.Equal(t, 1, totals.Correct)
	assert.Equal(t, 1, totals.Sessions)
}
