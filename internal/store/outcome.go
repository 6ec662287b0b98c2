package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// OutcomeRecord is one persisted outcome row.
type OutcomeRecord struct {
	SessionID  string
	RecordedAt time.Time
	Category   string
	QuestionID string
	Prompt     string
	Answer     string
	Value      float64
	Tags       []string
	Outcome    string
}

// CategoryStat aggregates outcomes for one category.
type CategoryStat struct {
	Category  string
	Attempted int
	Correct   int
	Skipped   int
}

// Totals aggregates outcomes across all sessions.
type Totals struct {
	Sessions  int
	Attempted int
	Correct   int
	Incorrect int
	Skipped   int
}

// OutcomeRepo provides append and query access to outcome history.
type OutcomeRepo interface {
	// Append records one outcome. Rows are never updated or deleted.
	Append(ctx context.Context, rec OutcomeRecord) error

	// Totals returns lifetime counts across all sessions.
	Totals(ctx context.Context) (Totals, error)

	// CategoryStats returns per-category aggregates, most attempted
	// first.
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
}

type outcomeRepo struct {
	db *sql.DB
}

// tagSeparator joins tags into a single column. Unit separator keeps
// commas inside tags intact.
const tagSeparator = "\x1f"

func (r *outcomeRepo) Append(ctx context.Context, rec OutcomeRecord) error {
	recordedAt := rec.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO outcomes
		(session_id, recorded_at, category, question_id, prompt, answer, value, tags, outcome)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, recordedAt, rec.Category, rec.QuestionID,
		rec.Prompt, rec.Answer, rec.Value,
		strings.Join(rec.Tags, tagSeparator), rec.Outcome)
	if err != nil {
		return fmt.Errorf("append outcome: %w", err)
	}
	return nil
}

func (r *outcomeRepo) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.db.QueryRowContext(ctx, `SELECT
		COUNT(DISTINCT session_id),
		COUNT(*),
		COALESCE(SUM(outcome = 'Correct'), 0),
		COALESCE(SUM(outcome = 'Incorrect'), 0),
		COALESCE(SUM(outcome = 'Not Answered'), 0)
		FROM outcomes`).Scan(&t.Sessions, &t.Attempted, &t.Correct, &t.Incorrect, &t.Skipped)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	return t, nil
}

func (r *outcomeRepo) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT
		category,
		COUNT(*),
		COALESCE(SUM(outcome = 'Correct'), 0),
		COALESCE(SUM(outcome = 'Not Answered'), 0)
		FROM outcomes
		GROUP BY category
		ORDER BY COUNT(*) DESC, category ASC`)
	if err != nil {
		return nil, fmt.Errorf("query category stats: %w", err)
	}
	defer rows.Close()

	var stats []CategoryStat
	for rows.Next() {
		var cs CategoryStat
		if err := rows.Scan(&cs.Category, &cs.Attempted, &cs.Correct, &cs.Skipped); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		stats = append(stats, cs)
	}
	return stats, rows.Err()
}
