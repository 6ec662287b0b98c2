package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Reasons a row can be rejected during load.
var (
	ErrShortRow = errors.New("fewer than 5 columns")
	ErrBadValue = errors.New("value column is not a number")
)

// MalformedRowError reports a rejected row when loading without a
// bad-row callback.
type MalformedRowError struct {
	Line   int      // 1-based row number within the source
	Row    []string // the raw row as read
	Reason error    // ErrShortRow or ErrBadValue
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %v", e.Line, e.Reason)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Reason
}

// BadRowFunc receives each rejected row exactly once when loading in
// skip mode. The slice is the raw row; reason is ErrShortRow or
// ErrBadValue.
type BadRowFunc func(row []string, reason error)

// Load reads comma-delimited rows from r and appends one question per
// valid row. Column order is fixed: id, category, prompt, answer,
// value, then zero or more tag columns. A row with fewer than 5
// columns, or whose fifth column does not parse as a number, is
// rejected: with onBadRow set the row is reported and loading
// continues; with onBadRow nil loading stops and the error identifies
// the row.
func (b *Bank) Load(r io.Reader, onBadRow BadRowFunc) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tag columns are variable-length

	line := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		line++

		q, reason := parseRow(row)
		if reason != nil {
			if onBadRow == nil {
				return &MalformedRowError{Line: line, Row: row, Reason: reason}
			}
			onBadRow(row, reason)
			continue
		}
		b.questions = append(b.questions, q)
	}
}

// LoadFile opens path and loads it. The open error is returned as-is
// so callers can decide whether a missing source is fatal.
func (b *Bank) LoadFile(path string, onBadRow BadRowFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.Load(f, onBadRow)
}

// LoadSources loads every readable path. Unreadable sources are
// skipped with a warning and loading continues; partial loads are
// expected. With strict=true the first malformed row in any source
// aborts the whole load; otherwise malformed rows are skipped with a
// warning.
func (b *Bank) LoadSources(paths []string, strict bool, log zerolog.Logger) error {
	for _, path := range paths {
		var onBadRow BadRowFunc
		if !strict {
			onBadRow = func(row []string, reason error) {
				log.Warn().
					Str("source", path).
					Strs("row", row).
					Err(reason).
					Msg("skipping malformed row")
			}
		}

		err := b.LoadFile(path, onBadRow)
		if err == nil {
			continue
		}

		var malformed *MalformedRowError
		if errors.As(err, &malformed) {
			return fmt.Errorf("load %s: %w", path, err)
		}

		// Unreadable source: report and move on.
		log.Warn().Str("source", path).Err(err).Msg("skipping unreadable source")
	}
	return nil
}

func parseRow(row []string) (Question, error) {
	if len(row) < 5 {
		return Question{}, ErrShortRow
	}
	value, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return Question{}, ErrBadValue
	}

	var tags []string
	if len(row) > 5 {
		tags = append(tags, row[5:]...)
	}

	return Question{
		ID:       row[0],
		Category: row[1],
		Prompt:   row[2],
		Answer:   row[3],
		Value:    value,
		Tags:     tags,
	}, nil
}
