// Package outcomelog appends session outcomes to a delimited text
// file, one row per answered or skipped question. The file is opened
// for append only; earlier rows are never touched.
package outcomelog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/session"
)

// Writer implements session.OutcomeRecorder over an append-only CSV
// file. Each row is [category, id, prompt, answer, value, tag...,
// outcome].
type Writer struct {
	f *os.File
	w *csv.Writer
}

var _ session.OutcomeRecorder = (*Writer)(nil)

// Open opens (creating if needed) the log file at path for appending.
func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open outcome log: %w", err)
	}
	return &Writer{f: f, w: csv.NewWriter(f)}, nil
}

// Record appends one row and flushes it to the file, so a crash
// mid-session loses at most the row being written.
func (w *Writer) Record(category string, q bank.Question, o session.Outcome) error {
	row := make([]string, 0, 6+len(q.Tags))
	row = append(row, category, q.ID, q.Prompt, q.Answer,
		strconv.FormatFloat(q.Value, 'f', -1, 64))
	row = append(row, q.Tags...)
	row = append(row, o.Label())

	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("append outcome: %w", err)
	}
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("flush outcome: %w", err)
	}
	return nil
}

// Close flushes any buffered rows and releases the file handle.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return fmt.Errorf("flush outcome log: %w", err)
	}
	return w.f.Close()
}
