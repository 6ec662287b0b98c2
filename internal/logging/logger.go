package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a structured console logger. The TUI owns the terminal
// while running, so callers log to stderr before the program starts
// (load warnings) or after it exits.
func New(env string) zerolog.Logger {
	return NewWithOutput(os.Stderr, env)
}

// NewWithOutput builds a logger writing to out.
func NewWithOutput(out io.Writer, env string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    env == "production",
	}
	return zerolog.New(output).With().
		Timestamp().
		Str("app", "j-practice").
		Str("env", env).
		Logger()
}
