// Package config resolves runtime settings from the environment. The
// TUI and commands consume already-resolved values; flag overrides are
// applied by the cmd layer.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// App holds runtime configuration for a practice run.
type App struct {
	// QuestionPaths are the question source files, loaded in order.
	QuestionPaths []string `env:"JP_QUESTIONS" envSeparator:"," envDefault:"questions.csv"`

	// Strict aborts loading on the first malformed row instead of
	// skipping it with a warning.
	Strict bool `env:"JP_STRICT" envDefault:"false"`

	// LogPath is the append-only outcome log.
	LogPath string `env:"JP_LOG" envDefault:"log.csv"`

	// DBPath overrides the default history database location.
	DBPath string `env:"JP_DB"`

	// WeightedCategories draws refill categories proportionally to
	// their question count instead of uniformly.
	WeightedCategories bool `env:"JP_WEIGHTED_CATEGORIES" envDefault:"false"`

	// Env names the runtime environment, used only for log fields.
	Env string `env:"JP_ENV" envDefault:"development"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
