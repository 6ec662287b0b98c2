package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"JP_QUESTIONS", "JP_STRICT", "JP_LOG", "JP_DB", "JP_WEIGHTED_CATEGORIES"} {
		t.Setenv(key, "") // register restore
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.QuestionPaths) != 1 || cfg.QuestionPaths[0] != "questions.csv" {
		t.Errorf("question paths = %v, want [questions.csv]", cfg.QuestionPaths)
	}
	if cfg.Strict {
		t.Error("strict = true, want false by default")
	}
}

func TestLoad_CommaSeparatedPaths(t *testing.T) {
	t.Setenv("JP_QUESTIONS", "a.csv,b.csv,c.csv")
	t.Setenv("JP_STRICT", "true")
	t.Setenv("JP_WEIGHTED_CATEGORIES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"a.csv", "b.csv", "c.csv"}
	if len(cfg.QuestionPaths) != len(want) {
		t.Fatalf("question paths = %v, want %v", cfg.QuestionPaths, want)
	}
	for i := range want {
		if cfg.QuestionPaths[i] != want[i] {
			t.Errorf("path %d = %q, want %q", i, cfg.QuestionPaths[i], want[i])
		}
	}
	if !cfg.Strict {
		t.Error("strict = false, want true")
	}
	if !cfg.WeightedCategories {
		t.Error("weighted categories = false, want true")
	}
}
