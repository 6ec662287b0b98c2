package bank

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLoadSources_UnreadableSourceSkipped(t *testing.T) {
	good := writeSource(t, "good.csv", "q1,Cat,P,A,100\n")
	missing := filepath.Join(t.TempDir(), "missing.csv")

	b := NewWithRand(rand.New(rand.NewSource(1)))
	err := b.LoadSources([]string{missing, good}, true, zerolog.Nop())
	if err != nil {
		t.Fatalf("load sources: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1 (partial load expected)", b.Len())
	}
}

func TestLoadSources_StrictAbortsOnMalformedRow(t *testing.T) {
	bad := writeSource(t, "bad.csv", "q1,Cat,P,A,100\nbroken,row\n")

	b := NewWithRand(rand.New(rand.NewSource(1)))
	err := b.LoadSources([]string{bad}, true, zerolog.Nop())
	var malformed *MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want *MalformedRowError", err)
	}
	if malformed.Line != 2 {
		t.Errorf("line = %d, want 2", malformed.Line)
	}
}

func TestLoadSources_LenientSkipsMalformedRows(t *testing.T) {
	bad := writeSource(t, "bad.csv", "q1,Cat,P,A,100\nbroken,row\nq2,Cat,P,A,200\n")

	b := NewWithRand(rand.New(rand.NewSource(1)))
	if err := b.LoadSources([]string{bad}, false, zerolog.Nop()); err != nil {
		t.Fatalf("load sources: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}
