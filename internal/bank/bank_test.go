package bank

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func testBank(t *testing.T, csv string) *Bank {
	t.Helper()
	b := NewWithRand(rand.New(rand.NewSource(1)))
	if err := b.Load(strings.NewReader(csv), nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestLoad_FieldMapping(t *testing.T) {
	b := testBank(t, "q1,History,Who?,Napoleon,100,europe,war\nq2,Science,What?,Helium,200\n")

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}

	got := b.All()[0]
	want := Question{
		ID:       "q1",
		Category: "History",
		Prompt:   "Who?",
		Answer:   "Napoleon",
		Value:    100,
		Tags:     []string{"europe", "war"},
	}
	if got.ID != want.ID || got.Category != want.Category || got.Prompt != want.Prompt ||
		got.Answer != want.Answer || got.Value != want.Value {
		t.Errorf("question = %+v, want %+v", got, want)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "europe" || got.Tags[1] != "war" {
		t.Errorf("tags = %v, want %v", got.Tags, want.Tags)
	}

	if tags := b.All()[1].Tags; len(tags) != 0 {
		t.Errorf("tags without tag columns = %v, want empty", tags)
	}
}

func TestLoad_MalformedRows(t *testing.T) {
	tests := []struct {
		name   string
		csv    string
		reason error
	}{
		{"short row", "a,b,c,d\n", ErrShortRow},
		{"bad value", "a,b,c,d,notanumber\n", ErrBadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Without a callback the load must fail loudly.
			b := NewWithRand(rand.New(rand.NewSource(1)))
			err := b.Load(strings.NewReader(tt.csv), nil)
			var malformed *MalformedRowError
			if !errors.As(err, &malformed) {
				t.Fatalf("err = %v, want *MalformedRowError", err)
			}
			if !errors.Is(err, tt.reason) {
				t.Errorf("reason = %v, want %v", malformed.Reason, tt.reason)
			}
			if malformed.Line != 1 {
				t.Errorf("line = %d, want 1", malformed.Line)
			}
			if b.Len() != 0 {
				t.Errorf("bank holds %d questions after failed load, want 0", b.Len())
			}

			// With a callback the row is reported exactly once and
			// loading continues.
			b = NewWithRand(rand.New(rand.NewSource(1)))
			var reported [][]string
			err = b.Load(strings.NewReader(tt.csv+"ok,Cat,P,A,50\n"), func(row []string, reason error) {
				if !errors.Is(reason, tt.reason) {
					t.Errorf("callback reason = %v, want %v", reason, tt.reason)
				}
				reported = append(reported, row)
			})
			if err != nil {
				t.Fatalf("load with callback: %v", err)
			}
			if len(reported) != 1 {
				t.Fatalf("callback invoked %d times, want 1", len(reported))
			}
			if b.Len() != 1 {
				t.Errorf("bank holds %d questions, want 1", b.Len())
			}
		})
	}
}

func TestLoad_ValidRowNeverReported(t *testing.T) {
	b := NewWithRand(rand.New(rand.NewSource(1)))
	err := b.Load(strings.NewReader("a,b,c,d,10\n"), func(row []string, reason error) {
		t.Errorf("callback invoked for valid row %v", row)
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestRandomQuestion_EmptyBank(t *testing.T) {
	b := New()
	if _, err := b.RandomQuestion(); !errors.Is(err, ErrEmptyBank) {
		t.Errorf("err = %v, want ErrEmptyBank", err)
	}
}

func TestRandomQuestion_Membership(t *testing.T) {
	b := testBank(t, "q1,History,P1,A1,100\nq2,Science,P2,A2,50\n")
	for i := 0; i < 20; i++ {
		q, err := b.RandomQuestion()
		if err != nil {
			t.Fatalf("random question: %v", err)
		}
		if q.ID != "q1" && q.ID != "q2" {
			t.Fatalf("drew unknown question %q", q.ID)
		}
	}
}

func TestRandomCategory_EmptyBank(t *testing.T) {
	b := New()
	for _, weighted := range []bool{false, true} {
		if _, err := b.RandomCategory(weighted); !errors.Is(err, ErrEmptyBank) {
			t.Errorf("weighted=%v: err = %v, want ErrEmptyBank", weighted, err)
		}
	}
}

func TestRandomCategory_Membership(t *testing.T) {
	b := testBank(t, "q1,History,P1,A1,100\nq2,History,P2,A2,200\nq3,Science,P3,A3,50\n")
	for _, weighted := range []bool{false, true} {
		for i := 0; i < 20; i++ {
			cat, err := b.RandomCategory(weighted)
			if err != nil {
				t.Fatalf("random category: %v", err)
			}
			if cat != "History" && cat != "Science" {
				t.Fatalf("drew unknown category %q", cat)
			}
		}
	}
}

func TestRandomCategory_UnweightedIgnoresSize(t *testing.T) {
	// One category dominates the bank. Over enough uniform draws the
	// minority category must still show up.
	var rows strings.Builder
	for i := 0; i < 50; i++ {
		rows.WriteString("q,Big,P,A,100\n")
	}
	rows.WriteString("s,Small,P,A,100\n")
	b := testBank(t, rows.String())

	seenSmall := false
	for i := 0; i < 200; i++ {
		cat, err := b.RandomCategory(false)
		if err != nil {
			t.Fatalf("random category: %v", err)
		}
		if cat == "Small" {
			seenSmall = true
			break
		}
	}
	if !seenSmall {
		t.Error("uniform draw never produced the minority category in 200 tries")
	}
}

func TestCategories_Order(t *testing.T) {
	b := testBank(t, "q1,B,P,A,1\nq2,A,P,A,1\nq3,B,P,A,1\n")
	got := b.Categories()
	if len(got) != 2 || got[0] != "B" || got[1] != "A" {
		t.Errorf("categories = %v, want [B A]", got)
	}
}

func TestQuestions_LoadOrder(t *testing.T) {
	b := testBank(t, "q1,Cat,P,A,200\nq2,Other,P,A,1\nq3,Cat,P,A,100\n")
	got := b.Questions("Cat")
	if len(got) != 2 || got[0].ID != "q1" || got[1].ID != "q3" {
		t.Errorf("questions = %v, want load order [q1 q3]", got)
	}
}
