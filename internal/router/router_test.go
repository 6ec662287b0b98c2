package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/LuChatri/j-practice/internal/screen"
)

// stubScreen is a minimal screen for router tests.
type stubScreen struct {
	name    string
	inited  bool
	updated int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updated++
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	r := New(first)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	r.Update(PushScreenMsg{Screen: second})
	if r.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", r.Depth())
	}
	if !second.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active() != second {
		t.Errorf("active = %v, want second", r.Active())
	}

	r.Update(PopScreenMsg{})
	if r.Active() != first {
		t.Errorf("active after pop = %v, want first", r.Active())
	}
}

func TestPop_KeepsLastScreen(t *testing.T) {
	first := &stubScreen{name: "first"}
	r := New(first)

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (last screen never pops)", r.Depth())
	}
}

func TestUpdate_ForwardsToActive(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	r := New(first)
	r.Push(second)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if second.updated != 1 {
		t.Errorf("active screen updates = %d, want 1", second.updated)
	}
	if first.updated != 0 {
		t.Errorf("inactive screen updates = %d, want 0", first.updated)
	}
}

func TestView_RendersActive(t *testing.T) {
	r := New(&stubScreen{name: "first"})
	if got := r.View(80, 24); got != "first" {
		t.Errorf("view = %q, want %q", got, "first")
	}
}
