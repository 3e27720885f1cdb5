package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pyquiz/internal/screen"
)

// stubScreen is a minimal Screen for router tests.
type stubScreen struct {
	title  string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestRouter_PushPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}
	if r.Active() != home {
		t.Fatal("expected home active")
	}

	setup := &stubScreen{title: "setup"}
	r.Update(PushScreenMsg{Screen: setup})
	if r.Depth() != 2 || r.Active() != setup {
		t.Fatalf("expected setup active at depth 2, got depth %d", r.Depth())
	}
	if !setup.inited {
		t.Fatal("expected Init on pushed screen")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Fatal("expected home active after pop")
	}
}

func TestRouter_PopNeverEmpties(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("expected pop on root to be a no-op, depth %d", r.Depth())
	}
}

func TestRouter_Replace(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})

	summary := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 || r.Active() != summary {
		t.Fatalf("expected summary active at depth 2, got depth %d", r.Depth())
	}
	if !summary.inited {
		t.Fatal("expected Init on replacement screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Fatal("expected home after popping the replacement")
	}
}
