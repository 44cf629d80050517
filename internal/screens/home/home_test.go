package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/musclequiz/internal/facts"
	"github.com/abhisek/musclequiz/internal/router"
	"github.com/abhisek/musclequiz/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newHome() (*HomeScreen, *int) {
	calls := 0
	h := New(facts.Default(), 10, func() screen.Screen {
		calls++
		return &stubScreen{title: "Quiz"}
	})
	return h, &calls
}

func TestHomeScreen_View(t *testing.T) {
	h, _ := newHome()
	view := h.View(100, 30)
	for _, want := range []string{"START QUIZ", "FACT TABLE", "EXIT", tagline, "5 muscles"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHomeScreen_StartQuiz(t *testing.T) {
	h, calls := newHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Quiz" {
		t.Errorf("pushed screen title = %q, want Quiz", msg.Screen.Title())
	}
	if *calls != 1 {
		t.Errorf("newQuiz calls = %d, want 1", *calls)
	}
}

func TestHomeScreen_FactTable(t *testing.T) {
	h, calls := newHome()

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Fact Table" {
		t.Errorf("pushed screen title = %q, want Fact Table", msg.Screen.Title())
	}
	if *calls != 0 {
		t.Errorf("newQuiz should not be called, got %d", *calls)
	}
}

func TestHomeScreen_KeyHints(t *testing.T) {
	h, _ := newHome()
	if len(h.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(h.KeyHints()))
	}
}
