package session

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/musclequiz/internal/facts"
	"github.com/abhisek/musclequiz/internal/router"
	"github.com/abhisek/musclequiz/internal/screen"
	sess "github.com/abhisek/musclequiz/internal/session"
)

func keyPress(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// run feeds msg to s and keeps feeding back any screen-local message the
// returned command produces. Router messages are returned to the caller.
func run(t *testing.T, s *SessionScreen, msg tea.Msg) tea.Msg {
	t.Helper()
	for range 10 {
		_, cmd := s.Update(msg)
		if cmd == nil {
			return nil
		}
		msg = cmd()
		switch msg.(type) {
		case startMsg, nextMsg, sessionEndMsg:
			continue
		default:
			return msg
		}
	}
	t.Fatal("message loop did not settle")
	return nil
}

func newTestScreen(t *testing.T, opts ...sess.Option) *SessionScreen {
	t.Helper()
	opts = append([]sess.Option{sess.WithSeed(7)}, opts...)
	s := New(sess.NewController(facts.Default(), opts...))
	run(t, s, s.Init()())
	return s
}

// answerKey returns the number key that selects the correct option.
func answerKey(s *SessionScreen) string {
	return string(rune('1' + s.ctrl.Question().AnswerIndex()))
}

// wrongKey returns a number key that selects a wrong option.
func wrongKey(s *SessionScreen) string {
	idx := (s.ctrl.Question().AnswerIndex() + 1) % sess.OptionCount
	return string(rune('1' + idx))
}

func TestSessionScreen_StartShowsQuestion(t *testing.T) {
	s := newTestScreen(t)

	if s.ctrl.Phase() != sess.PhaseQuestionActive {
		t.Fatalf("phase = %v, want QuestionActive", s.ctrl.Phase())
	}
	if len(s.choice.Options) != sess.OptionCount {
		t.Errorf("choice options = %d, want %d", len(s.choice.Options), sess.OptionCount)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Question 1/10") {
		t.Error("view missing question counter")
	}
	if !strings.Contains(view, s.ctrl.QuestionText()) {
		t.Errorf("view missing prompt %q", s.ctrl.QuestionText())
	}
}

func TestSessionScreen_CorrectAnswer(t *testing.T) {
	s := newTestScreen(t)

	run(t, s, keyPress(answerKey(s)))

	if s.ctrl.Phase() != sess.PhaseAwaitingAdvance {
		t.Fatalf("phase = %v, want AwaitingAdvance", s.ctrl.Phase())
	}
	if s.ctrl.Score() != 1 {
		t.Errorf("score = %d, want 1", s.ctrl.Score())
	}
	if !strings.Contains(s.View(100, 30), sess.FeedbackCorrect) {
		t.Error("view missing correct feedback")
	}
	if s.Status() != "Score 1/1" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestSessionScreen_WrongAnswer(t *testing.T) {
	s := newTestScreen(t)
	answer := s.ctrl.Question().Answer

	run(t, s, keyPress(wrongKey(s)))

	if s.ctrl.Score() != 0 {
		t.Errorf("score = %d, want 0", s.ctrl.Score())
	}
	if s.ctrl.TotalAnswered() != 1 {
		t.Errorf("answered = %d, want 1", s.ctrl.TotalAnswered())
	}
	if !strings.Contains(s.ctrl.Feedback(), answer) {
		t.Errorf("feedback %q does not name %q", s.ctrl.Feedback(), answer)
	}
}

func TestSessionScreen_ArrowsAndEnter(t *testing.T) {
	s := newTestScreen(t)
	want := s.ctrl.Question().AnswerIndex()

	for range want {
		run(t, s, specialKey(tea.KeyDown))
	}
	run(t, s, specialKey(tea.KeyEnter))

	if s.ctrl.Score() != 1 {
		t.Errorf("score = %d, want 1", s.ctrl.Score())
	}
}

func TestSessionScreen_EnterAdvances(t *testing.T) {
	s := newTestScreen(t)
	run(t, s, keyPress(answerKey(s)))

	run(t, s, specialKey(tea.KeyEnter))

	if s.ctrl.Phase() != sess.PhaseQuestionActive {
		t.Fatalf("phase = %v, want QuestionActive", s.ctrl.Phase())
	}
	if s.choice.Submitted {
		t.Error("choice should be reset for the new question")
	}
	if !strings.Contains(s.View(100, 30), "Question 2/10") {
		t.Error("view missing second question counter")
	}
}

func TestSessionScreen_SkipConsumesQuestion(t *testing.T) {
	s := newTestScreen(t)
	first := s.ctrl.Question().Key

	run(t, s, keyPress("s"))

	if s.ctrl.TotalAnswered() != 0 {
		t.Errorf("answered = %d, want 0", s.ctrl.TotalAnswered())
	}
	if s.ctrl.Question().Key == first {
		t.Error("skip reissued the same question")
	}
	if s.ctrl.Remaining() != s.ctrl.KeySpace()-2 {
		t.Errorf("remaining = %d, want %d", s.ctrl.Remaining(), s.ctrl.KeySpace()-2)
	}
}

func TestSessionScreen_CompletionShowsSummary(t *testing.T) {
	s := newTestScreen(t)

	var last tea.Msg
	for i := range sess.QuestionLimit {
		run(t, s, keyPress(answerKey(s)))
		last = run(t, s, specialKey(tea.KeyEnter))
		if i < sess.QuestionLimit-1 && last != nil {
			t.Fatalf("unexpected message %T after question %d", last, i+1)
		}
	}

	msg, ok := last.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", last)
	}
	if msg.Screen.Title() != "Quiz Summary" {
		t.Errorf("summary title = %q", msg.Screen.Title())
	}
	if !s.ctrl.Completed() {
		t.Error("controller should be completed")
	}
	if s.ctrl.Score() != sess.QuestionLimit {
		t.Errorf("score = %d, want %d", s.ctrl.Score(), sess.QuestionLimit)
	}

	// Play again from the summary starts a fresh session.
	_, cmd := msg.Screen.Update(specialKey(tea.KeyEnter))
	replay, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg from summary, got %T", cmd())
	}
	again := replay.Screen.(*SessionScreen)
	run(t, again, again.Init()())
	if again.ctrl.Score() != 0 || again.ctrl.Phase() != sess.PhaseQuestionActive {
		t.Errorf("replay not fresh: score=%d phase=%v", again.ctrl.Score(), again.ctrl.Phase())
	}
}

func TestSessionScreen_Restart(t *testing.T) {
	s := newTestScreen(t)
	id := s.ctrl.SessionID()
	run(t, s, keyPress(answerKey(s)))

	run(t, s, keyPress("r"))

	if s.ctrl.TotalAnswered() != 0 || s.ctrl.Score() != 0 {
		t.Errorf("restart did not reset: answered=%d score=%d", s.ctrl.TotalAnswered(), s.ctrl.Score())
	}
	if s.ctrl.SessionID() == id {
		t.Error("restart should start a new session")
	}
	if s.ctrl.Phase() != sess.PhaseQuestionActive {
		t.Errorf("phase = %v, want QuestionActive", s.ctrl.Phase())
	}
}

func TestSessionScreen_NextIgnoredWhileQuestionActive(t *testing.T) {
	s := newTestScreen(t)
	run(t, s, keyPress("n"))
	if s.ctrl.TotalAnswered() != 0 || s.ctrl.Phase() != sess.PhaseQuestionActive {
		t.Error("next key should do nothing before an answer")
	}
}

func TestSessionScreen_ConfigurationErrorShown(t *testing.T) {
	store, err := facts.New([]facts.Entity{
		{Name: "A", Origin: "o1", Insertion: "i1", Action: "a1"},
		{Name: "B", Origin: "o2", Insertion: "i2", Action: "a2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := New(sess.NewController(store, sess.WithSeed(1)))
	run(t, s, s.Init()())

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if !strings.Contains(s.View(100, 30), "Error") {
		t.Error("view should show the error")
	}

	msg := run(t, s, keyPress("x"))
	if _, ok := msg.(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", msg)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := newTestScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while a question is active")
	}
	run(t, s, keyPress(answerKey(s)))
	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Description != "Next question" {
		t.Errorf("unexpected hints after answering: %+v", hints)
	}
}

var _ screen.Screen = (*SessionScreen)(nil)
