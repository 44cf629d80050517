package session

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/musclequiz/internal/router"
	"github.com/abhisek/musclequiz/internal/screen"
	"github.com/abhisek/musclequiz/internal/screens/summary"
	sess "github.com/abhisek/musclequiz/internal/session"
	"github.com/abhisek/musclequiz/internal/ui/components"
	"github.com/abhisek/musclequiz/internal/ui/layout"
)

// SessionScreen renders a quiz session and forwards user actions to the
// controller. All quiz state lives in the controller.
type SessionScreen struct {
	ctrl   *sess.Controller
	choice components.MultiChoice
	keys   keyMap
	errMsg string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen driving ctrl. The session is reset on Init.
func New(ctrl *sess.Controller) *SessionScreen {
	return &SessionScreen{
		ctrl: ctrl,
		keys: defaultKeyMap(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.ctrl.Score(), s.ctrl.TotalAnswered())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return components.Hints(s.keys.back)
	}
	return s.keys.hintsFor(s.ctrl.Phase())
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		s.ctrl.Reset()
		return s, s.advance()

	case nextMsg:
		return s, s.advance()

	case sessionEndMsg:
		return s, s.showSummary()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if key.Matches(msg, s.keys.restart) {
		return s, func() tea.Msg { return startMsg{} }
	}

	switch s.ctrl.Phase() {
	case sess.PhaseQuestionActive:
		if key.Matches(msg, s.keys.skip) {
			// Abandons the question; its key stays used.
			return s, s.advance()
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.submit()
		}
		return s, cmd

	case sess.PhaseAwaitingAdvance:
		if key.Matches(msg, s.keys.next) {
			return s, func() tea.Msg { return nextMsg{} }
		}
	}

	return s, nil
}

// submit grades the chosen option.
func (s *SessionScreen) submit() {
	if _, err := s.ctrl.SubmitAnswer(s.choice.Chosen()); err != nil {
		var ise *sess.InvalidStateError
		if errors.As(err, &ise) {
			// Stale key press; nothing to grade.
			return
		}
		s.errMsg = err.Error()
	}
}

// advance asks the controller for the next question and resets the
// selector, or ends the session when the controller completes.
func (s *SessionScreen) advance() tea.Cmd {
	if err := s.ctrl.Advance(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if s.ctrl.Completed() {
		return func() tea.Msg { return sessionEndMsg{} }
	}

	q := s.ctrl.Question()
	s.choice = components.NewMultiChoice(q.Choices, q.AnswerIndex())
	return nil
}

// showSummary replaces this screen with the summary. Playing again from the
// summary reuses the same controller, which is reset on Init.
func (s *SessionScreen) showSummary() tea.Cmd {
	ctrl := s.ctrl
	restart := func() screen.Screen { return New(ctrl) }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(ctrl.Summary(), restart),
		}
	}
}
