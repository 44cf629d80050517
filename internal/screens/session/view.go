package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/musclequiz/internal/session"
	"github.com/abhisek/musclequiz/internal/ui/components"
	"github.com/abhisek/musclequiz/internal/ui/layout"
	"github.com/abhisek/musclequiz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.ctrl.Phase() {
	case sess.PhaseQuestionActive, sess.PhaseAwaitingAdvance:
		return s.renderQuestion(width)
	case sess.PhaseCompleted:
		return layout.Centered(width, theme.Subtitle, "\n\n"+s.ctrl.Feedback())
	default:
		return layout.Centered(width, theme.Subtitle, "\n\n  Preparing your quiz...")
	}
}

// renderQuestion renders the info line, progress bar, prompt, options and,
// after an answer, the feedback line.
func (s *SessionScreen) renderQuestion(width int) string {
	var b strings.Builder

	limit := s.ctrl.QuestionLimit()
	number := s.ctrl.TotalAnswered() + 1
	if s.ctrl.Phase() == sess.PhaseAwaitingAdvance {
		number--
	}

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", number, limit))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("Progress", s.ctrl.Progress(), min(width-8, 60)).View()))
	b.WriteString("\n\n")

	prompt := s.prompt()
	b.WriteString(layout.Centered(width, theme.Title.Foreground(theme.Text), prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if s.ctrl.Phase() == sess.PhaseAwaitingAdvance {
		style := theme.Incorrect
		if s.ctrl.LastAnswerCorrect() {
			style = theme.Correct
		}
		b.WriteString(layout.Centered(width, style, s.ctrl.Feedback()))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Subtitle, "Press Enter for the next question"))
	} else {
		b.WriteString(layout.Centered(width, theme.Subtitle, "Select (1-4) or use arrows + Enter"))
	}

	return b.String()
}

// prompt returns the question text. While feedback is shown the controller
// has already cleared the question, so it is rebuilt from the last log entry.
func (s *SessionScreen) prompt() string {
	if text := s.ctrl.QuestionText(); text != "" {
		return text
	}
	log := s.ctrl.AnswerLog()
	if len(log) == 0 {
		return ""
	}
	last := log[len(log)-1]
	return sess.QuestionText(sess.QuestionKey{Entity: last.Entity, Field: last.Field})
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
