package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/musclequiz/internal/router"
	"github.com/abhisek/musclequiz/internal/screen"
	"github.com/abhisek/musclequiz/internal/session"
	"github.com/abhisek/musclequiz/internal/ui/layout"
	"github.com/abhisek/musclequiz/internal/ui/theme"
)

// SummaryScreen displays the end-of-session summary.
type SummaryScreen struct {
	summary *session.SessionSummary
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. restart builds the screen for another
// attempt; it may be nil, in which case Enter returns home.
func New(summary *session.SessionSummary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return fmt.Sprintf("Score %d/%d", s.summary.TotalCorrect, s.summary.TotalQuestions)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			if s.restart == nil {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			next := s.restart()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(layout.Centered(width, theme.Title, "Quiz complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Score: %d/%d      Accuracy: %.0f%%      Best streak: %d      Time: %d:%02d",
		sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, sum.BestStreak, mins, secs)
	b.WriteString(layout.Centered(width, theme.Body, stats))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(sum.FieldResults) > 0 {
		b.WriteString(section(width, "By attribute", divider))
		for _, fr := range sum.FieldResults {
			line := fmt.Sprintf("%-10s  %d/%d correct", fr.Field.DisplayName(), fr.Correct, fr.Attempted)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sum.Answers) > 0 {
		b.WriteString(section(width, "Answers", divider))
		for i, a := range sum.Answers {
			b.WriteString(renderAnswer(width, i+1, a))
		}
	}

	return b.String()
}

func section(width int, title, divider string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render(title)) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) +
		"\n"
}

// renderAnswer renders one log entry; wrong answers also show the correct one.
func renderAnswer(width, n int, a session.AnswerRecord) string {
	mark, style := "✓", theme.Correct
	if !a.Correct {
		mark, style = "✗", theme.Incorrect
	}

	line := fmt.Sprintf("%2d. %s %s: %s", n, a.Entity, a.Field, a.UserAnswer)
	out := lipgloss.NewStyle().Width(min(width-4, 100)).Render(style.Render(mark) + " " + theme.Body.Render(line))
	out += "\n"
	if !a.Correct {
		out += lipgloss.NewStyle().Width(min(width-4, 100)).Foreground(theme.TextDim).
			Render("      correct: "+a.CorrectAnswer) + "\n"
	}
	return "  " + out
}
