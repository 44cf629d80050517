package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/musclequiz/internal/facts"
	"github.com/abhisek/musclequiz/internal/router"
	"github.com/abhisek/musclequiz/internal/screen"
	factsscreen "github.com/abhisek/musclequiz/internal/screens/facts"
	"github.com/abhisek/musclequiz/internal/ui/components"
	"github.com/abhisek/musclequiz/internal/ui/layout"
	"github.com/abhisek/musclequiz/internal/ui/theme"
)

const tagline = "Test your knowledge on muscle origin, insertion, and action."

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	store      *facts.Store
	limit      int
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. newQuiz builds a fresh quiz screen each
// time the quiz is started.
func New(store *facts.Store, limit int, newQuiz func() screen.Screen) *HomeScreen {
	menuLabels := []string{"START QUIZ", "FACT TABLE", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newQuiz()}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factsscreen.New(store)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		store:      store,
		limit:      limit,
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "MUSCLE ANATOMY QUIZ"))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, tagline))
	b.WriteString("\n\n")

	info := fmt.Sprintf("%d muscles  ·  %d questions per round", h.store.Len(), h.limit)
	b.WriteString(layout.Centered(width, theme.Body, info))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Render(strings.TrimRight(h.menu.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return components.Hints(h.menu.Keys.Up, h.menu.Keys.Down, h.menu.Keys.Submit)
}
