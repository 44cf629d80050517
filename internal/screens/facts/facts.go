package facts

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/musclequiz/internal/facts"
	"github.com/abhisek/musclequiz/internal/screen"
	"github.com/abhisek/musclequiz/internal/ui/components"
	"github.com/abhisek/musclequiz/internal/ui/layout"
	"github.com/abhisek/musclequiz/internal/ui/theme"
)

// FactsScreen lists every muscle and its attributes.
type FactsScreen struct {
	store  *facts.Store
	offset int
	keys   components.ChoiceKeys
}

var _ screen.Screen = (*FactsScreen)(nil)
var _ screen.KeyHintProvider = (*FactsScreen)(nil)

// New creates a new FactsScreen over store.
func New(store *facts.Store) *FactsScreen {
	return &FactsScreen{store: store, keys: components.DefaultChoiceKeys()}
}

func (s *FactsScreen) Init() tea.Cmd {
	return nil
}

func (s *FactsScreen) Title() string {
	return "Fact Table"
}

func (s *FactsScreen) KeyHints() []layout.KeyHint {
	return append(components.Hints(s.keys.Up, s.keys.Down),
		layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *FactsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.keys.Up):
		if s.offset > 0 {
			s.offset--
		}
	case key.Matches(kmsg, s.keys.Down):
		if s.offset < s.store.Len()-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *FactsScreen) View(width, height int) string {
	entities := s.store.Entities()
	t := Table(entities[s.offset:], min(width-4, 120))
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, t)
}

// Table renders entities as a bordered table no wider than width.
// A width of zero leaves the table at its natural size.
func Table(entities []facts.Entity, width int) string {
	headers := []string{"Muscle"}
	for _, f := range facts.AllFields() {
		headers = append(headers, f.DisplayName())
	}

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, []string{e.Name, e.Origin, e.Insertion, e.Action})
	}

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	name := lipgloss.NewStyle().Foreground(theme.Accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return name
			default:
				return cell
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
