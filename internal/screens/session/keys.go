package session

import (
	"charm.land/bubbles/v2/key"

	sess "github.com/abhisek/musclequiz/internal/session"
	"github.com/abhisek/musclequiz/internal/ui/components"
	"github.com/abhisek/musclequiz/internal/ui/layout"
)

type keyMap struct {
	choice  components.ChoiceKeys
	next    key.Binding
	skip    key.Binding
	restart key.Binding
	back    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		choice: components.DefaultChoiceKeys(),
		next: key.NewBinding(
			key.WithKeys("enter", "space", "n"),
			key.WithHelp("Enter", "Next question"),
		),
		skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "Skip"),
		),
		restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Restart"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Home"),
		),
	}
}

// hintsFor returns the footer hints for phase.
func (k keyMap) hintsFor(phase sess.Phase) []layout.KeyHint {
	switch phase {
	case sess.PhaseQuestionActive:
		return components.Hints(k.choice.Pick, k.choice.Submit, k.skip, k.restart, k.back)
	case sess.PhaseAwaitingAdvance:
		return components.Hints(k.next, k.restart, k.back)
	default:
		return components.Hints(k.back)
	}
}
