package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/musclequiz/internal/ui/layout"
)

// ChoiceKeys are the bindings used by MultiChoice and Menu.
type ChoiceKeys struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Pick   key.Binding
}

// DefaultChoiceKeys returns the standard navigation bindings.
func DefaultChoiceKeys() ChoiceKeys {
	return ChoiceKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"),
			key.WithHelp("1-4", "Answer"),
		),
	}
}

// Hints converts bindings to footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
