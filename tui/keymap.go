package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap defines the keyboard interactions available within each state.
type statefulKeymap struct {
	state state

	forceQuit, back,
	confirm, pop, edit, upper, drop,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "push"),
		),
		pop: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pop"),
		),
		edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit head"),
		),
		upper: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "uppercase all"),
		),
		drop: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "drop all"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *statefulKeymap) ShortHelp() []key.Binding {
	switch k.state {
	case editState:
		return []key.Binding{withHelpDesc(k.confirm, "set head"), k.back, k.showHelp}
	default:
		return []key.Binding{k.confirm, k.pop, k.edit, k.showHelp}
	}
}

// FullHelp implements help.KeyMap.
func (k *statefulKeymap) FullHelp() [][]key.Binding {
	switch k.state {
	case editState:
		return [][]key.Binding{{withHelpDesc(k.confirm, "set head"), k.back}, {k.forceQuit, k.showHelp}}
	default:
		return [][]key.Binding{{k.confirm, k.pop, k.edit}, {k.upper, k.drop}, {k.back, k.forceQuit, k.showHelp}}
	}
}

func withHelpDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
