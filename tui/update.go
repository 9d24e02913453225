package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sll-cli/sll/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}
			b.inputC.SetValue("")
			b.previousState()
			return b, nil
		}

		switch b.state {
		case pushState:
			if handled := b.updatePush(msg); handled {
				return b, nil
			}
		case editState:
			if handled := b.updateEdit(msg); handled {
				return b, nil
			}
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

// updatePush handles list operations while the push prompt is active.
func (b *statefulBubble) updatePush(msg tea.KeyMsg) bool {
	switch {
	case bubblesKey.Matches(msg, b.keymap.confirm):
		value := strings.TrimSpace(b.inputC.Value())
		if value == "" {
			b.report("push", "nothing to push")
			return true
		}

		b.list.Push(value)
		b.inputC.SetValue("")
		b.report("push", fmt.Sprintf("pushed %q", value))
	case bubblesKey.Matches(msg, b.keymap.pop):
		if v, ok := b.list.Pop().Get(); ok {
			b.report("pop", fmt.Sprintf("popped %q", v))
		} else {
			b.report("pop", "list is empty")
		}
	case bubblesKey.Matches(msg, b.keymap.edit):
		head, ok := b.list.Peek().Get()
		if !ok {
			b.report("peek", "list is empty")
			return true
		}

		b.newState(editState)
		b.inputC.SetValue(head)
		b.inputC.CursorEnd()
		b.status = ""
	case bubblesKey.Matches(msg, b.keymap.upper):
		var n int
		for p := range b.list.Mut() {
			*p = strings.ToUpper(*p)
			n++
		}
		b.report("iter-mut", "uppercased "+util.Quantify(n, "value", "values"))
	case bubblesKey.Matches(msg, b.keymap.drop):
		n := b.list.Len()
		b.list.Drop()
		b.report("drop", "dropped "+util.Quantify(n, "value", "values"))
	default:
		return false
	}

	return true
}

// updateEdit writes the input back into the head element.
func (b *statefulBubble) updateEdit(msg tea.KeyMsg) bool {
	if !bubblesKey.Matches(msg, b.keymap.confirm) {
		return false
	}

	value := strings.TrimSpace(b.inputC.Value())
	if p, ok := b.list.PeekMut().Get(); ok {
		*p = value
		b.report("set", fmt.Sprintf("head set to %q", value))
	} else {
		b.report("set", "list is empty")
	}

	b.inputC.SetValue("")
	b.previousState()
	return true
}
