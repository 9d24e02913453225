package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink; the list is already seeded by newBubble.
func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}
