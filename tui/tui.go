// Package tui provides the interactive stack view.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Seed values are pushed in order before the first frame, so the last one ends up on top.
	Seed []string
}

// Run initializes and executes the Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
