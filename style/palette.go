package style

import "github.com/charmbracelet/lipgloss"

// Palette of the interactive view.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Overlay = lipgloss.Color("#6c7086")
	Mauve   = lipgloss.Color("#cba6f7")
	Peach   = lipgloss.Color("#fab387")
	Green   = lipgloss.Color("#a6e3a1")
	Sky     = lipgloss.Color("#89dceb")

	AccentColor  = Mauve
	SuccessColor = Green

	// Chains
	HeadColor = Mauve
	NodeColor = Sky
	LinkColor = Overlay
)
