// Package color holds the ANSI colors used for command output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiPurple = New("13")
)
