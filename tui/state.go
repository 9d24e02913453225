package tui

type state int

const (
	pushState state = iota
	editState
)
