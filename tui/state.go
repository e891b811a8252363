package tui

type state int

const (
	playlistState state = iota
	addState
	confirmState
)
