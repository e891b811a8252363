package session

import (
	"fmt"
	"strings"
)

// State is the transport state of the session.
type State int

const (
	Idle State = iota
	Loading
	Playing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Active reports whether a track is loaded in the engine.
func (s State) Active() bool {
	return s == Playing || s == Paused
}

// PlayMode decides what happens when a track reaches its end.
type PlayMode int

const (
	ModeRepeat PlayMode = iota
	ModeAdvance
	ModeStop
)

// Next returns the mode after m in the cycle repeat, advance, stop.
func (m PlayMode) Next() PlayMode {
	return (m + 1) % 3
}

func (m PlayMode) String() string {
	switch m {
	case ModeRepeat:
		return "repeat"
	case ModeAdvance:
		return "advance"
	case ModeStop:
		return "stop"
	default:
		return fmt.Sprintf("PlayMode(%d)", int(m))
	}
}

// ParsePlayMode accepts the names produced by String. "next" is read as advance.
func ParsePlayMode(s string) (PlayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "repeat":
		return ModeRepeat, nil
	case "advance", "next":
		return ModeAdvance, nil
	case "stop":
		return ModeStop, nil
	default:
		return ModeAdvance, fmt.Errorf("unknown play mode %q", s)
	}
}

// Direction is the way advance moves the cursor.
type Direction int

const (
	Forward Direction = iota
	Backward
)
