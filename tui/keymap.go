package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/ytplay/ytplay/i18n"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	play, playPause, stop,
	next, previous,
	seekBack, seekAhead, seekTo,
	volumeUp, volumeDown, mute,
	playMode, shuffle,
	add, remove, openURL,
	lookup, submit, switchField, cancel,
	yes, no,
	up, down, top, bottom, pageUp, pageDown,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(tr *i18n.Translator) *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", tr.T(i18n.HelpQuit)),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", tr.T(i18n.HelpQuit)),
		),
		play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T(i18n.HelpPlay)),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", tr.T(i18n.HelpPause)),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", tr.T(i18n.HelpStop)),
		),
		next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", tr.T(i18n.HelpNext)),
		),
		previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", tr.T(i18n.HelpPrevious)),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", tr.T(i18n.HelpSeekBack)),
		),
		seekAhead: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", tr.T(i18n.HelpSeekAhead)),
		),
		seekTo: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "0%-90%"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", tr.T(i18n.HelpVolUp)),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", tr.T(i18n.HelpVolDown)),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", tr.T(i18n.HelpMute)),
		),
		playMode: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", tr.T(i18n.HelpMode)),
		),
		shuffle: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", tr.T(i18n.HelpShuffle)),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", tr.T(i18n.HelpAdd)),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", tr.T(i18n.HelpRemove)),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", tr.T(i18n.HelpOpen)),
		),
		lookup: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", tr.T(i18n.HelpLookup)),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T(i18n.HelpSubmit)),
		),
		switchField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", tr.T(i18n.HelpSwitch)),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T(i18n.HelpCancel)),
		),
		// t is "tak" for Polish users
		yes: key.NewBinding(
			key.WithKeys("y", "Y", "t", "T"),
			key.WithHelp("y", tr.T(i18n.HelpSubmit)),
		),
		no: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", tr.T(i18n.HelpCancel)),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", tr.T(i18n.HelpHelp)),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case playlistState:
		return h(k.play, k.playPause, k.next, k.add, k.showHelp, k.quit),
			h(
				k.play, k.playPause, k.stop, k.next, k.previous,
				k.seekBack, k.seekAhead, k.seekTo,
				k.volumeUp, k.volumeDown, k.mute,
				k.playMode, k.shuffle,
				k.add, k.remove, k.openURL,
				k.quit,
			)
	case addState:
		return to2(h(k.submit, k.switchField, k.lookup, k.cancel))
	case confirmState:
		return to2(h(k.yes, k.no))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()

	// split into columns of six
	var columns [][]key.Binding
	for len(full) > 0 {
		n := min(6, len(full))
		columns = append(columns, full[:n])
		full = full[n:]
	}
	return columns
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:   k.up,
		CursorDown: k.down,
		NextPage:   k.pageDown,
		PrevPage:   k.pageUp,
		GoToStart:  k.top,
		GoToEnd:    k.bottom,
	}
}
