package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/i18n"
	"github.com/ytplay/ytplay/internal/ui"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/session"
	"github.com/ytplay/ytplay/style"
	"github.com/ytplay/ytplay/util"
)

const (
	defaultSeekStep   = 5
	defaultVolumeStep = 5
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	controller *session.Controller
	playlist   *playlist.Store
	metadata   session.Metadata
	sub        *session.Subscription
	tr         *i18n.Translator
	theme      style.Theme

	seekStep   float64
	volumeStep int

	// components
	playlistC list.Model
	progressC progress.Model
	spinnerC  spinner.Model
	helpC     help.Model
	urlC      textinput.Model
	nameC     textinput.Model
	notifier  *ui.Model

	snapshot session.Snapshot

	// one snapshot is fetched at a time; a request meanwhile is replayed after it
	refreshing     bool
	refreshPending bool

	// lookupURL is the link whose title is being looked up
	lookupURL mo.Option[string]
	removing  mo.Option[playlist.Track]

	width, height         int
	termWidth, termHeight int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	b.termWidth, b.termHeight = width, height
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.progressC.Width = b.width
	b.helpC.Width = b.width
	b.urlC.Width = max(b.width-lipgloss.Width(b.urlC.Prompt)-1, 1)
	b.nameC.Width = max(b.width-lipgloss.Width(b.nameC.Prompt)-1, 1)

	b.playlistC.SetSize(b.width, max(0, b.height-lipgloss.Height(b.viewPlayer())-lipgloss.Height(b.viewHelp())))
}

// refresh fetches a snapshot off the update loop. It arrives as a snapshotMsg.
func (b *statefulBubble) refresh() tea.Cmd {
	if b.refreshing {
		b.refreshPending = true
		return nil
	}
	b.refreshing = true

	controller := b.controller
	return func() tea.Msg {
		return snapshotMsg{snapshot: controller.Snapshot()}
	}
}

// applySnapshot shows s and marks the playing row.
func (b *statefulBubble) applySnapshot(s session.Snapshot) tea.Cmd {
	b.snapshot = s
	b.refreshing = false

	cmd := b.reloadItems()
	if b.refreshPending {
		b.refreshPending = false
		return tea.Batch(cmd, b.refresh())
	}
	return cmd
}

func (b *statefulBubble) reloadItems() tea.Cmd {
	playing := -1
	if b.snapshot.State != session.Idle && b.snapshot.State != session.Stopped {
		playing = b.snapshot.Cursor.OrElse(-1)
	}

	tracks := b.playlist.List()
	items := lo.Map(tracks, func(track playlist.Track, i int) list.Item {
		return &listItem{
			track:   track,
			index:   i,
			playing: i == playing,
			theme:   b.theme,
		}
	})
	return b.playlistC.SetItems(items)
}

func (b *statefulBubble) selected() mo.Option[*listItem] {
	item, ok := b.playlistC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[*listItem]()
	}
	return mo.Some(item)
}

func newBubble(options *Options) *statefulBubble {
	tr := options.Translator
	if tr == nil {
		tr = i18n.New("")
	}
	theme := style.Current()

	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(tr),
		controller:    options.Controller,
		playlist:      options.Playlist,
		metadata:      options.Metadata,
		tr:            tr,
		theme:         theme,
		seekStep:      options.SeekStep,
		volumeStep:    options.VolumeStep,
		notifier: &ui.Model{
			InfoStyle:  lipgloss.NewStyle().Foreground(theme.Subtext),
			ErrorStyle: lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		},
	}
	if bubble.seekStep <= 0 {
		bubble.seekStep = defaultSeekStep
	}
	if bubble.volumeStep <= 0 {
		bubble.volumeStep = defaultVolumeStep
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		Foreground(theme.Accent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(theme.Secondary)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(theme.Text)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(theme.Faint)

	bubble.playlistC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.playlistC.KeyMap = bubble.keymap.forList()
	bubble.playlistC.Title = tr.T(i18n.Playlist)
	bubble.playlistC.Styles.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(theme.Accent).Padding(0, 1)
	bubble.playlistC.Styles.NoItems = lipgloss.NewStyle().Foreground(theme.Faint).Padding(0, 2)
	bubble.playlistC.SetFilteringEnabled(false)
	bubble.playlistC.SetShowStatusBar(false)
	bubble.playlistC.SetShowHelp(false)
	bubble.playlistC.DisableQuitKeybindings()

	bubble.progressC = progress.New(
		progress.WithGradient(string(theme.Secondary), string(theme.Accent)),
		progress.WithoutPercentage(),
	)

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	bubble.helpC = help.New()

	bubble.urlC = textinput.New()
	bubble.urlC.Prompt = tr.T(i18n.LinkLabel) + " "
	bubble.urlC.Placeholder = "https://www.youtube.com/watch?v=..."
	bubble.urlC.CharLimit = 200

	bubble.nameC = textinput.New()
	bubble.nameC.Prompt = tr.T(i18n.NameLabel) + " "
	if options.Playlist != nil {
		bubble.nameC.CharLimit = options.Playlist.MaxNameLength()
	}

	if bubble.controller != nil {
		bubble.sub = bubble.controller.Subscribe()
		bubble.snapshot = bubble.controller.Snapshot()
		bubble.reloadItems()
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
