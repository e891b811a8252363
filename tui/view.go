package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/ytplay/ytplay/i18n"
	"github.com/ytplay/ytplay/icon"
	"github.com/ytplay/ytplay/session"
	"github.com/ytplay/ytplay/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case playlistState:
		output = b.viewPlaylist()
	case addState:
		output = b.viewAdd()
	case confirmState:
		output = b.viewConfirm()
	default:
		output = "Unknown state"
	}

	return paddingStyle.Render(output)
}

func (b *statefulBubble) viewPlaylist() string {
	body := b.playlistC.View()
	if len(b.playlistC.Items()) == 0 {
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			b.theme.Title(b.tr.T(i18n.Playlist)),
			"",
			lipgloss.NewStyle().Foreground(b.theme.Faint).Render(b.tr.T(i18n.EmptyPlaylist)),
		)
		if gap := b.playlistC.Height() - lipgloss.Height(body); gap > 0 {
			body += strings.Repeat("\n", gap)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, b.viewPlayer(), b.viewHelp())
}

// viewPlayer renders the now playing panel: title, progress bar, clock and settings.
func (b *statefulBubble) viewPlayer() string {
	s := b.snapshot
	width := max(b.width, 20)

	var status string
	switch s.State {
	case session.Loading:
		status = b.spinnerC.View() + " " + b.tr.T(i18n.StateLoading)
	case session.Playing:
		status = icon.Get(icon.Play) + " " + b.tr.T(i18n.StatePlaying)
	case session.Paused:
		status = icon.Get(icon.Pause) + " " + b.tr.T(i18n.StatePaused)
	case session.Stopped:
		status = icon.Get(icon.Stop) + " " + b.tr.T(i18n.StateStopped)
	default:
		status = b.tr.T(i18n.StateIdle)
	}

	title := s.Title
	if title == "" {
		title = b.tr.T(i18n.NothingPlaying)
	}
	title = truncate.StringWithTail(title, uint(max(width-lipgloss.Width(status)-1, 1)), "…")

	headline := lipgloss.NewStyle().Foreground(b.theme.Accent).Bold(true).Render(status) +
		" " + lipgloss.NewStyle().Foreground(b.theme.Text).Render(title)

	reference := s.Duration.OrElse(0)
	clock := fmt.Sprintf("%s / %s", util.FormatClock(s.Position, reference), util.FormatClock(reference, reference))
	if !s.Duration.IsPresent() {
		clock = fmt.Sprintf("%s / --:--", util.FormatClock(s.Position, reference))
	}

	faint := lipgloss.NewStyle().Foreground(b.theme.Subtext)
	lines := []string{
		headline,
		b.progressC.ViewAs(s.Progress()),
		faint.Render(clock + "  " + b.viewSettings()),
		wrap.String(b.notifier.View(), width),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true, false, false, false).
		BorderForeground(b.theme.Surface).
		Render(strings.Join(lines, "\n"))
}

func (b *statefulBubble) viewSettings() string {
	s := b.snapshot

	var modeIcon icon.Icon
	switch s.PlayMode {
	case session.ModeRepeat:
		modeIcon = icon.Repeat
	case session.ModeAdvance:
		modeIcon = icon.Advance
	default:
		modeIcon = icon.Stop
	}
	mode := icon.Get(modeIcon) + " " + b.tr.T(i18n.Mode, b.modeName(s.PlayMode))

	shuffle := icon.Get(icon.Shuffle) + " " + b.tr.T(i18n.ShuffleOff)
	if s.Shuffle {
		shuffle = icon.Get(icon.Shuffle) + " " + b.tr.T(i18n.ShuffleOn)
	}

	volume := icon.Get(icon.Volume) + " " + b.tr.T(i18n.Volume, s.Volume)
	if s.Muted {
		volume = icon.Get(icon.Muted) + " " + b.tr.T(i18n.Muted)
	}

	return strings.Join([]string{mode, shuffle, volume}, " · ")
}

func (b *statefulBubble) modeName(mode session.PlayMode) string {
	switch mode {
	case session.ModeRepeat:
		return b.tr.T(i18n.ModeRepeat)
	case session.ModeAdvance:
		return b.tr.T(i18n.ModeAdvance)
	default:
		return b.tr.T(i18n.ModeStop)
	}
}

func (b *statefulBubble) viewHelp() string {
	return b.helpC.View(b.keymap)
}

func (b *statefulBubble) viewAdd() string {
	lines := []string{
		b.theme.Title(b.tr.T(i18n.AddTitle)),
		"",
		b.urlC.View(),
		b.nameC.View(),
		"",
	}
	if b.lookupURL.IsPresent() {
		lines = append(lines, b.spinnerC.View()+" "+b.tr.T(i18n.LookingUp))
	} else {
		lines = append(lines, wrap.String(b.notifier.View(), max(b.width, 20)))
	}

	return b.renderLines(lines)
}

func (b *statefulBubble) viewConfirm() string {
	name := b.removing.OrEmpty().Name
	lines := []string{
		b.theme.ErrorTitle(b.tr.T(i18n.HelpRemove)),
		"",
		icon.Get(icon.Warn) + " " + b.tr.T(i18n.ConfirmRemove, lipgloss.NewStyle().Foreground(b.theme.Accent).Render(name)),
	}

	return b.renderLines(lines)
}

// renderLines pads lines to the window height and puts the help at the bottom.
func (b *statefulBubble) renderLines(lines []string) string {
	l := strings.Join(lines, "\n")
	help := b.viewHelp()
	if gap := b.height - lipgloss.Height(l) - lipgloss.Height(help); gap > 0 {
		l += strings.Repeat("\n", gap)
	}
	return l + "\n" + help
}
