// Package ui renders transient notices under the player.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoticeLifetime is how long a notice stays on screen.
const NoticeLifetime = 6 * time.Second

// Level tells how a notice is colored.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// NoticeMsg shows Text until it expires or a newer notice replaces it.
type NoticeMsg struct {
	Text  string
	Level Level
}

// clearMsg expires the notice with the same sequence number.
type clearMsg struct {
	seq int
}

// Notify returns a command that shows text as a notice.
func Notify(text string, level Level) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text, Level: level}
	}
}

// Model holds the notice currently on screen.
type Model struct {
	text  string
	level Level
	seq   int

	InfoStyle  lipgloss.Style
	ErrorStyle lipgloss.Style
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NoticeMsg:
		m.seq++
		m.text = msg.Text
		m.level = msg.Level

		seq := m.seq
		return tea.Tick(NoticeLifetime, func(time.Time) tea.Msg {
			return clearMsg{seq: seq}
		})
	case clearMsg:
		// a newer notice owns the line
		if msg.seq == m.seq {
			m.text = ""
		}
	}
	return nil
}

// Text returns the visible notice, empty when there is none.
func (m *Model) Text() string {
	return m.text
}

// View renders the notice line.
func (m *Model) View() string {
	if m.text == "" {
		return ""
	}
	if m.level == LevelError {
		return m.ErrorStyle.Render(m.text)
	}
	return m.InfoStyle.Render(m.text)
}
