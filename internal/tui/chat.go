// Package tui holds the interactive terminal views.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/recruit-tracker/internal/model"
)

// Backend is the part of the tracker the chat view needs.
type Backend interface {
	Chat() []model.ChatMessage
	Settings() model.Settings
	SendToBot(ctx context.Context, input string) (user, reply model.ChatMessage, ok bool)
}

type styles struct {
	header lipgloss.Style
	user   lipgloss.Style
	bot    lipgloss.Style
	footer lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		user:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		bot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		footer: lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
}

// sentMsg reports that a message was handed to the backend.
type sentMsg struct {
	ok bool
}

// Chat is the bubbletea model for an interactive assistant session.
type Chat struct {
	ctx      context.Context
	backend  Backend
	input    textinput.Model
	viewport viewport.Model
	styles   styles
	ready    bool
	width    int
}

// NewChat returns a chat view over backend.
func NewChat(ctx context.Context, backend Backend) Chat {
	in := textinput.New()
	in.Placeholder = "Ask about your profile, school list, outreach or reel..."
	in.CharLimit = 500
	in.Focus()

	return Chat{
		ctx:      ctx,
		backend:  backend,
		input:    in,
		viewport: viewport.New(80, 20),
		styles:   defaultStyles(),
	}
}

func (m Chat) Init() tea.Cmd {
	return textinput.Blink
}

func (m Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := m.input.Value()
			m.input.Reset()
			return m, m.send(text)
		}

	case sentMsg:
		if msg.ok {
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Chat) send(text string) tea.Cmd {
	return func() tea.Msg {
		_, _, ok := m.backend.SendToBot(m.ctx, text)
		return sentMsg{ok: ok}
	}
}

// refresh rebuilds the transcript from the backend's log.
func (m *Chat) refresh() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m Chat) transcript() string {
	botName := m.backend.Settings().BotName
	var sb strings.Builder
	for _, msg := range m.backend.Chat() {
		if msg.From == model.SenderUser {
			sb.WriteString(m.styles.user.Render("You"))
		} else {
			sb.WriteString(m.styles.bot.Render(botName))
		}
		sb.WriteString(": ")
		sb.WriteString(wrap(msg.Text, m.width))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (m Chat) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.styles.header.Render(fmt.Sprintf("%s · chat with %s",
		m.backend.Settings().BrandName, m.backend.Settings().BotName))
	footer := m.styles.footer.Render("enter to send · esc to quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), m.input.View(), footer)
}
