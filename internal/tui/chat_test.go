package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/recruit-tracker/internal/bot"
	"github.com/rcliao/recruit-tracker/internal/model"
)

type fakeBackend struct {
	log      []model.ChatMessage
	settings model.Settings
	nextID   int64
}

func (f *fakeBackend) Chat() []model.ChatMessage { return f.log }
func (f *fakeBackend) Settings() model.Settings  { return f.settings }

func (f *fakeBackend) SendToBot(_ context.Context, input string) (model.ChatMessage, model.ChatMessage, bool) {
	if input == "" {
		return model.ChatMessage{}, model.ChatMessage{}, false
	}
	f.nextID++
	u := model.ChatMessage{ID: f.nextID, From: model.SenderUser, Text: input}
	f.nextID++
	r := model.ChatMessage{ID: f.nextID, From: model.SenderBot, Text: bot.Respond(f.settings.BotName, input)}
	f.log = append(f.log, u, r)
	return u, r, true
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next, cmd
}

func TestChatSendAndRender(t *testing.T) {
	b := &fakeBackend{settings: model.Settings{BrandName: "Hub", BotName: "Scout"}}
	var m tea.Model = NewChat(context.Background(), b)

	assert.Equal(t, "Loading...", m.View())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	c := m.(Chat)
	c.input.SetValue("hello")
	m = c

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.(Chat).input.Value(), "input cleared after send")

	msg := cmd()
	require.Equal(t, sentMsg{ok: true}, msg)
	m, _ = update(t, m, msg)

	require.Len(t, b.log, 2)
	view := m.View()
	assert.Contains(t, view, "Hub")
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "Scout")
}

func TestChatBlankInput(t *testing.T) {
	b := &fakeBackend{settings: model.DefaultSettings}
	var m tea.Model = NewChat(context.Background(), b)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, sentMsg{ok: false}, cmd())
	assert.Empty(t, b.log)
}

func TestChatQuit(t *testing.T) {
	m := NewChat(context.Background(), &fakeBackend{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Checklist\n\n- Register with the eligibility center\n", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Checklist")
	assert.Contains(t, out, "eligibility")
}
