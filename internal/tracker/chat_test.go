package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/recruit-tracker/internal/bot"
	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/store"
)

func TestSendToBot(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, store.NewMemKV())
	tr.SetBotName(ctx, "Scout")

	user, reply, ok := tr.SendToBot(ctx, "Hello There")
	require.True(t, ok)
	assert.Equal(t, model.SenderUser, user.From)
	assert.Equal(t, "Hello There", user.Text, "user text keeps its casing")
	assert.Equal(t, model.SenderBot, reply.From)
	assert.Equal(t, bot.Respond("Scout", "Hello There"), reply.Text)
	assert.Greater(t, reply.ID, user.ID, "clock is frozen, ids still ordered")

	assert.Equal(t, []model.ChatMessage{user, reply}, tr.Chat())
}

func TestSendToBotBlank(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()
	tr := newTestTracker(t, kv)

	_, _, ok := tr.SendToBot(ctx, " \t\n")
	assert.False(t, ok)
	assert.Empty(t, tr.Chat())
	assert.Equal(t, 0, kv.Writes())
}

func TestChatIDsAcrossCalls(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, store.NewMemKV())

	tr.SendToBot(ctx, "profile?")
	tr.SendToBot(ctx, "xyz")

	msgs := tr.Chat()
	require.Len(t, msgs, 4)
	for i := 1; i < len(msgs); i++ {
		assert.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
	assert.Equal(t, bot.FallbackReply, msgs[3].Text)
}
