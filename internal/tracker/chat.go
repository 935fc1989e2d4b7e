package tracker

import (
	"context"
	"strings"

	"github.com/rcliao/recruit-tracker/internal/bot"
	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/store"
)

// SendToBot appends the user's message and the assistant's reply to the chat
// log. Blank input is ignored.
func (t *Tracker) SendToBot(ctx context.Context, input string) (user, reply model.ChatMessage, ok bool) {
	ok = t.apply(ctx, func() []string {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		user = model.ChatMessage{ID: t.seq.Next(), From: model.SenderUser, Text: input}
		reply = model.ChatMessage{
			ID:   t.seq.Next(),
			From: model.SenderBot,
			Text: bot.Respond(t.settings.BotName, input),
		}
		t.chat = append(t.chat, user, reply)
		return []string{store.KeyChat}
	})
	return user, reply, ok
}
