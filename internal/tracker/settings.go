package tracker

import (
	"context"

	"github.com/rcliao/recruit-tracker/internal/store"
)

// SetBrandName replaces the brand shown in the app header.
func (t *Tracker) SetBrandName(ctx context.Context, v string) {
	t.apply(ctx, func() []string {
		t.settings.BrandName = v
		return []string{store.KeyBrandName}
	})
}

// SetBotName replaces the name the assistant greets with.
func (t *Tracker) SetBotName(ctx context.Context, v string) {
	t.apply(ctx, func() []string {
		t.settings.BotName = v
		return []string{store.KeyBotName}
	})
}

// SetReelPlan replaces the highlight reel planning notes.
func (t *Tracker) SetReelPlan(ctx context.Context, v string) {
	t.apply(ctx, func() []string {
		t.settings.ReelPlan = v
		return []string{store.KeyReelPlan}
	})
}
