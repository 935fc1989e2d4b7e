package tracker

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/schema"
	"github.com/rcliao/recruit-tracker/internal/store"
)

func (t *Tracker) load(ctx context.Context) {
	t.profile = emptyProfile()
	if raw, ok := t.read(ctx, store.KeyProfile); ok {
		if p, err := decodeProfile(raw); err != nil {
			t.discard(store.KeyProfile, err)
		} else {
			t.profile = p
		}
	}

	t.schools = loadList[model.School](ctx, t, store.KeySchools, func(s model.School) int64 { return s.ID })
	t.outreach = loadList[model.Outreach](ctx, t, store.KeyOutreach, func(o model.Outreach) int64 { return o.ID })
	t.chat = loadList[model.ChatMessage](ctx, t, store.KeyChat, func(m model.ChatMessage) int64 { return m.ID })

	t.settings = t.defaults
	if v, ok := t.read(ctx, store.KeyBrandName); ok {
		t.settings.BrandName = v
	}
	if v, ok := t.read(ctx, store.KeyBotName); ok {
		t.settings.BotName = v
	}
	if v, ok := t.read(ctx, store.KeyReelPlan); ok {
		t.settings.ReelPlan = v
	}

	for _, a := range t.profile.Achievements {
		t.seq.Observe(a.ID)
	}
	for _, s := range t.schools {
		t.seq.Observe(s.ID)
	}
	for _, o := range t.outreach {
		t.seq.Observe(o.ID)
	}
	for _, m := range t.chat {
		t.seq.Observe(m.ID)
	}
}

// read returns the stored value for key. A store error counts as absent.
func (t *Tracker) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := t.kv.Get(ctx, key)
	if err != nil {
		t.log.Warn("storage unavailable; using default", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (t *Tracker) discard(key string, err error) {
	t.log.Warn("stored value is malformed; using default", zap.String("key", key), zap.Error(err))
}

// loadList decodes and validates a stored JSON array. Any malformed entry or
// duplicate id discards the whole list.
func loadList[T any](ctx context.Context, t *Tracker, key string, id func(T) int64) []T {
	out := []T{}
	raw, ok := t.read(ctx, key)
	if !ok {
		return out
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.discard(key, err)
		return out
	}

	seen := make(map[int64]bool, len(items))
	for i, item := range items {
		if err := t.validate.Struct(item); err != nil {
			t.discard(key, fmt.Errorf("entry %d: %w", i, err))
			return out
		}
		if seen[id(item)] {
			t.discard(key, fmt.Errorf("entry %d: duplicate id %d", i, id(item)))
			return out
		}
		seen[id(item)] = true
	}
	if items == nil {
		return out
	}
	return items
}

func emptyProfile() model.Profile {
	return model.Profile{Achievements: []model.Achievement{}}
}

// decodeProfile validates raw against the profile schema and decodes it.
func decodeProfile(raw string) (model.Profile, error) {
	if err := schema.ValidateProfile(raw); err != nil {
		return model.Profile{}, err
	}
	p := emptyProfile()
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.Profile{}, &schema.SyntaxError{Cause: err}
	}
	if p.Achievements == nil {
		p.Achievements = []model.Achievement{}
	}
	return p, nil
}
