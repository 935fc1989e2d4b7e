// Package tracker holds the recruiting tracker's in-memory state and keeps it
// in sync with a key-value store.
//
// Each entity lives under its own key. New loads every key independently and
// falls back to a default when a value is missing or malformed. Every mutation
// writes the keys it changed. Write failures are logged and otherwise ignored,
// so the tracker keeps working in memory when storage is unavailable.
package tracker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rcliao/recruit-tracker/internal/ids"
	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/store"
)

// UnknownSchool is shown for an outreach entry whose school cannot be found.
const UnknownSchool = "Unknown school"

// DateLayout is the format of Outreach.Date.
const DateLayout = "2006-01-02"

// Change describes one applied mutation.
type Change struct {
	Keys []string
}

// Tracker is the entity store.
type Tracker struct {
	mu       sync.Mutex
	kv       store.KV
	log      *zap.Logger
	now      func() time.Time
	seq      *ids.Sequence
	validate *validator.Validate
	defaults model.Settings

	profile  model.Profile
	schools  []model.School
	outreach []model.Outreach
	chat     []model.ChatMessage
	settings model.Settings

	observers []func(Change)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithClock sets the time source used for ids and outreach dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithDefaults sets the values used for settings that have never been stored.
func WithDefaults(s model.Settings) Option {
	return func(t *Tracker) { t.defaults = s }
}

// New loads a Tracker from kv.
func New(ctx context.Context, kv store.KV, opts ...Option) *Tracker {
	t := &Tracker{
		kv:       kv,
		log:      zap.NewNop(),
		now:      time.Now,
		validate: validator.New(),
		defaults: model.DefaultSettings,
	}
	for _, o := range opts {
		o(t)
	}
	t.seq = ids.NewSequence(t.now)
	t.load(ctx)
	return t
}

// Observe registers fn to be called after every mutation. fn runs after the
// mutation is fully applied and may read from the tracker.
func (t *Tracker) Observe(fn func(Change)) {
	t.mu.Lock()
	t.observers = append(t.observers, fn)
	t.mu.Unlock()
}

// commit persists keys and returns the change to announce. t.mu must be held.
func (t *Tracker) commit(ctx context.Context, keys ...string) Change {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[k] = t.encode(k)
	}

	var err error
	if bs, ok := t.kv.(store.BatchSetter); ok && len(keys) > 1 {
		err = bs.SetMany(ctx, values)
	} else {
		for _, k := range keys {
			if e := t.kv.Set(ctx, k, values[k]); e != nil && err == nil {
				err = e
			}
		}
	}
	if err != nil {
		t.log.Error("persist failed; keeping in-memory state", zap.Strings("keys", keys), zap.Error(err))
	} else {
		t.log.Debug("persisted", zap.Strings("keys", keys))
	}

	return Change{Keys: keys}
}

// encode serializes the value stored under key. t.mu must be held.
func (t *Tracker) encode(key string) string {
	var v any
	switch key {
	case store.KeyProfile:
		v = t.profile
	case store.KeySchools:
		v = t.schools
	case store.KeyOutreach:
		v = t.outreach
	case store.KeyChat:
		v = t.chat
	case store.KeyReelPlan:
		return t.settings.ReelPlan
	case store.KeyBrandName:
		return t.settings.BrandName
	case store.KeyBotName:
		return t.settings.BotName
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func (t *Tracker) notify(c Change) {
	t.mu.Lock()
	obs := append([]func(Change){}, t.observers...)
	t.mu.Unlock()
	for _, fn := range obs {
		fn(c)
	}
}

// apply runs fn under the lock and, when fn reports changed keys, persists
// them and notifies observers.
func (t *Tracker) apply(ctx context.Context, fn func() []string) bool {
	t.mu.Lock()
	keys := fn()
	if len(keys) == 0 {
		t.mu.Unlock()
		return false
	}
	c := t.commit(ctx, keys...)
	t.mu.Unlock()
	t.notify(c)
	return true
}

// Profile returns a copy of the profile.
func (t *Tracker) Profile() model.Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile.Clone()
}

// Schools returns a copy of the school list.
func (t *Tracker) Schools() []model.School {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.School{}, t.schools...)
}

// Outreach returns a copy of the outreach log.
func (t *Tracker) Outreach() []model.Outreach {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.Outreach{}, t.outreach...)
}

// Chat returns a copy of the conversation log.
func (t *Tracker) Chat() []model.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.ChatMessage{}, t.chat...)
}

// Settings returns the current settings.
func (t *Tracker) Settings() model.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings
}

// School returns the school with the given id.
func (t *Tracker) School(id int64) (model.School, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.schoolIndex(id)
	if i < 0 {
		return model.School{}, false
	}
	return t.schools[i], true
}

// SchoolName returns the school's name, or UnknownSchool when id does not
// resolve.
func (t *Tracker) SchoolName(id int64) string {
	if s, ok := t.School(id); ok {
		return s.Name
	}
	return UnknownSchool
}

func (t *Tracker) schoolIndex(id int64) int {
	for i, s := range t.schools {
		if s.ID == id {
			return i
		}
	}
	return -1
}
