package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/score"
	"github.com/rcliao/recruit-tracker/internal/store"
)

// UpdateProfileField replaces one scalar profile field. It reports false when
// field is not a profile field.
func (t *Tracker) UpdateProfileField(ctx context.Context, field, value string) bool {
	return t.apply(ctx, func() []string {
		f := t.profile.Field(field)
		if f == nil {
			return nil
		}
		*f = value
		return []string{store.KeyProfile}
	})
}

// AddAchievement appends an achievement. Blank text is ignored.
func (t *Tracker) AddAchievement(ctx context.Context, text string) (model.Achievement, bool) {
	text = strings.TrimSpace(text)
	var a model.Achievement
	ok := t.apply(ctx, func() []string {
		if text == "" {
			return nil
		}
		a = model.Achievement{ID: t.seq.Next(), Text: text}
		t.profile.Achievements = append(t.profile.Achievements, a)
		return []string{store.KeyProfile}
	})
	return a, ok
}

// RemoveAchievement removes the achievement with the given id, if any.
func (t *Tracker) RemoveAchievement(ctx context.Context, id int64) bool {
	return t.apply(ctx, func() []string {
		for i, a := range t.profile.Achievements {
			if a.ID == id {
				t.profile.Achievements = append(t.profile.Achievements[:i:i], t.profile.Achievements[i+1:]...)
				return []string{store.KeyProfile}
			}
		}
		return nil
	})
}

// ImportProfile replaces the whole profile with the one encoded in raw. When
// raw is not a well-formed profile the current profile is left untouched and
// a *schema.SyntaxError or *schema.ValidationError is returned.
func (t *Tracker) ImportProfile(ctx context.Context, raw string) error {
	p, err := decodeProfile(raw)
	if err != nil {
		return fmt.Errorf("import profile: %w", err)
	}
	t.apply(ctx, func() []string {
		for _, a := range p.Achievements {
			t.seq.Observe(a.ID)
		}
		t.profile = p
		return []string{store.KeyProfile}
	})
	return nil
}

// ExportProfile returns the profile as indented JSON that ImportProfile
// accepts.
func (t *Tracker) ExportProfile() string {
	p := t.Profile()
	b, _ := json.MarshalIndent(p, "", "  ")
	return string(b)
}

// ProfileCompletion returns the current profile completion percentage.
func (t *Tracker) ProfileCompletion() int {
	return score.ProfileCompletion(t.Profile())
}
