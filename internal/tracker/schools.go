package tracker

import (
	"context"
	"strings"

	"github.com/rcliao/recruit-tracker/internal/model"
	"github.com/rcliao/recruit-tracker/internal/score"
	"github.com/rcliao/recruit-tracker/internal/store"
)

// AddSchool appends a school. Its fit score is computed from the profile GPA
// now and is not updated later. A blank name is ignored.
func (t *Tracker) AddSchool(ctx context.Context, name string, division model.Division, contact string) (model.School, bool) {
	name = strings.TrimSpace(name)
	var s model.School
	ok := t.apply(ctx, func() []string {
		if name == "" {
			return nil
		}
		s = model.School{
			ID:       t.seq.Next(),
			Name:     name,
			Division: model.ParseDivision(string(division)),
			Contact:  strings.TrimSpace(contact),
			FitScore: score.FitScore(t.profile.GPA),
		}
		t.schools = append(t.schools, s)
		return []string{store.KeySchools}
	})
	return s, ok
}

// RemoveSchool deletes a school together with its outreach entries. It
// returns how many outreach entries went with it.
func (t *Tracker) RemoveSchool(ctx context.Context, id int64) (int, bool) {
	removed := 0
	ok := t.apply(ctx, func() []string {
		i := t.schoolIndex(id)
		if i < 0 {
			return nil
		}
		t.schools = append(t.schools[:i:i], t.schools[i+1:]...)

		kept := make([]model.Outreach, 0, len(t.outreach))
		for _, o := range t.outreach {
			if o.SchoolID == id {
				removed++
				continue
			}
			kept = append(kept, o)
		}
		t.outreach = kept
		return []string{store.KeySchools, store.KeyOutreach}
	})
	return removed, ok
}

// LogOutreach records a contact with a school, dated today. It is ignored
// when the school does not exist or the message is blank.
func (t *Tracker) LogOutreach(ctx context.Context, schoolID int64, message string) (model.Outreach, bool) {
	message = strings.TrimSpace(message)
	var o model.Outreach
	ok := t.apply(ctx, func() []string {
		if message == "" || t.schoolIndex(schoolID) < 0 {
			return nil
		}
		o = model.Outreach{
			ID:       t.seq.Next(),
			SchoolID: schoolID,
			Date:     t.now().UTC().Format(DateLayout),
			Message:  message,
		}
		t.outreach = append(t.outreach, o)
		return []string{store.KeyOutreach}
	})
	return o, ok
}
