// Package bot is the scripted recruiting assistant. Replies come from an
// ordered keyword table; the first rule whose keyword appears in the input
// wins.
package bot

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule pairs a set of trigger keywords with a reply.
type Rule struct {
	Name     string
	Keywords []string
	Reply    func(botName string) string
}

// Matches reports whether any keyword occurs in the lower-cased input.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func fixed(s string) func(string) string {
	return func(string) string { return s }
}

// FallbackReply is returned when no rule matches.
const FallbackReply = "I can help with your profile, building a school list, outreach to coaches, " +
	"and your highlight reel. Ask me about one of those."

// Rules is evaluated top to bottom. Keywords are plain substrings, so "hi"
// also matches words that contain it.
var Rules = []Rule{
	{
		Name:     "greeting",
		Keywords: []string{"hello", "hi"},
		Reply: func(botName string) string {
			return fmt.Sprintf("Hi! I'm %s, your recruiting assistant. "+
				"Ask me about your profile, school list, outreach, or highlight reel.", botName)
		},
	},
	{
		Name:     "profile",
		Keywords: []string{"profile"},
		Reply: fixed("Coaches look for a complete profile first. Fill in contact info, position, " +
			"height, weight, GPA and test scores, then add your top achievements."),
	},
	{
		Name:     "schools",
		Keywords: []string{"school", "list"},
		Reply: fixed("Build a balanced list: a few reach schools, several targets where your fit " +
			"score is strong, and a couple of safeties. Mix divisions so you keep options open."),
	},
	{
		Name:     "outreach",
		Keywords: []string{"outreach"},
		Reply: fixed("Email each coach once every two to three weeks with something new: updated " +
			"stats, a fresh clip, or your upcoming schedule. Log every contact so you can follow up."),
	},
	{
		Name:     "reel",
		Keywords: []string{"highlight", "reel"},
		Reply: fixed("Keep your highlight reel to 3 to 5 minutes. Lead with your best 5 clips, " +
			"mark yourself before each play, and put your name and contact info on the first frame."),
	},
}

var lower = cases.Lower(language.Und)

// Match returns the winning rule for input, or false when the fallback applies.
func Match(input string) (Rule, bool) {
	lowered := lower.String(input)
	for _, r := range Rules {
		if r.Matches(lowered) {
			return r, true
		}
	}
	return Rule{}, false
}

// Respond returns the assistant's reply to input.
func Respond(botName, input string) string {
	r, ok := Match(input)
	if !ok {
		return FallbackReply
	}
	return r.Reply(botName)
}
