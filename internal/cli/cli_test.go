package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/recruit-tracker/internal/bot"
	"github.com/rcliao/recruit-tracker/internal/model"
)

type harness struct {
	t      *testing.T
	dir    string
	db     string
	config string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	return &harness{
		t:      t,
		dir:    dir,
		db:     filepath.Join(dir, "tracker.db"),
		config: filepath.Join(dir, "config.yaml"),
	}
}

func (h *harness) run(format string, args ...string) string {
	h.t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(strings.NewReader(""))
	RootCmd.SetArgs(append([]string{"--db", h.db, "--config", h.config, "--format", format}, args...))
	require.NoError(h.t, RootCmd.Execute())
	return out.String()
}

func TestSchoolOutreachCascade(t *testing.T) {
	h := newHarness(t)

	h.run("json", "profile", "set", "gpa", "3.0")

	var school model.School
	out := h.run("json", "school", "add", "--name", "State U", "--division", "NCAA DII", "--contact", "coach@state.edu")
	require.NoError(t, json.Unmarshal([]byte(out), &school))
	assert.Equal(t, 75, school.FitScore)
	assert.Equal(t, model.DivisionNCAAD2, school.Division)

	id := strconv.FormatInt(school.ID, 10)
	h.run("json", "outreach", "log", "--school", id, "Sent", "intro", "email")

	var entries []outreachView
	require.NoError(t, json.Unmarshal([]byte(h.run("json", "outreach", "list")), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "State U", entries[0].School)
	assert.Equal(t, "Sent intro email", entries[0].Message)

	out = h.run("json", "school", "rm", id)
	assert.Contains(t, out, `"outreach_removed":1`)

	require.NoError(t, json.Unmarshal([]byte(h.run("json", "outreach", "list")), &entries))
	assert.Empty(t, entries)
}

func TestProfileExportImport(t *testing.T) {
	h := newHarness(t)

	h.run("json", "profile", "set", "name", "Jordan", "Lee")
	h.run("json", "achievement", "add", "All-State", "2025")

	exportPath := filepath.Join(h.dir, "profile.json")
	h.run("json", "profile", "export", "--out", exportPath)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Jordan Lee"`)

	h.run("json", "profile", "set", "name", "Someone Else")

	var view profileView
	require.NoError(t, json.Unmarshal([]byte(h.run("json", "profile", "import", exportPath)), &view))
	assert.Equal(t, "Jordan Lee", view.Profile.Name)
	require.Len(t, view.Profile.Achievements, 1)
	assert.Equal(t, "All-State 2025", view.Profile.Achievements[0].Text)
	assert.Equal(t, 22, view.Completion)
}

func TestChatOneShot(t *testing.T) {
	h := newHarness(t)

	h.run("json", "settings", "set", "bot", "Scout")
	out := h.run("text", "chat", "tell", "me", "about", "my", "SCHOOL", "list")
	assert.Equal(t, bot.Respond("Scout", "school")+"\n", out)

	var msgs []model.ChatMessage
	require.NoError(t, json.Unmarshal([]byte(h.run("json", "chat", "log")), &msgs))
	require.Len(t, msgs, 2)
	assert.Equal(t, "tell me about my SCHOOL list", msgs[0].Text)
	assert.Greater(t, msgs[1].ID, msgs[0].ID)
}

func TestReelAndSettingsPersist(t *testing.T) {
	h := newHarness(t)

	h.run("json", "reel", "set", "Fall", "season", "clips")
	assert.Equal(t, "Fall season clips\n", h.run("json", "reel", "show"))

	var s model.Settings
	require.NoError(t, json.Unmarshal([]byte(h.run("json", "settings", "show")), &s))
	assert.Equal(t, model.DefaultSettings.BotName, s.BotName)
	assert.Equal(t, "Fall season clips", s.ReelPlan)
}

func TestStatsAndHistory(t *testing.T) {
	h := newHarness(t)

	h.run("json", "settings", "set", "brand", "One")
	h.run("json", "settings", "set", "brand", "Two")

	out := h.run("json", "history", "--key", "recruit.brandName", "--limit", "5")
	assert.Contains(t, out, `"value": "Two"`)
	assert.Contains(t, out, `"value": "One"`)

	out = h.run("json", "stats")
	assert.Contains(t, out, `"key": "recruit.brandName"`)
}
