package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteKV {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteKV(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	v, ok, err := s.Get(context.Background(), KeyProfile)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, KeyBotName, "Coach"))
	require.NoError(t, s.Set(ctx, KeyBotName, "Scout"))

	v, ok, err := s.Get(ctx, KeyBotName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Scout", v)
}

func TestKeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, KeySchools, `[{"id":1}]`))
	require.NoError(t, s.Set(ctx, KeyOutreach, `[]`))

	v, _, _ := s.Get(ctx, KeySchools)
	assert.Equal(t, `[{"id":1}]`, v)
	_, ok, _ := s.Get(ctx, KeyChat)
	assert.False(t, ok)
}

func TestSetManyCommitsTogether(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.SetMany(ctx, map[string]string{
		KeySchools:  `[]`,
		KeyOutreach: `[]`,
	})
	require.NoError(t, err)

	for _, k := range []string{KeySchools, KeyOutreach} {
		v, ok, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok, k)
		assert.Equal(t, `[]`, v)
	}
}

func TestSetAfterCloseFails(t *testing.T) {
	s, err := NewSQLiteKV(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Set(context.Background(), KeyReelPlan, "plan"))
	_, _, err = s.Get(context.Background(), KeyReelPlan)
	assert.Error(t, err)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Set(ctx, KeyReelPlan, fmt.Sprintf("plan v%d", i)))
	}

	revs, err := s.History(ctx, HistoryParams{Key: KeyReelPlan})
	require.NoError(t, err)
	require.Len(t, revs, 3)
	assert.Equal(t, 3, revs[0].Version)
	assert.Equal(t, "plan v3", revs[0].Value)
	assert.Equal(t, "plan v1", revs[2].Value)
	assert.NotEqual(t, revs[0].ID, revs[1].ID)

	_, err = s.History(ctx, HistoryParams{Key: KeyChat})
	assert.Error(t, err)
}

func TestHistoryPruned(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 0; i < keepRevisions+5; i++ {
		require.NoError(t, s.Set(ctx, KeyBrandName, fmt.Sprintf("brand %d", i)))
	}

	revs, err := s.History(ctx, HistoryParams{Key: KeyBrandName, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, revs, keepRevisions)
	assert.Equal(t, keepRevisions+5, revs[0].Version)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "stats.db")
	s, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, KeyBotName, "Coach"))
	require.NoError(t, s.Set(ctx, KeyBotName, "Scout"))
	require.NoError(t, s.Set(ctx, KeyBrandName, "Hub"))

	st, err := s.Stats(ctx, dbPath)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalRevisions)
	require.Len(t, st.Keys, 2)
	assert.Equal(t, KeyBotName, st.Keys[0].Key)
	assert.Equal(t, 2, st.Keys[0].Version)
	assert.Equal(t, 5, st.Keys[0].Bytes)
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestMemKVFailures(t *testing.T) {
	ctx := context.Background()
	m := NewMemKV()
	require.NoError(t, m.Set(ctx, KeyBotName, "Coach"))
	assert.Equal(t, 1, m.Writes())

	m.FailSet = fmt.Errorf("quota exceeded")
	assert.Error(t, m.Set(ctx, KeyBotName, "Scout"))
	assert.Equal(t, 1, m.Writes())

	m.FailGet = fmt.Errorf("storage disabled")
	_, _, err := m.Get(ctx, KeyBotName)
	assert.Error(t, err)

	raw, ok := m.Raw(KeyBotName)
	assert.True(t, ok)
	assert.Equal(t, "Coach", raw)
}
