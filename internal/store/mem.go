package store

import (
	"context"
	"sync"
)

// MemKV is an in-memory KV. The Fail* fields make it return errors, which
// stands in for storage being disabled.
type MemKV struct {
	mu     sync.Mutex
	data   map[string]string
	writes int

	FailGet error
	FailSet error
}

// NewMemKV returns an empty MemKV.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string]string{}}
}

func (m *MemKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return "", false, m.FailGet
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Set(ctx context.Context, key, value string) error {
	return m.SetMany(ctx, map[string]string{key: value})
}

func (m *MemKV) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	for k, v := range values {
		m.data[k] = v
	}
	m.writes++
	return nil
}

// Writes returns how many Set or SetMany calls succeeded.
func (m *MemKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Raw returns the stored value without going through Get's failure hook.
func (m *MemKV) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}
