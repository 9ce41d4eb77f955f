// Package memstore provides an in-memory Store for tests and one-shot
// CLI use.
package memstore

import (
	"context"
	"sync"

	"github.com/platoba/reviewmine/pkg/reviews/store"
)

type memStore struct {
	mu   sync.RWMutex
	runs map[string]store.Run
	ids  []string // insertion order
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{runs: make(map[string]store.Run)}
}

func (m *memStore) SaveRun(ctx context.Context, run store.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[run.ID]; !ok {
		m.ids = append(m.ids, run.ID)
	}
	m.runs[run.ID] = run
	return nil
}

func (m *memStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return store.Run{}, store.ErrNotFound
	}
	return run, nil
}

func (m *memStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]store.Run, 0, len(m.ids))
	for i := len(m.ids) - 1; i >= 0; i-- {
		out = append(out, m.runs[m.ids[i]])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) Close() error {
	return nil
}
