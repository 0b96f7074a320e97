package tokenstore

import (
	"context"
	"sync"
)

// Memory is the single-process store. All methods are safe for
// concurrent use; deployments spanning processes need the redis store.
type Memory struct {
	mu        sync.RWMutex
	pairs     map[string][]Pair
	blacklist map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		pairs:     make(map[string][]Pair),
		blacklist: make(map[string]struct{}),
	}
}

func (m *Memory) Add(_ context.Context, email string, p Pair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairs[email] = append(m.pairs[email], p)
	return nil
}

func (m *Memory) Pairs(_ context.Context, email string) ([]Pair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Pair, len(m.pairs[email]))
	copy(out, m.pairs[email])
	return out, nil
}

func (m *Memory) RemoveByAccessID(_ context.Context, email, accessID string) (*Pair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.pairs[email]
	for i, p := range list {
		if p.AccessID == accessID {
			m.pairs[email] = append(list[:i], list[i+1:]...)
			return &p, nil
		}
	}
	return nil, nil
}

func (m *Memory) Clear(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pairs, email)
	return nil
}

func (m *Memory) Blacklist(_ context.Context, ids ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.blacklist[id] = struct{}{}
	}
	return nil
}

func (m *Memory) IsBlacklisted(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blacklist[id]
	return ok, nil
}
