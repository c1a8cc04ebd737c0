package memory

import (
	"sync"

	"github.com/nexusmind/nexus/cycle"
)

// InMemoryStore is a process-local cycle.Memory. It offers:
//  1. An accepted-principles record keyed by principle id
//  2. An append-only hypothesis log
//
// Concurrency: protected by RWMutex so a store can be shared across
// controllers. Accessors return defensive copies; acceptance order is
// preserved. Accepting an already confirmed principle is a silent no-op,
// which is what makes repeated cycles duplicate-free.
type InMemoryStore struct {
	mu         sync.RWMutex
	principles map[string]cycle.Principle
	order      []string
	hypotheses []cycle.Hypothesis
}

// NewInMemoryStore creates an empty in-memory principle store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{principles: make(map[string]cycle.Principle)}
}

// Accept records a derived principle, keeping the first acceptance when the
// id is already confirmed.
func (m *InMemoryStore) Accept(p cycle.Principle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.principles[p.ID]; exists {
		return nil
	}
	m.principles[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}

// Confirmed reports whether the id is already a derived principle.
func (m *InMemoryStore) Confirmed(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.principles[id]
	return ok
}

// Principles returns a copy of all derived principles in acceptance order.
func (m *InMemoryStore) Principles() []cycle.Principle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]cycle.Principle, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.principles[id])
	}
	return out
}

// AddHypothesis appends a generated hypothesis to the log.
func (m *InMemoryStore) AddHypothesis(h cycle.Hypothesis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hypotheses = append(m.hypotheses, h)
	return nil
}

// Hypotheses returns a copy of the hypothesis log in generation order.
func (m *InMemoryStore) Hypotheses() []cycle.Hypothesis {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]cycle.Hypothesis, len(m.hypotheses))
	copy(out, m.hypotheses)
	return out
}
