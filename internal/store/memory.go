// apps/go-solver/internal/store/memory.go
//
// In-memory implementation of the guess cache used by the solver.
// The minimax pick depends only on the guess vocabulary and the remaining
// answer candidates, so bench runs that walk through the same opening moves
// can reuse earlier searches.
//
// Characteristics:
//   - Stores Entry values keyed by a state fingerprint in a map.
//   - Concurrency-safe via RWMutex (Get also counts hits, so it locks exclusively).
//   - State is lost when the process exits.
//   - ErrNotFound is returned for missing keys on Get().

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("not found")

// Entry is a cached search result.
type Entry struct {
	Word      string
	WorstCase int
}

// Store defines the cache interface consumed by the solver.
type Store interface {
	// Save records the pick for a state fingerprint.
	Save(ctx context.Context, key string, e Entry) error

	// Get retrieves a pick by fingerprint.
	// Returns ErrNotFound if the key has not been saved.
	Get(ctx context.Context, key string) (Entry, error)
}

// Memory is an in-memory map-based Store implementation.
type Memory struct {
	mu      sync.RWMutex     // guards entries
	entries map[string]Entry // keyed by state fingerprint
	hits    int
	misses  int
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// Save adds or replaces the entry for key.
func (m *Memory) Save(ctx context.Context, key string, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = e
	return nil
}

// Get looks up an entry by key.
func (m *Memory) Get(ctx context.Context, key string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok {
		m.hits++
		return e, nil
	}
	m.misses++
	return Entry{}, ErrNotFound
}

// Stats returns (entries, hits, misses).
func (m *Memory) Stats() (entries, hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), m.hits, m.misses
}
