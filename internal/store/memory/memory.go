// Package memory provides an ephemeral, thread-safe, in-memory
// implementation of model.Store. It is suitable for tests and throwaway
// sessions where client state does not need to survive the process.
package memory

import (
	"context"
	"sync"

	"github.com/harborwind/clientstate/internal/model"
)

// Store is an in-memory model.Store backed by a map under an RWMutex. A
// plain map is preferred over sync.Map because Keys needs a consistent
// snapshot of the whole key set.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ model.Store = (*Store)(nil)

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{entries: make(map[string]string)}
}

// Get returns the value stored under key, or model.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return "", model.ErrNotFound
	}
	return value, nil
}

// Set writes value under key, overwriting any existing entry.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Keys returns a snapshot of every key currently in the store.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys, nil
}
