package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/harborwind/clientstate/internal/logger"
	"github.com/harborwind/clientstate/internal/model"
)

// State is the per-user storage gateway. It translates logical client-state
// keys into user-scoped physical keys and funnels every read and write of
// persisted state through the backing store.
//
// Scoping appends the active user identifier as a suffix ("key_user") rather
// than a prefix so that a single HasSuffix scan can find all of one user's
// entries without a registry of known logical key names.
type State struct {
	store         model.Store
	logger        *logger.Logger
	badgeCacheKey string

	mu      sync.RWMutex
	userID  string
	hasUser bool
}

// NewState creates a gateway over store. badgeCacheKey configures the
// physical key for the shared badge cache; empty leaves the logical key
// unmapped.
func NewState(store model.Store, badgeCacheKey string, logger *logger.Logger) *State {
	return &State{
		store:         store,
		logger:        logger,
		badgeCacheKey: badgeCacheKey,
	}
}

// SetActiveUser records id as the active user for the rest of the session.
// Calling it again re-scopes future operations only; entries written under
// the previous identifier are neither migrated nor deleted.
func (s *State) SetActiveUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = id
	s.hasUser = true
	s.logger.Debug("active user set", "user_id", id)
}

// ActiveUser returns the recorded identifier, or false if none was set.
func (s *State) ActiveUser() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userID, s.hasUser
}

// DeriveKey maps a logical key to the physical key used against the store.
// The reserved badge-cache key is never user-scoped. Before a user is known,
// every key passes through unscoped.
func (s *State) DeriveKey(logicalKey string) string {
	if logicalKey == model.BadgeCacheKey {
		if s.badgeCacheKey != "" {
			return s.badgeCacheKey
		}
		return logicalKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hasUser {
		return logicalKey + "_" + s.userID
	}
	return logicalKey
}

// Get reads the value stored under logicalKey for the active user. A missing
// entry surfaces as model.ErrNotFound; store faults propagate unwrapped.
func (s *State) Get(ctx context.Context, logicalKey string) (string, error) {
	return s.store.Get(ctx, s.DeriveKey(logicalKey))
}

// Set writes value under logicalKey for the active user, overwriting any
// existing entry.
func (s *State) Set(ctx context.Context, logicalKey string, value string) error {
	return s.store.Set(ctx, s.DeriveKey(logicalKey), value)
}

// Remove deletes the entry under logicalKey for the active user. Removing an
// absent entry is not an error.
func (s *State) Remove(ctx context.Context, logicalKey string) error {
	return s.store.Remove(ctx, s.DeriveKey(logicalKey))
}

// ClearForActiveUser deletes every entry scoped to the active user and
// returns the number deleted. Entries belonging to other users and unscoped
// legacy entries are left untouched. With no active user it deletes nothing
// and returns zero.
func (s *State) ClearForActiveUser(ctx context.Context) (int, error) {
	id, ok := s.ActiveUser()
	if !ok {
		s.logger.Warn("clear requested with no active user, nothing deleted")
		return 0, nil
	}

	keys, err := s.store.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list keys: %w", err)
	}

	suffix := "_" + id
	deleted := 0
	for _, key := range keys {
		if !strings.HasSuffix(key, suffix) {
			continue
		}
		if err := s.store.Remove(ctx, key); err != nil {
			return deleted, fmt.Errorf("failed to remove %q: %w", key, err)
		}
		deleted++
	}

	s.logger.Debug("cleared user entries", "user_id", id, "deleted", deleted)
	return deleted, nil
}
