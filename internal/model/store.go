package model

import "context"

// Store defines persistence operations over flat string key/value entries.
// Values are opaque; callers handle their own serialization.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, overwriting any existing entry.
	Set(ctx context.Context, key string, value string) error
	// Remove deletes the entry under key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys returns a snapshot of every key currently in the store.
	Keys(ctx context.Context) ([]string, error)
}
