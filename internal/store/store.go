// Package store provides durable key-value persistence for engine state, most
// importantly the search history. Consumers depend on the Store interface
// rather than a concrete backend, so deployments can choose SQLite, memory, or
// anything else with get/set/remove semantics.
package store

import (
	"context"
	"errors"
)

// HistoryKey is the key under which the engine persists its search history.
// The value is a JSON-encoded array of raw query strings, most-recent-first,
// capped at the engine's history limit.
const HistoryKey = "search-history"

// ErrNotFound indicates the requested key has no stored value. Callers should
// check for this to distinguish an absent key from a real failure.
var ErrNotFound = errors.New("key not found")

// Store defines the persistence interface for engine key-value state.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
