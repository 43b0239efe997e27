// Package storage abstracts the durable key-value medium the store persists
// into. Each collection lives under one stable key as a JSON document; the
// backends only move opaque bytes.
package storage

import "context"

// ErrKeyNotFound is returned by Get when the key has never been written or
// has been removed.
type notFoundError struct{ key string }

func (e *notFoundError) Error() string { return "key not found: " + e.key }

// ErrNotFound reports whether err is a missing-key error.
func ErrNotFound(err error) bool {
	_, ok := err.(*notFoundError)
	return ok
}

// NewNotFound builds a missing-key error for the given key.
func NewNotFound(key string) error { return &notFoundError{key: key} }

// Storage is the injected key-value medium. Implementations must be safe for
// use from a single goroutine; the store serializes access itself.
type Storage interface {
	// Get returns the value stored under key, or an error satisfying
	// ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Ping verifies the medium is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
