// Package kv provides the key-value persistence port the submission store
// snapshots itself through, plus Redis-backed and in-memory implementations.
package kv

import "context"

// Store is a minimal key-value persistence port.
type Store interface {
	// Load returns the value for key; found is false when the key is absent.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	// Save writes value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
