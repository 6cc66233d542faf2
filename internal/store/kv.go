package store

import "context"

// KV is the minimal key-value contract the store adapter runs on.
// Both the embedded sqlite backend and the postgres backend implement it.
type KV interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the value under key, replacing any existing value
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Reset removes all keys
	Reset(ctx context.Context) error
	// Close releases backend resources
	Close() error
}
