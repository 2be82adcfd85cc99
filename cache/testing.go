package cache

import "time"

// NewMemoryStore creates an in-memory embedding cache for testing.
// The caller must close it when done.
func NewMemoryStore(expiry time.Duration, opts ...Option) (*BadgerStore, error) {
	return OpenStore("", expiry, true, opts...)
}
