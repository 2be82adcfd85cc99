package cache

// Store is the embedding cache contract consumed by the matching engine.
// Implementations must be safe for concurrent callers.
type Store interface {
	// Get returns the cached vector for text, or false when no live entry
	// exists. Expired or unreadable entries are purged and reported absent.
	Get(text string) ([]float32, bool)

	// Set stores the vector for text, stamping it with the current time.
	Set(text string, vector []float32) error

	// Clear removes every entry.
	Clear() error

	// CleanupExpired removes all expired entries and reports how many were
	// dropped.
	CleanupExpired() (int, error)

	// Close releases the underlying storage.
	Close() error
}
