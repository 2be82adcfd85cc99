package match

import "errors"

var (
	// ErrEmbedderRequired is returned when no embedder is provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrCacheRequired is returned when no embedding cache is provided.
	ErrCacheRequired = errors.New("embedding cache required")
)
