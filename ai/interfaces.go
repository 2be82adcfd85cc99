package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// scoring. Implementations must be safe for concurrent use.
type Embedder interface {
	// EmbedText generates an embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple texts in one batch,
	// returned in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
