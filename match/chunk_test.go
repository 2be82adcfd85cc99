package match

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText(t *testing.T) {
	t.Run("short text is a single chunk", func(t *testing.T) {
		text := "short text under the limit"
		chunks := ChunkText(text, DefaultChunkSize, DefaultChunkOverlap)
		require.Len(t, chunks, 1)
		assert.Equal(t, text, chunks[0])
	})

	t.Run("exact chunk size is a single chunk", func(t *testing.T) {
		text := strings.Repeat("a", DefaultChunkSize)
		chunks := ChunkText(text, DefaultChunkSize, DefaultChunkOverlap)
		require.Len(t, chunks, 1)
		assert.Equal(t, text, chunks[0])
	})

	t.Run("long text produces multiple bounded chunks", func(t *testing.T) {
		text := strings.Repeat("x", 1200)
		chunks := ChunkText(text, 500, 100)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 500)
			assert.NotEmpty(t, chunk)
		}
	})

	t.Run("separator-free text keeps fixed stride", func(t *testing.T) {
		text := strings.Repeat("y", 1000)
		chunks := ChunkText(text, 500, 100)
		// No sentence boundaries, so windows advance by size-overlap: 400.
		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 500)
		assert.Len(t, chunks[1], 500)
		assert.Len(t, chunks[2], 200)
	})

	t.Run("prefers sentence boundaries past half the window", func(t *testing.T) {
		sentence := strings.Repeat("w", 398) + ". "
		text := sentence + sentence + strings.Repeat("w", 100)
		chunks := ChunkText(text, 500, 100)
		require.Greater(t, len(chunks), 1)
		// The boundary at offset 400 sits past half the window, so the
		// first chunk ends there (trailing space trimmed).
		assert.Equal(t, strings.Repeat("w", 398)+".", chunks[0])
	})

	t.Run("accented text never splits a rune", func(t *testing.T) {
		// One leading ASCII byte shifts every two-byte "è" off the window
		// edges, so a byte-indexed cut would land mid-rune.
		text := "a" + strings.Repeat("è", 300)
		chunks := ChunkText(text, 500, 100)
		require.Greater(t, len(chunks), 1)

		total := 0
		for i, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk), "chunk %d", i)
			total += len(chunk)
		}
		assert.GreaterOrEqual(t, total, len(text))
	})

	t.Run("every character is covered", func(t *testing.T) {
		text := strings.Repeat("z", 950)
		chunks := ChunkText(text, 500, 100)
		total := 0
		for _, chunk := range chunks {
			total += len(chunk)
		}
		// Overlap means the sum exceeds the input, never undershoots.
		assert.GreaterOrEqual(t, total, len(text))
	})
}
