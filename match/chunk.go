package match

import (
	"strings"
	"unicode/utf8"
)

// Default chunking parameters for lyrics-length documents.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 100
)

var sentenceEnders = []string{". ", "! ", "? ", "\n"}

// ChunkText splits text into overlapping windows of at most chunkSize
// characters. Texts no longer than chunkSize come back as a single chunk,
// unchanged. Each window tries to end on a sentence boundary: the cut
// retreats to the last sentence-ending delimiter inside the window, but
// only when that lands past half the window, so chunks never shrink below
// half-size. Consecutive chunks share overlap characters. Chunks are
// trimmed of surrounding whitespace.
//
// Assumes overlap < chunkSize; the walk strictly advances under that
// assumption.
func ChunkText(text string, chunkSize, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := runeBoundary(text, start+chunkSize)

		if end < len(text) {
			for _, sep := range sentenceEnders {
				idx := strings.LastIndex(text[start:end], sep)
				if float64(idx) > float64(chunkSize)*0.5 {
					end = start + idx + len(sep)
					break
				}
			}
		}

		sliceEnd := end
		if sliceEnd > len(text) {
			sliceEnd = len(text)
		}
		chunks = append(chunks, strings.TrimSpace(text[start:sliceEnd]))

		start = runeBoundary(text, end-overlap)
	}

	return chunks
}

// runeBoundary backs i off to the nearest rune start at or before i, so a
// slice at i never cuts through a multibyte character.
func runeBoundary(s string, i int) int {
	if i >= len(s) {
		return i
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
