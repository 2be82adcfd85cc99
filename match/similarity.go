package match

import "math"

// Cosine returns the cosine similarity of two vectors: the dot product
// normalized by both magnitudes. Zero-magnitude or empty vectors score 0
// rather than dividing by zero. Vectors of unequal length are compared
// over their shared prefix.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ClampScore floors a similarity score at zero. Negative cosine similarity
// carries no useful relevance meaning for ranking, so surfaced scores live
// in [0,1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	return score
}
