package compare

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/versine/lyricmatch/ai/mock"
	"github.com/versine/lyricmatch/cache"
	"github.com/versine/lyricmatch/core"
	"github.com/versine/lyricmatch/match"
	"github.com/versine/lyricmatch/mood"
)

func newTestComparator(t *testing.T, embedder *mock.Embedder) *Comparator {
	t.Helper()

	store, err := cache.NewMemoryStore(time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	matcher, err := match.NewMatcher(embedder, store)
	require.NoError(t, err)
	t.Cleanup(matcher.Release)

	comparator, err := NewComparator(matcher, mood.NewAnalyzer(nil))
	require.NoError(t, err)
	return comparator
}

// bagOfWords embeds text as term counts over a fixed vocabulary so the
// tests control similarity precisely.
func bagOfWords(vocabulary []string) func(context.Context, string) ([]float32, error) {
	return func(_ context.Context, text string) ([]float32, error) {
		lower := strings.ToLower(text)
		vector := make([]float32, len(vocabulary))
		for i, word := range vocabulary {
			vector[i] = float32(strings.Count(lower, word))
		}
		return vector, nil
	}
}

func TestNewComparator(t *testing.T) {
	t.Run("requires a matcher", func(t *testing.T) {
		_, err := NewComparator(nil, mood.NewAnalyzer(nil))
		assert.ErrorIs(t, err, ErrMatcherRequired)
	})

	t.Run("requires an analyzer", func(t *testing.T) {
		store, err := cache.NewMemoryStore(time.Hour)
		require.NoError(t, err)
		defer store.Close()
		matcher, err := match.NewMatcher(mock.NewEmbedder(), store)
		require.NoError(t, err)
		defer matcher.Release()

		_, err = NewComparator(matcher, nil)
		assert.ErrorIs(t, err, ErrAnalyzerRequired)
	})
}

func TestCompare(t *testing.T) {
	sad1 := &core.Song{
		Id:     "1",
		Title:  "Lacrime",
		Artist: "Artista Uno",
		Lyrics: "Lacrime scendono piano sul viso\nIl dolore non passa mai davvero\nSolitudine dentro questa stanza vuota",
	}
	sad2 := &core.Song{
		Id:     "2",
		Title:  "Addio",
		Artist: "Artista Due",
		Lyrics: "Un addio pieno di lacrime amare\nQuesto dolore mi accompagna sempre\nRimango in perfetta solitudine stasera",
	}
	party := &core.Song{
		Id:     "3",
		Title:  "Festa",
		Artist: "Artista Tre",
		Lyrics: "Stanotte si balla fino al mattino\nFesta grande, gioia e sorriso per tutti\nRidere insieme, felice davvero stasera",
	}

	t.Run("similar songs share themes and verses", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextFunc = bagOfWords([]string{"lacrime", "dolore", "solitudine", "festa", "gioia"})
		comparator := newTestComparator(t, embedder)

		result, err := comparator.Compare(context.Background(), sad1, sad2)
		require.NoError(t, err)

		assert.Greater(t, result.SemanticSimilarity, 0.8)
		assert.True(t, result.MoodComparison.MoodsMatch)
		assert.Equal(t, "sad", result.MoodComparison.Song1PrimaryMood)

		require.NotEmpty(t, result.CommonThemes)
		assert.Equal(t, "Triste", result.CommonThemes[0].Theme)
		assert.Contains(t, result.CommonThemes[0].Keywords, "lacrime")

		require.NotEmpty(t, result.VerseSimilarities)
		assert.LessOrEqual(t, len(result.VerseSimilarities), 5)
		for i := 1; i < len(result.VerseSimilarities); i++ {
			assert.GreaterOrEqual(t, result.VerseSimilarities[i-1].Score, result.VerseSimilarities[i].Score)
		}

		assert.Greater(t, result.VocabularyOverlap, 0.0)
		assert.Contains(t, result.SharedKeywords, "lacrime")
	})

	t.Run("dissimilar songs report differences", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextFunc = bagOfWords([]string{"lacrime", "dolore", "solitudine", "festa", "gioia"})
		comparator := newTestComparator(t, embedder)

		result, err := comparator.Compare(context.Background(), sad1, party)
		require.NoError(t, err)

		assert.False(t, result.MoodComparison.MoodsMatch)
		assert.Empty(t, result.CommonThemes)

		require.NotEmpty(t, result.Differences)
		assert.Contains(t, result.Differences[0], "Different mood")
	})

	t.Run("missing lyrics score zero", func(t *testing.T) {
		comparator := newTestComparator(t, mock.NewEmbedder())

		empty := &core.Song{Id: "4", Title: "Strumentale", Artist: "X"}
		result, err := comparator.Compare(context.Background(), sad1, empty)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.SemanticSimilarity)
		assert.Empty(t, result.VerseSimilarities)
	})

	t.Run("much longer lyrics are flagged", func(t *testing.T) {
		comparator := newTestComparator(t, mock.NewEmbedder())

		long := &core.Song{
			Id:     "5",
			Title:  "Lunga",
			Artist: "Artista Uno",
			Lyrics: strings.Repeat("parole e ancora parole senza fine\n", 30),
		}
		result, err := comparator.Compare(context.Background(), sad1, long)
		require.NoError(t, err)

		var flagged bool
		for _, diff := range result.Differences {
			if strings.Contains(diff, "Lunga") && strings.Contains(diff, "longer") {
				flagged = true
			}
		}
		assert.True(t, flagged)
	})
}

func TestSimilarityLevel(t *testing.T) {
	levels := []struct {
		score float64
		level string
	}{
		{0.85, "very similar"},
		{0.65, "similar"},
		{0.45, "moderately similar"},
		{0.25, "slightly similar"},
		{0.1, "very different"},
	}
	for _, tc := range levels {
		r := &core.ComparisonResult{SemanticSimilarity: tc.score}
		assert.Equal(t, tc.level, r.SimilarityLevel())
	}
}

func TestCompareMultiple(t *testing.T) {
	songs := []*core.Song{
		{Id: "1", Title: "A", Artist: "X", Lyrics: "lacrime dolore lacrime dolore profondo"},
		{Id: "2", Title: "B", Artist: "Y", Lyrics: "lacrime dolore lacrime sincero dolore"},
		{Id: "3", Title: "C", Artist: "Z", Lyrics: "festa gioia ballare sorriso tutta la notte"},
	}

	embedder := mock.NewEmbedder()
	embedder.EmbedTextFunc = bagOfWords([]string{"lacrime", "dolore", "festa", "gioia"})

	t.Run("fewer than two songs is an error", func(t *testing.T) {
		comparator := newTestComparator(t, embedder)
		_, err := comparator.CompareMultiple(context.Background(), songs[:1])
		assert.ErrorIs(t, err, ErrTooFewSongs)
	})

	t.Run("matrix is symmetric with zero diagonal", func(t *testing.T) {
		comparator := newTestComparator(t, embedder)
		result, err := comparator.CompareMultiple(context.Background(), songs)
		require.NoError(t, err)

		require.Len(t, result.SimilarityMatrix, 3)
		for i := 0; i < 3; i++ {
			assert.Equal(t, 0.0, result.SimilarityMatrix[i][i])
			for j := 0; j < 3; j++ {
				assert.Equal(t, result.SimilarityMatrix[i][j], result.SimilarityMatrix[j][i])
			}
		}
	})

	t.Run("identifies closest and most distant pairs", func(t *testing.T) {
		comparator := newTestComparator(t, embedder)
		result, err := comparator.CompareMultiple(context.Background(), songs)
		require.NoError(t, err)

		assert.Equal(t, "A", result.MostSimilarPair.Song1)
		assert.Equal(t, "B", result.MostSimilarPair.Song2)
		assert.Greater(t, result.MostSimilarPair.Score, result.MostDifferentPair.Score)
		assert.Greater(t, result.AverageSimilarity, 0.0)
	})
}
