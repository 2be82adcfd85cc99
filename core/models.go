package core

import "sync"

// Song represents a song with its metadata and lyrics.
// Instances are populated by a lyrics source (see the genius package) and
// treated as read-only by the matching and comparison components.
type Song struct {
	Id           string
	Title        string
	Artist       string
	Lyrics       string
	URL          string
	ThumbnailURL string
	ReleaseDate  string

	mu          sync.Mutex
	cleaned     string
	cleanedFrom string
}

// CleanedLyrics returns the lyrics with section annotations, repeat markers
// and surplus whitespace removed. The cleaned text is computed on first use
// and memoized; if Lyrics has changed since, it is recomputed rather than
// served stale.
func (s *Song) CleanedLyrics() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Lyrics == "" {
		return ""
	}
	if s.cleaned == "" || s.cleanedFrom != s.Lyrics {
		s.cleaned = CleanLyrics(s.Lyrics)
		s.cleanedFrom = s.Lyrics
	}
	return s.cleaned
}

// MatchResult is a single ranked hit from a lyrics search.
type MatchResult struct {
	Song             *Song
	Score            float64 // cosine similarity, clamped to [0,1]
	RelevantExcerpt  string  // most relevant chunk of the lyrics, truncated
	MatchedSentences []string
}

// ThemeMatch represents a theme shared between songs, derived from mood
// keyword analysis.
type ThemeMatch struct {
	Theme    string
	Keywords []string
	Songs    []string // titles of the songs carrying the theme
	Strength float64
}

// VersePair is a pair of lines from two songs with their similarity score.
type VersePair struct {
	Verse1 string
	Verse2 string
	Score  float64
}

// MoodComparison summarizes the mood analysis of two songs side by side.
type MoodComparison struct {
	Song1PrimaryMood string
	Song2PrimaryMood string
	MoodsMatch       bool
	Song1Confidence  float64
	Song2Confidence  float64
	Song1TopMoods    map[string]float64 // top three mood scores
	Song2TopMoods    map[string]float64
}

// ComparisonResult is the detailed outcome of comparing two songs.
type ComparisonResult struct {
	Song1              *Song
	Song2              *Song
	SemanticSimilarity float64
	VerseSimilarities  []VersePair
	CommonThemes       []ThemeMatch
	MoodComparison     MoodComparison
	VocabularyOverlap  float64 // Jaccard similarity over meaningful words
	SharedKeywords     []string
	Differences        []string
}

// SimilarityLevel returns a human-readable description of the overall
// semantic similarity.
func (r *ComparisonResult) SimilarityLevel() string {
	switch {
	case r.SemanticSimilarity >= 0.8:
		return "very similar"
	case r.SemanticSimilarity >= 0.6:
		return "similar"
	case r.SemanticSimilarity >= 0.4:
		return "moderately similar"
	case r.SemanticSimilarity >= 0.2:
		return "slightly similar"
	default:
		return "very different"
	}
}

// SongPair names two songs and their similarity score.
type SongPair struct {
	Song1 string
	Song2 string
	Score float64
}

// MultiComparisonResult is the outcome of comparing several songs at once.
// The similarity matrix is symmetric with an untouched zero diagonal.
type MultiComparisonResult struct {
	Songs             []*Song
	SimilarityMatrix  [][]float64
	CommonThemes      []ThemeMatch
	MostSimilarPair   SongPair
	MostDifferentPair SongPair
	AverageSimilarity float64
}

// VerseMatch is a single line hit from a verse search.
type VerseMatch struct {
	Song          *Song
	MatchedLine   string
	LineNumber    int // 1-based position in the raw lyrics
	Section       string
	Score         float64
	MatchType     string // "exact", "fuzzy" or "semantic"
	ContextBefore []string
	ContextAfter  []string
}

// Verse is one content line of a song with its position and section.
type Verse struct {
	LineNumber int
	Text       string
	Section    string
}

// VerseStatistics aggregates line-level metrics for a single song.
type VerseStatistics struct {
	TotalVerses   int
	AverageLength float64
	MaxLength     int
	MinLength     int
	AverageWords  float64
	Sections      map[string]int
	RepeatedLines int
	UniqueLines   int
}
