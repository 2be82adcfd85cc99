package match

import (
	"context"
	"log/slog"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/versine/lyricmatch/ai"
	"github.com/versine/lyricmatch/cache"
	"github.com/versine/lyricmatch/core"
)

// DefaultExcerptLength bounds the relevant-excerpt string on results.
const DefaultExcerptLength = 200

// Matcher scores songs against free text using embeddings.
// Construct one per process and share it; it owns the embedding cache
// reference and a worker pool for concurrent chunk embedding.
type Matcher struct {
	embedder      ai.Embedder
	store         cache.Store
	pool          *ants.Pool
	defaultLimit  int
	minRelevance  float64
	chunkSize     int
	chunkOverlap  int
	excerptLength int
	logger        *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent chunk embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithDefaultLimit sets the result count used when a caller passes a
// non-positive limit.
func WithDefaultLimit(limit int) Option {
	return func(m *Matcher) error {
		if limit > 0 {
			m.defaultLimit = limit
		}
		return nil
	}
}

// WithMinRelevance sets the global relevance threshold applied by
// FindBestMatchesMultiQuery.
func WithMinRelevance(score float64) Option {
	return func(m *Matcher) error {
		m.minRelevance = score
		return nil
	}
}

// WithChunking overrides the chunk size and overlap used for long texts.
func WithChunking(size, overlap int) Option {
	return func(m *Matcher) error {
		if size > 0 && overlap >= 0 && overlap < size {
			m.chunkSize = size
			m.chunkOverlap = overlap
		}
		return nil
	}
}

// WithExcerptLength overrides the maximum excerpt length on results.
func WithExcerptLength(length int) Option {
	return func(m *Matcher) error {
		if length > 0 {
			m.excerptLength = length
		}
		return nil
	}
}

// NewMatcher creates a matcher over the given embedder and cache.
func NewMatcher(embedder ai.Embedder, store cache.Store, opts ...Option) (*Matcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if store == nil {
		return nil, ErrCacheRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		embedder:      embedder,
		store:         store,
		pool:          pool,
		defaultLimit:  5,
		minRelevance:  0.3,
		chunkSize:     DefaultChunkSize,
		chunkOverlap:  DefaultChunkOverlap,
		excerptLength: DefaultExcerptLength,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.Release()
			return nil, err
		}
	}

	return m, nil
}

// Release frees the worker pool. The matcher must not be used afterwards.
func (m *Matcher) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}

// embed returns the embedding for text, consulting the cache first.
func (m *Matcher) embed(ctx context.Context, text string) ([]float32, error) {
	if vector, ok := m.store.Get(text); ok {
		return vector, nil
	}

	vector, err := m.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(text, vector); err != nil {
		// Cache writes are best-effort; scoring proceeds without them.
		m.logger.Warn("failed to cache embedding", "err", err)
	}
	return vector, nil
}

// ComputeSimilarity scores query against text and returns the score
// together with the most relevant excerpt. Empty text scores 0 with an
// empty excerpt, without touching the embedder. Long texts are chunked;
// the best-scoring chunk wins, earliest chunk on ties.
func (m *Matcher) ComputeSimilarity(ctx context.Context, query, text string) (float64, string, error) {
	if text == "" {
		return 0, "", nil
	}

	queryVector, err := m.embed(ctx, query)
	if err != nil {
		return 0, "", err
	}

	chunks := ChunkText(text, m.chunkSize, m.chunkOverlap)

	scores := make([]float64, len(chunks))
	errs := make([]error, len(chunks))

	if len(chunks) == 1 {
		vector, err := m.embed(ctx, chunks[0])
		if err != nil {
			return 0, "", err
		}
		scores[0] = Cosine(queryVector, vector)
	} else {
		var wg sync.WaitGroup
		for i, chunk := range chunks {
			wg.Add(1)
			submitErr := m.pool.Submit(func() {
				defer wg.Done()
				vector, err := m.embed(ctx, chunk)
				if err != nil {
					errs[i] = err
					return
				}
				scores[i] = Cosine(queryVector, vector)
			})
			if submitErr != nil {
				wg.Done()
				errs[i] = submitErr
			}
		}
		wg.Wait()
	}

	bestScore := 0.0
	bestChunk := ""
	for i := range chunks {
		if errs[i] != nil {
			return 0, "", errs[i]
		}
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestChunk = chunks[i]
		}
	}

	return bestScore, core.TruncateText(bestChunk, m.excerptLength), nil
}

// TextSimilarity scores two texts directly against each other, embedding
// each whole (no chunking, no excerpt seeking). The score is floored at
// zero. Either text being empty scores 0 without an embedding call.
func (m *Matcher) TextSimilarity(ctx context.Context, text1, text2 string) (float64, error) {
	if text1 == "" || text2 == "" {
		return 0, nil
	}

	vector1, err := m.embed(ctx, text1)
	if err != nil {
		return 0, err
	}
	vector2, err := m.embed(ctx, text2)
	if err != nil {
		return 0, err
	}

	return ClampScore(Cosine(vector1, vector2)), nil
}

// FindSimilarSongs ranks songs by similarity of their cleaned lyrics to
// the query. Songs without lyrics are skipped, as is any song whose
// scoring fails (logged, never aborts the batch). Results at or above
// minScore are sorted by descending score — ties keep input order — and
// truncated to limit. A non-positive limit falls back to the configured
// default.
func (m *Matcher) FindSimilarSongs(ctx context.Context, query string, songs []*core.Song, limit int, minScore float64) []*core.MatchResult {
	if limit <= 0 {
		limit = m.defaultLimit
	}

	m.logger.Info("semantic matching", "query", core.TruncateText(query, 50), "songs", len(songs))

	results := make([]*core.MatchResult, 0, len(songs))

	for _, song := range songs {
		if song.Lyrics == "" {
			m.logger.Debug("skipping song without lyrics", "title", song.Title)
			continue
		}

		score, excerpt, err := m.ComputeSimilarity(ctx, query, song.CleanedLyrics())
		if err != nil {
			m.logger.Warn("scoring failed, skipping song", "title", song.Title, "err", err)
			continue
		}

		if score >= minScore {
			results = append(results, &core.MatchResult{
				Song:             song,
				Score:            score,
				RelevantExcerpt:  excerpt,
				MatchedSentences: []string{},
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	m.logger.Info("matching done", "hits", len(results), "minScore", minScore)

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// FindBestMatchesMultiQuery ranks songs against several query variants at
// once. Each query is scored unthresholded against every song; a song's
// final score is the mean over the queries where it produced a result. A
// song that dropped out of one query's pass (scoring failure) simply does
// not contribute that query to its mean — missing queries are not
// zero-filled. The merged list is filtered by the configured minimum
// relevance, sorted descending, and truncated to limit.
func (m *Matcher) FindBestMatchesMultiQuery(ctx context.Context, queries []string, songs []*core.Song, limit int) []*core.MatchResult {
	if limit <= 0 {
		limit = m.defaultLimit
	}

	type aggregate struct {
		result *core.MatchResult
		scores []float64
	}

	bySong := make(map[string]*aggregate)
	var order []string

	for _, query := range queries {
		results := m.FindSimilarSongs(ctx, query, songs, len(songs), 0.0)
		for _, result := range results {
			agg, ok := bySong[result.Song.Id]
			if !ok {
				agg = &aggregate{result: result}
				bySong[result.Song.Id] = agg
				order = append(order, result.Song.Id)
			}
			agg.scores = append(agg.scores, result.Score)
		}
	}

	final := make([]*core.MatchResult, 0, len(order))
	for _, id := range order {
		agg := bySong[id]

		var sum float64
		for _, s := range agg.scores {
			sum += s
		}
		avg := sum / float64(len(agg.scores))

		if avg >= m.minRelevance {
			agg.result.Score = avg
			final = append(final, agg.result)
		}
	}

	sort.SliceStable(final, func(i, j int) bool {
		return final[i].Score > final[j].Score
	})

	if len(final) > limit {
		final = final[:limit]
	}
	return final
}

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// ExtractKeyPhrases reduces a long text to its topK most representative
// sentences. Candidates shorter than 11 characters are discarded; when the
// remaining candidates already fit topK they are returned as-is, skipping
// all embedding work. Otherwise each candidate is scored against the
// embedding of the full text and the best topK win, original casing and
// punctuation preserved.
func (m *Matcher) ExtractKeyPhrases(ctx context.Context, text string, topK int) ([]string, error) {
	var sentences []string
	for _, part := range sentenceSplitter.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 10 {
			sentences = append(sentences, part)
		}
	}

	if len(sentences) <= topK {
		return sentences, nil
	}

	textVector, err := m.embed(ctx, text)
	if err != nil {
		return nil, err
	}

	type scored struct {
		sentence string
		score    float64
	}
	candidates := make([]scored, 0, len(sentences))
	for _, sentence := range sentences {
		vector, err := m.embed(ctx, sentence)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, scored{sentence, Cosine(textVector, vector)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	phrases := make([]string, topK)
	for i := 0; i < topK; i++ {
		phrases[i] = candidates[i].sentence
	}
	return phrases, nil
}

// ClearCache drops every cached embedding.
func (m *Matcher) ClearCache() error {
	m.logger.Info("clearing embedding cache")
	return m.store.Clear()
}
