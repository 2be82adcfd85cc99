// Copyright 2025 Versine Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verse

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/versine/lyricmatch/core"
	"github.com/versine/lyricmatch/match"
)

// Search parameter defaults.
const (
	DefaultMinSimilarity = 0.5
	DefaultLimit         = 20
	DefaultContextLines  = 2
)

// ErrMatcherRequired is returned when no matcher is provided.
var ErrMatcherRequired = errors.New("matcher required")

// SearchResult is the outcome of a verse search across a song collection.
type SearchResult struct {
	Query              string
	Matches            []*core.VerseMatch
	TotalSongsSearched int
	SearchType         string
}

// Searcher finds individual lyric lines matching a query.
type Searcher struct {
	matcher *match.Matcher
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSearcher creates a verse searcher. The matcher is only consulted for
// Semantic mode but is required regardless, so a searcher never fails at
// query time for lack of one.
func NewSearcher(matcher *match.Matcher, opts ...Option) (*Searcher, error) {
	if matcher == nil {
		return nil, ErrMatcherRequired
	}
	s := &Searcher{
		matcher: matcher,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SearchVerse looks for the query in every content line of every song,
// using the given mode. Lines scoring at least minSimilarity are collected,
// sorted by descending score (ties keep scan order) and truncated to limit.
// A negative minSimilarity and non-positive limit or contextLines fall back
// to the package defaults; zero minSimilarity accepts every line.
func (s *Searcher) SearchVerse(ctx context.Context, query string, songs []*core.Song, mode MatchMode, minSimilarity float64, limit, contextLines int) (*SearchResult, error) {
	if minSimilarity < 0 {
		minSimilarity = DefaultMinSimilarity
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}

	s.logger.Info("verse search",
		"query", core.TruncateText(query, 50),
		"songs", len(songs),
		"mode", mode.String())

	var matches []*core.VerseMatch
	for _, song := range songs {
		if song.Lyrics == "" {
			continue
		}
		songMatches, err := s.searchInSong(ctx, query, song, mode, minSimilarity, contextLines)
		if err != nil {
			return nil, err
		}
		matches = append(matches, songMatches...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return &SearchResult{
		Query:              query,
		Matches:            matches,
		TotalSongsSearched: len(songs),
		SearchType:         mode.String(),
	}, nil
}

// SearchMultiple runs SearchVerse for each query, keyed by query.
func (s *Searcher) SearchMultiple(ctx context.Context, queries []string, songs []*core.Song, mode MatchMode, minSimilarity float64) (map[string]*SearchResult, error) {
	results := make(map[string]*SearchResult, len(queries))
	for _, query := range queries {
		result, err := s.SearchVerse(ctx, query, songs, mode, minSimilarity, 0, 0)
		if err != nil {
			return nil, err
		}
		results[query] = result
	}
	return results, nil
}

// FindSimilarVerses returns the topK lines semantically closest to the
// given verse, with a permissive 0.3 threshold.
func (s *Searcher) FindSimilarVerses(ctx context.Context, verse string, songs []*core.Song, topK int) ([]*core.VerseMatch, error) {
	if topK <= 0 {
		topK = 10
	}
	result, err := s.SearchVerse(ctx, verse, songs, Semantic, 0.3, topK, 0)
	if err != nil {
		return nil, err
	}
	return result.Matches, nil
}

// searchInSong scans one song's lines. Section headers update the current
// section and are never matched themselves; blank lines are skipped but
// keep their place in line numbering.
func (s *Searcher) searchInSong(ctx context.Context, query string, song *core.Song, mode MatchMode, minSimilarity float64, contextLines int) ([]*core.VerseMatch, error) {
	lines := strings.Split(song.Lyrics, "\n")
	section := ""

	var matches []*core.VerseMatch
	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		if detected := detectSection(clean); detected != "" {
			section = detected
			continue
		}

		var score float64
		switch mode {
		case Exact:
			if strings.Contains(strings.ToLower(clean), strings.ToLower(query)) {
				score = 1.0
			}
		case Fuzzy:
			score = fuzzyMatch(query, clean)
		case Semantic:
			var err error
			score, err = s.matcher.TextSimilarity(ctx, query, clean)
			if err != nil {
				return nil, err
			}
		}

		if score < minSimilarity {
			continue
		}

		matches = append(matches, &core.VerseMatch{
			Song:          song,
			MatchedLine:   clean,
			LineNumber:    i + 1,
			Section:       section,
			Score:         score,
			MatchType:     mode.String(),
			ContextBefore: contextWindow(lines, i-contextLines, i),
			ContextAfter:  contextWindow(lines, i+1, i+contextLines+1),
		})
	}
	return matches, nil
}

// contextWindow collects the content lines in lines[from:to), skipping
// blanks and section headers.
func contextWindow(lines []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(lines) {
		to = len(lines)
	}

	var window []string
	for _, line := range lines[from:to] {
		clean := strings.TrimSpace(line)
		if clean == "" || detectSection(clean) != "" {
			continue
		}
		window = append(window, clean)
	}
	return window
}

// fuzzyMatch blends character-level string similarity with word overlap:
// the mean of the Jaro-Winkler ratio and the fraction of query words
// present in the line.
func fuzzyMatch(query, line string) float64 {
	queryLower := strings.ToLower(query)
	lineLower := strings.ToLower(line)

	ratio := smetrics.JaroWinkler(queryLower, lineLower, 0.7, 4)

	queryWords := strings.Fields(queryLower)
	if len(queryWords) == 0 {
		return ratio
	}

	lineWords := make(map[string]struct{})
	for _, w := range strings.Fields(lineLower) {
		lineWords[w] = struct{}{}
	}

	common := 0
	seen := make(map[string]struct{})
	for _, w := range queryWords {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := lineWords[w]; ok {
			common++
		}
	}

	overlap := float64(common) / float64(len(seen))
	return (ratio + overlap) / 2
}
