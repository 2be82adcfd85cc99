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

package compare

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/versine/lyricmatch/core"
	"github.com/versine/lyricmatch/match"
	"github.com/versine/lyricmatch/mood"
)

const (
	// versePairThreshold is the minimum similarity for a verse pair to be
	// reported.
	versePairThreshold = 0.3

	// maxVersesPerSide caps how many lines of each song take part in the
	// pairwise verse scan.
	maxVersesPerSide = 30

	// topVersePairs is how many verse pairs a comparison reports.
	topVersePairs = 5
)

// Comparator compares songs pairwise or in groups. It leans on a shared
// Matcher for semantic scores and a mood Analyzer for theme detection.
type Comparator struct {
	matcher  *match.Matcher
	analyzer *mood.Analyzer
	logger   *slog.Logger
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Comparator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewComparator creates a comparator over the given matcher and analyzer.
func NewComparator(matcher *match.Matcher, analyzer *mood.Analyzer, opts ...Option) (*Comparator, error) {
	if matcher == nil {
		return nil, ErrMatcherRequired
	}
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}

	c := &Comparator{
		matcher:  matcher,
		analyzer: analyzer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Compare produces a full pairwise comparison of two songs.
func (c *Comparator) Compare(ctx context.Context, song1, song2 *core.Song) (*core.ComparisonResult, error) {
	c.logger.Info("comparing songs", "song1", song1.Title, "song2", song2.Title)

	semantic, err := c.semanticSimilarity(ctx, song1, song2)
	if err != nil {
		return nil, fmt.Errorf("semantic similarity: %w", err)
	}

	versePairs, err := c.compareVerses(ctx, song1, song2)
	if err != nil {
		return nil, fmt.Errorf("verse comparison: %w", err)
	}

	moodComparison := c.compareMoods(song1, song2)
	overlap, sharedKeywords := vocabularyOverlap(song1.Lyrics, song2.Lyrics)

	return &core.ComparisonResult{
		Song1:              song1,
		Song2:              song2,
		SemanticSimilarity: semantic,
		VerseSimilarities:  versePairs,
		CommonThemes:       c.commonThemes(song1, song2),
		MoodComparison:     moodComparison,
		VocabularyOverlap:  overlap,
		SharedKeywords:     sharedKeywords,
		Differences:        c.identifyDifferences(song1, song2, moodComparison),
	}, nil
}

// CompareMultiple compares every pair in a group of songs and aggregates
// the results: a symmetric similarity matrix with a zero diagonal, the
// closest and most distant pair, the mean pairwise similarity, and the
// themes every song in the group shares.
func (c *Comparator) CompareMultiple(ctx context.Context, songs []*core.Song) (*core.MultiComparisonResult, error) {
	if len(songs) < 2 {
		return nil, ErrTooFewSongs
	}

	n := len(songs)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	var pairs []core.SongPair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim, err := c.semanticSimilarity(ctx, songs[i], songs[j])
			if err != nil {
				return nil, fmt.Errorf("comparing %q and %q: %w", songs[i].Title, songs[j].Title, err)
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
			pairs = append(pairs, core.SongPair{Song1: songs[i].Title, Song2: songs[j].Title, Score: sim})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	var total float64
	for _, p := range pairs {
		total += p.Score
	}

	return &core.MultiComparisonResult{
		Songs:             songs,
		SimilarityMatrix:  matrix,
		CommonThemes:      c.commonThemesAll(songs),
		MostSimilarPair:   pairs[0],
		MostDifferentPair: pairs[len(pairs)-1],
		AverageSimilarity: total / float64(len(pairs)),
	}, nil
}

// semanticSimilarity scores the two songs' full lyrics against each other.
// Either song missing lyrics scores 0.
func (c *Comparator) semanticSimilarity(ctx context.Context, song1, song2 *core.Song) (float64, error) {
	if song1.Lyrics == "" || song2.Lyrics == "" {
		return 0, nil
	}
	return c.matcher.TextSimilarity(ctx, song1.Lyrics, song2.Lyrics)
}

// candidateVerses returns the trimmed lines of the lyrics longer than ten
// characters, capped at maxVersesPerSide.
func candidateVerses(lyrics string) []string {
	var verses []string
	for _, line := range strings.Split(lyrics, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			verses = append(verses, line)
			if len(verses) == maxVersesPerSide {
				break
			}
		}
	}
	return verses
}

// compareVerses scans every line pair across the two songs and keeps the
// topVersePairs most similar ones above the threshold.
func (c *Comparator) compareVerses(ctx context.Context, song1, song2 *core.Song) ([]core.VersePair, error) {
	verses1 := candidateVerses(song1.Lyrics)
	verses2 := candidateVerses(song2.Lyrics)

	if len(verses1) == 0 || len(verses2) == 0 {
		return nil, nil
	}

	var pairs []core.VersePair
	for _, v1 := range verses1 {
		for _, v2 := range verses2 {
			sim, err := c.matcher.TextSimilarity(ctx, v1, v2)
			if err != nil {
				return nil, err
			}
			if sim > versePairThreshold {
				pairs = append(pairs, core.VersePair{Verse1: v1, Verse2: v2, Score: sim})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	if len(pairs) > topVersePairs {
		pairs = pairs[:topVersePairs]
	}
	return pairs, nil
}

// commonThemes finds the moods both songs register, keyed on keywords that
// appear in both texts. A theme's strength is the mean of the two mood
// scores. Strongest first, preset order on ties.
func (c *Comparator) commonThemes(song1, song2 *core.Song) []core.ThemeMatch {
	mood1 := c.analyzer.Analyze(song1.Lyrics)
	mood2 := c.analyzer.Analyze(song2.Lyrics)

	var themes []core.ThemeMatch
	for _, moodID := range c.analyzer.MoodIDs() {
		score1, ok1 := mood1.MoodScores[moodID]
		score2, ok2 := mood2.MoodScores[moodID]
		if !ok1 || !ok2 {
			continue
		}

		shared := intersectKeywords(mood1.KeywordsFound[moodID], mood2.KeywordsFound[moodID])
		if len(shared) == 0 {
			continue
		}

		preset, _ := c.analyzer.GetPreset(moodID)
		themes = append(themes, core.ThemeMatch{
			Theme:    preset.Name,
			Keywords: shared,
			Songs:    []string{song1.Title, song2.Title},
			Strength: (score1 + score2) / 2,
		})
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Strength > themes[j].Strength
	})
	return themes
}

// commonThemesAll finds moods present in every song of the group, with the
// union of the keywords found and the mean score as strength.
func (c *Comparator) commonThemesAll(songs []*core.Song) []core.ThemeMatch {
	results := make([]mood.Result, len(songs))
	titles := make([]string, len(songs))
	for i, song := range songs {
		results[i] = c.analyzer.Analyze(song.Lyrics)
		titles[i] = song.Title
	}

	var themes []core.ThemeMatch
	for _, moodID := range c.analyzer.MoodIDs() {
		var total float64
		var keywords []string
		seen := make(map[string]struct{})
		everywhere := true

		for _, result := range results {
			score, ok := result.MoodScores[moodID]
			if !ok {
				everywhere = false
				break
			}
			total += score
			for _, kw := range result.KeywordsFound[moodID] {
				if _, dup := seen[kw]; !dup {
					seen[kw] = struct{}{}
					keywords = append(keywords, kw)
				}
			}
		}
		if !everywhere {
			continue
		}

		preset, _ := c.analyzer.GetPreset(moodID)
		themes = append(themes, core.ThemeMatch{
			Theme:    preset.Name,
			Keywords: keywords,
			Songs:    titles,
			Strength: total / float64(len(songs)),
		})
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Strength > themes[j].Strength
	})
	return themes
}

// intersectKeywords returns the keywords present in both lists, preserving
// the first list's order.
func intersectKeywords(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, kw := range b {
		inB[kw] = struct{}{}
	}
	var out []string
	for _, kw := range a {
		if _, ok := inB[kw]; ok {
			out = append(out, kw)
		}
	}
	return out
}

// compareMoods analyzes both songs and summarizes the result side by side,
// keeping each song's top three mood scores.
func (c *Comparator) compareMoods(song1, song2 *core.Song) core.MoodComparison {
	mood1 := c.analyzer.Analyze(song1.Lyrics)
	mood2 := c.analyzer.Analyze(song2.Lyrics)

	return core.MoodComparison{
		Song1PrimaryMood: mood1.PrimaryMood,
		Song2PrimaryMood: mood2.PrimaryMood,
		MoodsMatch:       mood1.PrimaryMood == mood2.PrimaryMood,
		Song1Confidence:  mood1.Confidence,
		Song2Confidence:  mood2.Confidence,
		Song1TopMoods:    c.topMoods(mood1.MoodScores),
		Song2TopMoods:    c.topMoods(mood2.MoodScores),
	}
}

// topMoods keeps the three highest-scoring moods.
func (c *Comparator) topMoods(scores map[string]float64) map[string]float64 {
	if len(scores) <= 3 {
		top := make(map[string]float64, len(scores))
		for id, s := range scores {
			top[id] = s
		}
		return top
	}

	type entry struct {
		id    string
		score float64
	}
	entries := make([]entry, 0, len(scores))
	for _, id := range c.analyzer.MoodIDs() {
		if s, ok := scores[id]; ok {
			entries = append(entries, entry{id, s})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	top := make(map[string]float64, 3)
	for _, e := range entries[:3] {
		top[e.id] = e.score
	}
	return top
}

// identifyDifferences lists the headline differences between the songs:
// diverging primary mood, one text being more than twice as long as the
// other, and differing artists.
func (c *Comparator) identifyDifferences(song1, song2 *core.Song, moods core.MoodComparison) []string {
	var differences []string

	if !moods.MoodsMatch {
		differences = append(differences, fmt.Sprintf(
			"Different mood: %q is %s, %q is %s",
			song1.Title, moods.Song1PrimaryMood, song2.Title, moods.Song2PrimaryMood))
	}

	len1, len2 := len(song1.Lyrics), len(song2.Lyrics)
	if len1 > 0 && len2 > 0 {
		longer := song1
		longLen, shortLen := len1, len2
		if len2 > len1 {
			longer = song2
			longLen, shortLen = len2, len1
		}
		if float64(longLen)/float64(shortLen) > 2 {
			differences = append(differences, fmt.Sprintf(
				"%q has significantly longer lyrics", longer.Title))
		}
	}

	if !strings.EqualFold(song1.Artist, song2.Artist) {
		differences = append(differences, fmt.Sprintf(
			"Different artists: %s vs %s", song1.Artist, song2.Artist))
	}

	return differences
}
