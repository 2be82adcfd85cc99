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


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/versine/lyricmatch/ai"
	"github.com/versine/lyricmatch/ai/openai"
	"github.com/versine/lyricmatch/cache"
	"github.com/versine/lyricmatch/compare"
	"github.com/versine/lyricmatch/config"
	"github.com/versine/lyricmatch/core"
	"github.com/versine/lyricmatch/genius"
	"github.com/versine/lyricmatch/match"
	"github.com/versine/lyricmatch/mood"
	"github.com/versine/lyricmatch/playlist"
	"github.com/versine/lyricmatch/verse"
)

func main() {
	app := &cli.App{
		Name:  "lyricmatch",
		Usage: "Semantic song search by lyrics meaning",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search songs whose lyrics match a meaning",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   config.DefaultResultLimit,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum relevance score",
						Value: config.DefaultMinRelevance,
					},
					&cli.StringFlag{
						Name:  "mood",
						Usage: "Bias the search toward a mood (happy, sad, ...)",
					},
					&cli.StringFlag{
						Name:  "playlist",
						Usage: "Write the results as a playlist to this file",
					},
					&cli.StringFlag{
						Name:  "playlist-format",
						Usage: "Playlist format (json, m3u, html)",
						Value: "json",
					},
				},
			},
			{
				Name:      "multi-search",
				Usage:     "Search with several query variants merged into one ranking",
				ArgsUsage: "<query> [query ...]",
				Action:    multiSearchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   config.DefaultResultLimit,
					},
				},
			},
			{
				Name:   "mood",
				Usage:  "Mood presets and lyrics mood analysis",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List available mood presets",
						Action: moodListCommand,
					},
					{
						Name:      "analyze",
						Usage:     "Analyze the mood of a text (reads stdin without an argument)",
						ArgsUsage: "[text]",
						Action:    moodAnalyzeCommand,
					},
				},
			},
			{
				Name:      "compare",
				Usage:     "Compare two or more songs by title",
				ArgsUsage: "<song> <song> [song ...]",
				Action:    compareCommand,
			},
			{
				Name:      "verse",
				Usage:     "Search for a specific verse line",
				ArgsUsage: "<verse>",
				Action:    verseCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Match mode (exact, fuzzy, semantic)",
						Value: "semantic",
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Minimum similarity for a line to match",
						Value: verse.DefaultMinSimilarity,
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of matches",
						Value:   verse.DefaultLimit,
					},
					&cli.StringFlag{
						Name:  "songs-query",
						Usage: "Query used to assemble the candidate songs",
					},
				},
			},
			{
				Name:      "stats",
				Usage:     "Verse statistics for a song",
				ArgsUsage: "<song>",
				Action:    statsCommand,
			},
			{
				Name:  "cache",
				Usage: "Embedding cache maintenance",
				Subcommands: []*cli.Command{
					{
						Name:   "cleanup",
						Usage:  "Purge expired cache entries",
						Action: cacheCleanupCommand,
					},
					{
						Name:   "clear",
						Usage:  "Drop every cached embedding",
						Action: cacheClearCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// env bundles the long-lived components the commands share.
type env struct {
	cfg     *config.Config
	store   *cache.BadgerStore
	matcher *match.Matcher
	client  *genius.Client
}

func (e *env) Close() {
	if e.matcher != nil {
		e.matcher.Release()
	}
	if e.store != nil {
		e.store.Close()
	}
}

// setup wires config, cache, embedder, matcher and the Genius client.
func setup(needGenius bool) (*env, error) {
	cfg := config.Load()
	if needGenius {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	store, err := cache.OpenStore(filepath.Join(cfg.CacheDir, "embeddings"), cfg.CacheExpiry(), false)
	if err != nil {
		return nil, fmt.Errorf("opening embedding cache: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(cfg.EmbeddingHost),
		ai.WithModel(cfg.EmbeddingModel),
	)
	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	matcher, err := match.NewMatcher(embedder, store,
		match.WithDefaultLimit(cfg.DefaultLimit),
		match.WithMinRelevance(cfg.MinRelevanceScore))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	e := &env{cfg: cfg, store: store, matcher: matcher}

	if needGenius {
		client, err := genius.NewClient(cfg.GeniusAPIToken,
			genius.WithRateLimit(cfg.RateLimitCalls, cfg.RateLimitPeriod),
			genius.WithRetry(cfg.MaxRetries, cfg.RetryDelay))
		if err != nil {
			e.Close()
			return nil, err
		}
		e.client = client
	}

	return e, nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := context.Background()
	analyzer := mood.NewAnalyzer(nil)

	searchQuery := analyzer.EnhanceQueryWithMood(query, c.String("mood"))
	songs, err := e.client.GetSongsWithLyrics(ctx, searchQuery, c.Int("limit")*2)
	if err != nil {
		return fmt.Errorf("fetching songs: %w", err)
	}

	results := e.matcher.FindSimilarSongs(ctx, query, songs, c.Int("limit"), c.Float64("min-score"))
	if len(results) == 0 {
		fmt.Println("No matching songs found.")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%2d. %s — %s  (%.1f%%)\n", i+1, result.Song.Title, result.Song.Artist, result.Score*100)
		if result.RelevantExcerpt != "" {
			fmt.Printf("    %s\n", result.RelevantExcerpt)
		}
	}

	if path := c.String("playlist"); path != "" {
		return writePlaylist(path, c.String("playlist-format"), query, results)
	}
	return nil
}

func multiSearchCommand(c *cli.Context) error {
	queries := c.Args().Slice()
	if len(queries) == 0 {
		return fmt.Errorf("at least one query is required")
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := context.Background()

	songs, err := e.client.GetSongsWithLyrics(ctx, strings.Join(queries, " "), c.Int("limit")*2)
	if err != nil {
		return fmt.Errorf("fetching songs: %w", err)
	}

	results := e.matcher.FindBestMatchesMultiQuery(ctx, queries, songs, c.Int("limit"))
	for i, result := range results {
		fmt.Printf("%2d. %s — %s  (%.1f%%)\n", i+1, result.Song.Title, result.Song.Artist, result.Score*100)
	}
	return nil
}

func moodListCommand(c *cli.Context) error {
	analyzer := mood.NewAnalyzer(nil)
	for _, id := range analyzer.MoodIDs() {
		preset, _ := analyzer.GetPreset(id)
		fmt.Printf("%-11s %s — %s\n", id, preset.Name, preset.Description)
	}
	return nil
}

func moodAnalyzeCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return fmt.Errorf("no text to analyze")
	}

	analyzer := mood.NewAnalyzer(nil)
	result := analyzer.Analyze(text)

	fmt.Printf("Primary mood: %s (confidence %.0f%%)\n", result.PrimaryMood, result.Confidence*100)
	for _, id := range analyzer.MoodIDs() {
		if score, ok := result.MoodScores[id]; ok {
			fmt.Printf("  %-11s %.0f%%  keywords: %s\n", id, score*100, strings.Join(result.KeywordsFound[id], ", "))
		}
	}
	return nil
}

func compareCommand(c *cli.Context) error {
	titles := c.Args().Slice()
	if len(titles) < 2 {
		return fmt.Errorf("at least two song titles are required")
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := context.Background()

	var songs []*core.Song
	for _, title := range titles {
		found, err := e.client.GetSongsWithLyrics(ctx, title, 1)
		if err != nil {
			return fmt.Errorf("fetching %q: %w", title, err)
		}
		if len(found) == 0 {
			return fmt.Errorf("no song found for %q", title)
		}
		songs = append(songs, found[0])
	}

	comparator, err := compare.NewComparator(e.matcher, mood.NewAnalyzer(nil))
	if err != nil {
		return err
	}

	if len(songs) == 2 {
		result, err := comparator.Compare(ctx, songs[0], songs[1])
		if err != nil {
			return err
		}
		printComparison(result)
		return nil
	}

	multi, err := comparator.CompareMultiple(ctx, songs)
	if err != nil {
		return err
	}
	fmt.Printf("Average similarity: %.1f%%\n", multi.AverageSimilarity*100)
	fmt.Printf("Most similar:   %s / %s (%.1f%%)\n", multi.MostSimilarPair.Song1, multi.MostSimilarPair.Song2, multi.MostSimilarPair.Score*100)
	fmt.Printf("Most different: %s / %s (%.1f%%)\n", multi.MostDifferentPair.Song1, multi.MostDifferentPair.Song2, multi.MostDifferentPair.Score*100)
	for _, theme := range multi.CommonThemes {
		fmt.Printf("Common theme: %s (%s)\n", theme.Theme, strings.Join(theme.Keywords, ", "))
	}
	return nil
}

func printComparison(result *core.ComparisonResult) {
	fmt.Printf("%q vs %q\n", result.Song1.Title, result.Song2.Title)
	fmt.Printf("Semantic similarity: %.1f%% (%s)\n", result.SemanticSimilarity*100, result.SimilarityLevel())
	fmt.Printf("Vocabulary overlap:  %.1f%%\n", result.VocabularyOverlap*100)

	if len(result.CommonThemes) > 0 {
		fmt.Println("Common themes:")
		for _, theme := range result.CommonThemes {
			fmt.Printf("  - %s: %s\n", theme.Theme, strings.Join(theme.Keywords, ", "))
		}
	}
	if len(result.VerseSimilarities) > 0 {
		fmt.Println("Closest verses:")
		for _, pair := range result.VerseSimilarities {
			fmt.Printf("  %.0f%%  %q / %q\n", pair.Score*100, pair.Verse1, pair.Verse2)
		}
	}
	if len(result.SharedKeywords) > 0 {
		fmt.Printf("Shared keywords: %s\n", strings.Join(result.SharedKeywords, ", "))
	}
	for _, diff := range result.Differences {
		fmt.Printf("Difference: %s\n", diff)
	}
}

func verseCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a verse to search for is required")
	}

	mode, err := verse.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := context.Background()

	songsQuery := c.String("songs-query")
	if songsQuery == "" {
		songsQuery = query
	}
	songs, err := e.client.GetSongsWithLyrics(ctx, songsQuery, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("fetching songs: %w", err)
	}

	searcher, err := verse.NewSearcher(e.matcher)
	if err != nil {
		return err
	}

	result, err := searcher.SearchVerse(ctx, query, songs, mode, c.Float64("min-similarity"), c.Int("limit"), 0)
	if err != nil {
		return err
	}

	if len(result.Matches) == 0 {
		fmt.Printf("No matching verses in %d songs.\n", result.TotalSongsSearched)
		return nil
	}

	for _, m := range result.Matches {
		section := m.Section
		if section == "" {
			section = "-"
		}
		fmt.Printf("%.0f%%  %s — %s  [line %d, %s]\n", m.Score*100, m.Song.Title, m.Song.Artist, m.LineNumber, section)
		fmt.Printf("      %s\n", m.MatchedLine)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("a song title is required")
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := context.Background()
	found, err := e.client.GetSongsWithLyrics(ctx, title, 1)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("no song found for %q", title)
	}
	song := found[0]

	stats := verse.Statistics(song)
	fmt.Printf("%s — %s\n", song.Title, song.Artist)
	fmt.Printf("Verses: %d (unique %d, repeated %d)\n", stats.TotalVerses, stats.UniqueLines, stats.RepeatedLines)
	fmt.Printf("Length: avg %.1f chars (min %d, max %d), avg %.1f words\n",
		stats.AverageLength, stats.MinLength, stats.MaxLength, stats.AverageWords)
	for section, count := range stats.Sections {
		if section == "" {
			section = "(none)"
		}
		fmt.Printf("Section %-12s %d\n", section, count)
	}
	return nil
}

func cacheCleanupCommand(c *cli.Context) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	removed, err := e.store.CleanupExpired()
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d expired cache entries.\n", removed)
	return nil
}

func cacheClearCommand(c *cli.Context) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.store.Clear(); err != nil {
		return err
	}
	fmt.Println("Embedding cache cleared.")
	return nil
}

func writePlaylist(path, format, query string, results []*core.MatchResult) error {
	f, err := playlist.ParseFormat(format)
	if err != nil {
		return err
	}

	p := playlist.FromMatches(
		"Risultati: "+core.TruncateText(query, 40),
		fmt.Sprintf("Canzoni trovate per %q", query),
		results, playlist.YouTubeLinks{})

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := p.Write(file, f); err != nil {
		return err
	}
	fmt.Printf("Playlist written to %s\n", path)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
