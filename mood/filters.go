package mood

import (
	"sort"
	"strconv"
	"strings"

	"github.com/versine/lyricmatch/core"
)

// SearchFilters narrows match results beyond the relevance score.
// Zero values disable the corresponding filter, except MinScore which
// always applies.
type SearchFilters struct {
	Mood           string
	MinScore       float64
	YearFrom       int
	YearTo         int
	ExcludeArtists []string
}

// Matches reports whether a song with the given relevance score passes
// every filter. The release year is taken from the last whitespace field
// of the song's release date; unparseable dates never fail the year
// filter.
func (f SearchFilters) Matches(song *core.Song, score float64) bool {
	if score < f.MinScore {
		return false
	}

	artist := strings.ToLower(song.Artist)
	for _, excluded := range f.ExcludeArtists {
		if strings.Contains(artist, strings.ToLower(excluded)) {
			return false
		}
	}

	if song.ReleaseDate != "" && (f.YearFrom > 0 || f.YearTo > 0) {
		fields := strings.Fields(song.ReleaseDate)
		if len(fields) > 0 {
			if year, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
				if f.YearFrom > 0 && year < f.YearFrom {
					return false
				}
				if f.YearTo > 0 && year > f.YearTo {
					return false
				}
			}
		}
	}

	return true
}

// FilterResults drops match results that fail the filters.
func (f SearchFilters) FilterResults(results []*core.MatchResult) []*core.MatchResult {
	filtered := make([]*core.MatchResult, 0, len(results))
	for _, result := range results {
		if f.Matches(result.Song, result.Score) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// EnhanceQueryWithMood appends mood keywords to a query: two Italian and
// one English keyword from the preset. With an empty moodID the mood is
// auto-detected from the query itself; if nothing confident is detected
// the query comes back unchanged.
func (a *Analyzer) EnhanceQueryWithMood(query, moodID string) string {
	if moodID == "" {
		moodID = a.SuggestFromQuery(query)
	}

	preset, ok := presets[moodID]
	if moodID == "" || !ok {
		return query
	}

	extra := make([]string, 0, 3)
	for i, kw := range preset.KeywordsIT {
		if i == 2 {
			break
		}
		extra = append(extra, kw)
	}
	if len(preset.KeywordsEN) > 0 {
		extra = append(extra, preset.KeywordsEN[0])
	}
	return query + " " + strings.Join(extra, " ")
}

// Suggestion pairs a mood id and preset with its analysis score.
type Suggestion struct {
	MoodID string
	Preset Preset
	Score  float64
}

// MoodSuggestions returns up to three moods detected in the query, best
// first. Ties keep preset order.
func (a *Analyzer) MoodSuggestions(query string) []Suggestion {
	analysis := a.Analyze(query)

	suggestions := make([]Suggestion, 0, len(analysis.MoodScores))
	for _, moodID := range moodOrder {
		if score, ok := analysis.MoodScores[moodID]; ok {
			suggestions = append(suggestions, Suggestion{
				MoodID: moodID,
				Preset: presets[moodID],
				Score:  score,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
