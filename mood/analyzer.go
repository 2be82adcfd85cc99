package mood

import (
	"log/slog"
	"math"
	"strings"
)

// Neutral is the primary mood reported when no keywords match at all.
const Neutral = "neutral"

// Result holds the outcome of a mood analysis. MoodScores and
// KeywordsFound only carry moods that had at least one keyword hit.
type Result struct {
	PrimaryMood   string
	MoodScores    map[string]float64
	KeywordsFound map[string][]string
	Confidence    float64
}

// Analyzer classifies text into mood categories by keyword matching.
// The zero value is not usable; call NewAnalyzer.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a mood analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// GetPreset returns the preset for a mood id.
func (a *Analyzer) GetPreset(moodID string) (Preset, bool) {
	p, ok := presets[moodID]
	return p, ok
}

// MoodIDs lists every known mood id in a fixed order.
func (a *Analyzer) MoodIDs() []string {
	ids := make([]string, len(moodOrder))
	copy(ids, moodOrder)
	return ids
}

// Presets lists every preset, in the same order as MoodIDs.
func (a *Analyzer) Presets() []Preset {
	out := make([]Preset, 0, len(moodOrder))
	for _, id := range moodOrder {
		out = append(out, presets[id])
	}
	return out
}

// SearchQuery builds a search query for a mood out of its leading
// keywords: three Italian, two English. Unknown moods yield "".
func (a *Analyzer) SearchQuery(moodID string) string {
	preset, ok := presets[moodID]
	if !ok {
		return ""
	}

	keywords := make([]string, 0, 5)
	for i, kw := range preset.KeywordsIT {
		if i == 3 {
			break
		}
		keywords = append(keywords, kw)
	}
	for i, kw := range preset.KeywordsEN {
		if i == 2 {
			break
		}
		keywords = append(keywords, kw)
	}
	return strings.Join(keywords, " ")
}

// Analyze classifies the mood of a text. Each preset keyword found as a
// substring of the lowercased text counts as one hit; a mood's score is
// hits/5 capped at 1. The primary mood is the highest-scoring one, earlier
// preset order winning ties. With no hits at all the primary mood is
// Neutral with zero confidence.
func (a *Analyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)

	scores := make(map[string]float64)
	found := make(map[string][]string)

	for _, moodID := range moodOrder {
		var hits []string
		for _, keyword := range presets[moodID].AllKeywords() {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				hits = append(hits, keyword)
			}
		}
		if len(hits) > 0 {
			scores[moodID] = math.Min(1, float64(len(hits))/5)
			found[moodID] = hits
		}
	}

	primary := Neutral
	confidence := 0.0
	for _, moodID := range moodOrder {
		if score, ok := scores[moodID]; ok && score > confidence {
			primary = moodID
			confidence = score
		}
	}

	a.logger.Debug("mood analysis", "primary", primary, "confidence", confidence)

	return Result{
		PrimaryMood:   primary,
		MoodScores:    scores,
		KeywordsFound: found,
		Confidence:    confidence,
	}
}

// SuggestFromQuery proposes a mood id for a user query, or "" when the
// signal is too weak to be worth acting on.
func (a *Analyzer) SuggestFromQuery(query string) string {
	result := a.Analyze(query)
	if result.Confidence > 0.2 {
		return result.PrimaryMood
	}
	return ""
}
