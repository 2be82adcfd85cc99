package match

import (
	"math"
	"strings"
)

// themeKeywords maps each detectable theme to its bilingual keyword set.
// Italian and English forms sit side by side so mixed-language catalogs
// score evenly.
var themeKeywords = map[string][]string{
	"love": {
		"amore", "cuore", "ti amo", "innamorato", "passione",
		"love", "heart", "kiss", "romance",
	},
	"sadness": {
		"triste", "lacrime", "dolore", "piangere", "solitudine",
		"sad", "tears", "pain", "cry", "lonely",
	},
	"happiness": {
		"felice", "gioia", "sorriso", "allegria", "festa",
		"happy", "joy", "smile", "celebration",
	},
	"freedom": {
		"libertà", "libero", "volare", "ali", "cielo",
		"freedom", "free", "fly", "wings", "sky",
	},
	"nature": {
		"sole", "mare", "luna", "stelle", "vento",
		"sun", "sea", "moon", "stars", "wind",
	},
	"life": {
		"vita", "vivere", "tempo", "strada", "cammino",
		"life", "live", "time", "road", "journey",
	},
	"party": {
		"ballare", "musica", "notte", "discoteca",
		"dance", "music", "night", "club", "party",
	},
}

// themeOrder fixes the iteration order for deterministic output.
var themeOrder = []string{
	"love", "sadness", "happiness", "freedom", "nature", "life", "party",
}

// ThemeScores counts theme keyword occurrences in a text and normalizes by
// length, so a long song does not out-theme a short one on raw hits. Scores
// are capped at 1. Themes with no hits are omitted.
func ThemeScores(text string) map[string]float64 {
	lower := strings.ToLower(text)
	words := len(strings.Fields(lower))
	if words == 0 {
		return map[string]float64{}
	}

	scores := make(map[string]float64)
	for _, theme := range themeOrder {
		count := 0
		for _, keyword := range themeKeywords[theme] {
			count += strings.Count(lower, keyword)
		}
		if count > 0 {
			scores[theme] = math.Min(1, float64(count)/(float64(words)/50))
		}
	}
	return scores
}

// ThemeKeywords returns the keyword set for a theme, or nil if the theme is
// unknown.
func ThemeKeywords(theme string) []string {
	return themeKeywords[theme]
}

// Themes lists the detectable theme names in a fixed order.
func Themes() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}
