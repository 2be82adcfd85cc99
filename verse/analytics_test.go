package verse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/versine/lyricmatch/core"
)

func TestExtractAllVerses(t *testing.T) {
	t.Run("keeps content lines with sections and numbering", func(t *testing.T) {
		verses := ExtractAllVerses(testSong)
		require.Len(t, verses, 6)

		assert.Equal(t, core.Verse{LineNumber: 2, Text: "La notte scende piano", Section: "Intro"}, verses[0])
		assert.Equal(t, "Verse", verses[1].Section)
		assert.Equal(t, core.Verse{LineNumber: 10, Text: "E la notte non finisce mai", Section: "Chorus"}, verses[4])
	})

	t.Run("empty lyrics yield nothing", func(t *testing.T) {
		assert.Empty(t, ExtractAllVerses(&core.Song{Id: "x"}))
	})

	t.Run("recognizes italian section headers", func(t *testing.T) {
		song := &core.Song{Lyrics: "[Strofa 1]\nprima riga\n[Ritornello]\nseconda riga\n[Ponte]\nterza riga"}
		verses := ExtractAllVerses(song)
		require.Len(t, verses, 3)
		assert.Equal(t, "Verse", verses[0].Section)
		assert.Equal(t, "Chorus", verses[1].Section)
		assert.Equal(t, "Bridge", verses[2].Section)
	})
}

func TestFindRepeatedVerses(t *testing.T) {
	t.Run("counts case-insensitive repetitions", func(t *testing.T) {
		song := &core.Song{Lyrics: "La notte\nla notte\nUn'altra riga\n[Chorus]\nLa Notte"}
		repeated := FindRepeatedVerses(song)
		require.Len(t, repeated, 1)
		assert.Equal(t, 3, repeated["la notte"])
	})

	t.Run("no repetitions yields empty map", func(t *testing.T) {
		song := &core.Song{Lyrics: "una\ndue\ntre"}
		assert.Empty(t, FindRepeatedVerses(song))
	})
}

func TestFindRhymingVerses(t *testing.T) {
	song1 := &core.Song{Id: "1", Title: "Uno", Lyrics: "il mio cuore\nsenza amore"}
	song2 := &core.Song{Id: "2", Title: "Due", Lyrics: "che dolore\nniente paura"}

	t.Run("groups lines by ending across songs", func(t *testing.T) {
		groups := FindRhymingVerses([]*core.Song{song1, song2}, 2)
		require.Contains(t, groups, "ore")
		assert.Len(t, groups["ore"], 3)
		assert.NotContains(t, groups, "ura")
	})

	t.Run("punctuation on the final word is ignored", func(t *testing.T) {
		punct := &core.Song{Id: "3", Lyrics: "senza fiore!\ngrande cuore..."}
		groups := FindRhymingVerses([]*core.Song{punct}, 2)
		require.Contains(t, groups, "ore")
		assert.Len(t, groups["ore"], 2)
	})
}

func TestStatistics(t *testing.T) {
	t.Run("aggregates line metrics", func(t *testing.T) {
		stats := Statistics(testSong)

		assert.Equal(t, 6, stats.TotalVerses)
		assert.Equal(t, 1, stats.RepeatedLines)
		assert.Equal(t, 5, stats.UniqueLines)
		assert.Equal(t, map[string]int{"Intro": 1, "Verse": 3, "Chorus": 2}, stats.Sections)
		assert.Greater(t, stats.AverageLength, 0.0)
		assert.GreaterOrEqual(t, stats.MaxLength, stats.MinLength)
		assert.Greater(t, stats.AverageWords, 0.0)
	})

	t.Run("empty song has zero stats", func(t *testing.T) {
		stats := Statistics(&core.Song{})
		assert.Equal(t, 0, stats.TotalVerses)
		assert.Empty(t, stats.Sections)
	})
}

func TestDetectSection(t *testing.T) {
	cases := map[string]string{
		"[Verse 2]":     "Verse",
		"[strofa]":      "Verse",
		"[Chorus]":      "Chorus",
		"[rit.]":        "Chorus",
		"[Pre-Chorus]":  "Pre-Chorus",
		"[Bridge]":      "Bridge",
		"[ponte]":       "Bridge",
		"[Outro]":       "Outro",
		"[finale]":      "Outro",
		"[Intro]":       "Intro",
		"[Hook]":        "Hook",
		"una riga vera": "",
	}
	for line, want := range cases {
		assert.Equal(t, want, detectSection(line), line)
	}
}

func TestStatisticsLongSong(t *testing.T) {
	// A song with every line repeated collapses to a handful of uniques.
	song := &core.Song{Lyrics: strings.Repeat("stessa riga sempre\n", 10)}
	stats := Statistics(song)
	assert.Equal(t, 10, stats.TotalVerses)
	assert.Equal(t, 1, stats.RepeatedLines)
	assert.Equal(t, 1, stats.UniqueLines)
}
