package verse

import (
	"strings"
	"unicode"

	"github.com/versine/lyricmatch/core"
)

// ExtractAllVerses returns every content line of a song with its 1-based
// line number and the section it belongs to. Section headers and blank
// lines are dropped but still advance the numbering.
func ExtractAllVerses(song *core.Song) []core.Verse {
	if song.Lyrics == "" {
		return nil
	}

	var verses []core.Verse
	section := ""
	for i, line := range strings.Split(song.Lyrics, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		if detected := detectSection(clean); detected != "" {
			section = detected
			continue
		}
		verses = append(verses, core.Verse{
			LineNumber: i + 1,
			Text:       clean,
			Section:    section,
		})
	}
	return verses
}

// FindRepeatedVerses counts, per lowercased content line, how often it
// occurs in the song, keeping only lines that occur more than once.
func FindRepeatedVerses(song *core.Song) map[string]int {
	if song.Lyrics == "" {
		return map[string]int{}
	}

	counts := make(map[string]int)
	for _, line := range strings.Split(song.Lyrics, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" || detectSection(clean) != "" {
			continue
		}
		counts[strings.ToLower(clean)]++
	}

	repeated := make(map[string]int)
	for line, count := range counts {
		if count > 1 {
			repeated[line] = count
		}
	}
	return repeated
}

// RhymingVerse is one line of a rhyme group with the song it came from.
type RhymingVerse struct {
	Song *core.Song
	Line string
}

// FindRhymingVerses groups content lines across songs by the last three
// letters of their final word, a crude rhyme key. Only groups with at
// least minGroupSize lines are returned; lines whose final word has fewer
// than three letters are ignored.
func FindRhymingVerses(songs []*core.Song, minGroupSize int) map[string][]RhymingVerse {
	if minGroupSize < 2 {
		minGroupSize = 2
	}

	endings := make(map[string][]RhymingVerse)
	for _, song := range songs {
		if song.Lyrics == "" {
			continue
		}
		for _, line := range strings.Split(song.Lyrics, "\n") {
			clean := strings.TrimSpace(line)
			if clean == "" || detectSection(clean) != "" {
				continue
			}

			words := strings.Fields(clean)
			if len(words) == 0 {
				continue
			}

			last := lettersOnly(strings.ToLower(words[len(words)-1]))
			if len([]rune(last)) < 3 {
				continue
			}
			runes := []rune(last)
			ending := string(runes[len(runes)-3:])
			endings[ending] = append(endings[ending], RhymingVerse{Song: song, Line: clean})
		}
	}

	for ending, verses := range endings {
		if len(verses) < minGroupSize {
			delete(endings, ending)
		}
	}
	return endings
}

// lettersOnly strips every non-letter rune from a word.
func lettersOnly(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Statistics aggregates line-level metrics for a song. Unique lines count
// each repeated line once.
func Statistics(song *core.Song) core.VerseStatistics {
	verses := ExtractAllVerses(song)
	if len(verses) == 0 {
		return core.VerseStatistics{Sections: map[string]int{}}
	}

	var totalLen, totalWords, maxLen int
	minLen := len(verses[0].Text)
	sections := make(map[string]int)

	for _, v := range verses {
		l := len(v.Text)
		totalLen += l
		totalWords += len(strings.Fields(v.Text))
		if l > maxLen {
			maxLen = l
		}
		if l < minLen {
			minLen = l
		}
		sections[v.Section]++
	}

	repeated := FindRepeatedVerses(song)
	duplicates := 0
	for _, count := range repeated {
		duplicates += count - 1
	}

	return core.VerseStatistics{
		TotalVerses:   len(verses),
		AverageLength: float64(totalLen) / float64(len(verses)),
		MaxLength:     maxLen,
		MinLength:     minLen,
		AverageWords:  float64(totalWords) / float64(len(verses)),
		Sections:      sections,
		RepeatedLines: len(repeated),
		UniqueLines:   len(verses) - duplicates,
	}
}
