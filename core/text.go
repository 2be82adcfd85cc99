package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	bracketAnnotations = regexp.MustCompile(`\[.*?\]`)
	repeatMarkers      = regexp.MustCompile(`\(x?\d+x?\)`)
	newlineRuns        = regexp.MustCompile(`\n+`)
	whitespaceRuns     = regexp.MustCompile(`\s+`)
)

// CleanLyrics strips section annotations such as "[Chorus]", repeat markers
// such as "(x2)", and collapses all whitespace to single spaces.
func CleanLyrics(text string) string {
	text = bracketAnnotations.ReplaceAllString(text, "")
	text = repeatMarkers.ReplaceAllString(text, "")
	text = newlineRuns.ReplaceAllString(text, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TruncateText shortens text to at most maxLength characters, appending
// "..." when it truncates. The cut retreats to the last space when that
// space sits past 70% of maxLength, so words are not split mid-way unless
// no late-enough space exists.
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	// Back the cut off to a rune start so a multibyte character is never
	// split in half.
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	truncated := text[:cut]
	lastSpace := strings.LastIndex(truncated, " ")
	if float64(lastSpace) > float64(maxLength)*0.7 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimRight(truncated, " \t\n") + "..."
}
