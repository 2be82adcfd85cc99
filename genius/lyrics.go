package genius

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/versine/lyricmatch/core"
)

// Genius renders lyrics inside div elements flagged with
// data-lyrics-container="true"; older pages used a plain .lyrics div.
var (
	lyricsContainerRe = regexp.MustCompile(`(?s)<div[^>]*data-lyrics-container="true"[^>]*>(.*?)</div>`)
	legacyLyricsRe    = regexp.MustCompile(`(?s)<div[^>]*class="lyrics"[^>]*>(.*?)</div>`)
	brRe              = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe             = regexp.MustCompile(`(?s)<[^>]+>`)
)

// FetchLyrics scrapes the song's Genius page and fills in its Lyrics
// field. Songs that already carry lyrics are left untouched; a song
// without a URL cannot be fetched and is reported as ErrLyricsNotFound.
func (c *Client) FetchLyrics(ctx context.Context, song *core.Song) error {
	if song.Lyrics != "" {
		return nil
	}
	if song.URL == "" {
		return fmt.Errorf("%w: song %q has no page URL", ErrLyricsNotFound, song.Title)
	}

	c.logger.Debug("scraping lyrics", "title", song.Title, "url", song.URL)

	page, err := c.get(ctx, song.URL, false)
	if err != nil {
		return fmt.Errorf("fetching lyrics page: %w", err)
	}

	lyrics, err := extractLyrics(string(page))
	if err != nil {
		return err
	}
	song.Lyrics = lyrics
	return nil
}

// extractLyrics pulls the lyric text out of a Genius song page.
func extractLyrics(page string) (string, error) {
	containers := lyricsContainerRe.FindAllStringSubmatch(page, -1)
	if len(containers) > 0 {
		parts := make([]string, 0, len(containers))
		for _, m := range containers {
			parts = append(parts, htmlToText(m[1]))
		}
		return strings.TrimSpace(strings.Join(parts, "\n")), nil
	}

	if m := legacyLyricsRe.FindStringSubmatch(page); m != nil {
		return strings.TrimSpace(htmlToText(m[1])), nil
	}

	return "", ErrLyricsNotFound
}

// htmlToText converts a lyrics fragment to plain text: <br> becomes a
// newline, every other tag is dropped, entities are unescaped.
func htmlToText(fragment string) string {
	text := brRe.ReplaceAllString(fragment, "\n")
	text = tagRe.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}
