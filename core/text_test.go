package core

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanLyrics(t *testing.T) {
	t.Run("strips section annotations", func(t *testing.T) {
		got := CleanLyrics("[Verse 1]\nHello world\n\n[Chorus]\nLa la la")
		assert.Equal(t, "Hello world La la la", got)
	})

	t.Run("strips repeat markers", func(t *testing.T) {
		assert.Equal(t, "La la la", CleanLyrics("La la la (x2)"))
		assert.Equal(t, "La la la", CleanLyrics("La la la (2x)"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "a b c", CleanLyrics("a   b\n\n\nc"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", CleanLyrics(""))
	})
}

func TestTruncateText(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", TruncateText("hello", 200))
	})

	t.Run("cuts at word boundary", func(t *testing.T) {
		got := TruncateText("this is quite a long text to cut", 20)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, len(got), 23)
		assert.NotContains(t, strings.TrimSuffix(got, "..."), "  ")
	})

	t.Run("never exceeds max plus ellipsis", func(t *testing.T) {
		long := strings.Repeat("word ", 100)
		for _, max := range []int{10, 50, 200} {
			assert.LessOrEqual(t, len(TruncateText(long, max)), max+3)
		}
	})

	t.Run("hard cut when no late space", func(t *testing.T) {
		got := TruncateText(strings.Repeat("a", 300), 100)
		assert.Equal(t, strings.Repeat("a", 100)+"...", got)
	})

	t.Run("accented text cuts on a rune boundary", func(t *testing.T) {
		// An odd max lands between the two bytes of every "è"; the cut
		// must back off instead of emitting a dangling lead byte.
		got := TruncateText(strings.Repeat("è", 200), 101)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("è", 50)+"...", got)
	})
}

func TestSongCleanedLyrics(t *testing.T) {
	t.Run("memoized on first use", func(t *testing.T) {
		song := &Song{Id: "1", Title: "T", Artist: "A", Lyrics: "[Intro]\nHello   world"}
		assert.Equal(t, "Hello world", song.CleanedLyrics())
		assert.Equal(t, "Hello world", song.CleanedLyrics())
	})

	t.Run("recomputed when lyrics change", func(t *testing.T) {
		song := &Song{Id: "1", Title: "T", Artist: "A", Lyrics: "first text"}
		assert.Equal(t, "first text", song.CleanedLyrics())
		song.Lyrics = "second text"
		assert.Equal(t, "second text", song.CleanedLyrics())
	})

	t.Run("empty lyrics", func(t *testing.T) {
		song := &Song{Id: "1"}
		assert.Equal(t, "", song.CleanedLyrics())
	})
}
