package playlist

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/versine/lyricmatch/core"
)

func samplePlaylist() *Playlist {
	results := []*core.MatchResult{
		{Song: &core.Song{Id: "1", Title: "Notte Stellata", Artist: "Artista Uno"}, Score: 0.82},
		{Song: &core.Song{Id: "2", Title: "Mare Calmo", Artist: "Artista Due"}, Score: 0.55},
	}
	return FromMatches("Serata", "Canzoni per la sera", results, YouTubeLinks{})
}

func TestFromMatches(t *testing.T) {
	p := samplePlaylist()

	require.Len(t, p.Tracks, 2)
	assert.Equal(t, "Notte Stellata", p.Tracks[0].Title)
	assert.Equal(t, 0.82, p.Tracks[0].RelevanceScore)
	assert.Equal(t, "genius", p.Tracks[0].Source)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestYouTubeLinks(t *testing.T) {
	t.Run("builds an escaped search URL", func(t *testing.T) {
		u := YouTubeLinks{}.SearchURL("Notte Stellata", "Artista Uno")
		assert.Equal(t,
			"https://www.youtube.com/results?search_query=Artista+Uno+Notte+Stellata+official", u)
	})

	t.Run("music variant targets youtube music", func(t *testing.T) {
		u := YouTubeLinks{Music: true}.SearchURL("Mare", "Due")
		assert.True(t, strings.HasPrefix(u, "https://music.youtube.com/search?q="))
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samplePlaylist().Write(&buf, JSON))

	var decoded Playlist
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Serata", decoded.Name)
	require.Len(t, decoded.Tracks, 2)
	assert.Equal(t, "Mare Calmo", decoded.Tracks[1].Title)
}

func TestWriteM3U(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samplePlaylist().Write(&buf, M3U))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "#EXTM3U", lines[0])
	assert.Equal(t, "#PLAYLIST:Serata", lines[1])
	assert.Equal(t, "#EXTINF:-1,Artista Uno - Notte Stellata", lines[2])
	assert.Contains(t, lines[3], "youtube.com/results")
}

func TestWriteM3UWithoutLink(t *testing.T) {
	p := New("Vuota", "")
	p.Tracks = append(p.Tracks, Track{Title: "Solo Testo", Artist: "Nessuno"})

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, M3U))
	assert.Contains(t, buf.String(), "# Nessuno - Solo Testo")
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samplePlaylist().Write(&buf, HTML))

	out := buf.String()
	assert.Contains(t, out, "<title>Serata</title>")
	assert.Contains(t, out, "Notte Stellata")
	assert.Contains(t, out, "82.0%")
	assert.Contains(t, out, "#22c55e")
	assert.Contains(t, out, "#eab308")
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "m3u", "html"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	_, err := ParseFormat("xspf")
	assert.Error(t, err)
}
