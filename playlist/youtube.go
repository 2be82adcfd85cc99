package playlist

import "net/url"

// Search endpoints for the two YouTube frontends.
const (
	youtubeSearchURL      = "https://www.youtube.com/results?search_query="
	youtubeMusicSearchURL = "https://music.youtube.com/search?q="
)

// LinkBuilder produces a lookup URL for a track.
type LinkBuilder interface {
	SearchURL(title, artist string) string
}

// YouTubeLinks builds YouTube search URLs. The zero value targets the
// regular YouTube frontend; set Music for YouTube Music.
type YouTubeLinks struct {
	Music bool
}

// SearchURL returns a search link for "<artist> <title> official".
func (y YouTubeLinks) SearchURL(title, artist string) string {
	base := youtubeSearchURL
	if y.Music {
		base = youtubeMusicSearchURL
	}
	return base + url.QueryEscape(artist+" "+title+" official")
}
