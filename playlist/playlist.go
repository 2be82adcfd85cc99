// Copyright 2025 Versine Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package playlist

import (
	"time"

	"github.com/versine/lyricmatch/core"
)

// Track is one playlist entry.
type Track struct {
	Title          string  `json:"title"`
	Artist         string  `json:"artist"`
	YouTubeURL     string  `json:"youtube_url,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
	Source         string  `json:"source"`
}

// Playlist is an ordered set of tracks with display metadata.
type Playlist struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tracks      []Track   `json:"tracks"`
	CreatedAt   time.Time `json:"created_at"`
}

// New creates an empty playlist stamped with the current time.
func New(name, description string) *Playlist {
	return &Playlist{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// FromMatches builds a playlist from ranked search results, one track per
// result in ranking order.
func FromMatches(name, description string, results []*core.MatchResult, links LinkBuilder) *Playlist {
	p := New(name, description)
	for _, result := range results {
		p.Tracks = append(p.Tracks, Track{
			Title:          result.Song.Title,
			Artist:         result.Song.Artist,
			YouTubeURL:     links.SearchURL(result.Song.Title, result.Song.Artist),
			RelevanceScore: result.Score,
			Source:         "genius",
		})
	}
	return p
}

// FromSongs builds a playlist from plain songs, without relevance scores.
func FromSongs(name, description string, songs []*core.Song, links LinkBuilder) *Playlist {
	p := New(name, description)
	for _, song := range songs {
		p.Tracks = append(p.Tracks, Track{
			Title:      song.Title,
			Artist:     song.Artist,
			YouTubeURL: links.SearchURL(song.Title, song.Artist),
			Source:     "genius",
		})
	}
	return p
}
