// Package playlist turns ranked match results into an exportable
// playlist. Tracks carry a YouTube search link built from title and
// artist; playlists serialize to JSON, M3U or a standalone HTML page.
package playlist
