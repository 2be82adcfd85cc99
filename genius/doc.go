// Package genius fetches songs and lyrics from the Genius API.
//
// Search results come from the official /search endpoint; lyrics do not,
// because Genius never exposed them through the API, so FetchLyrics
// scrapes the song page's lyrics containers instead. All outbound
// requests share a rate limiter and retry transient failures with
// exponential backoff.
package genius
