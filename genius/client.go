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

package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/versine/lyricmatch/core"
)

const (
	// DefaultBaseURL is the Genius API root.
	DefaultBaseURL = "https://api.genius.com"

	userAgent = "lyricmatch/1.0"
)

// Client talks to the Genius API. All requests go through a shared rate
// limiter and transient failures are retried with exponential backoff.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit bounds request frequency to calls per period.
func WithRateLimit(calls int, period time.Duration) Option {
	return func(c *Client) {
		if calls > 0 && period > 0 {
			c.limiter = rate.NewLimiter(rate.Every(period/time.Duration(calls)), calls)
		}
	}
}

// WithRetry sets the retry policy for outbound requests.
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(c *Client) {
		if maxRetries > 0 {
			c.maxRetries = maxRetries
		}
		if baseDelay > 0 {
			c.retryDelay = baseDelay
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Genius API client. The token is required.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(6*time.Second), 10),
		maxRetries: 3,
		retryDelay: time.Second,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// searchResponse mirrors the slice of the Genius /search payload we use.
type searchResponse struct {
	Response struct {
		Hits []struct {
			Type   string `json:"type"`
			Result struct {
				ID            int64  `json:"id"`
				Title         string `json:"title"`
				URL           string `json:"url"`
				ThumbnailURL  string `json:"song_art_image_thumbnail_url"`
				ReleaseDate   string `json:"release_date_for_display"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// Search looks up songs by free text and returns at most limit of them,
// metadata only. Lyrics are fetched separately with FetchLyrics.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]*core.Song, error) {
	if limit <= 0 {
		limit = 5
	}

	c.logger.Info("genius search", "query", core.TruncateText(query, 50), "limit", limit)

	u := fmt.Sprintf("%s/search?%s", c.baseURL, url.Values{"q": {query}}.Encode())
	body, err := c.get(ctx, u, true)
	if err != nil {
		return nil, fmt.Errorf("genius search: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("genius search: decoding response: %w", err)
	}

	var songs []*core.Song
	for _, hit := range parsed.Response.Hits {
		if len(songs) == limit {
			break
		}
		if hit.Type != "song" {
			continue
		}
		r := hit.Result
		songs = append(songs, &core.Song{
			Id:           strconv.FormatInt(r.ID, 10),
			Title:        r.Title,
			Artist:       r.PrimaryArtist.Name,
			URL:          r.URL,
			ThumbnailURL: r.ThumbnailURL,
			ReleaseDate:  r.ReleaseDate,
		})
	}

	c.logger.Info("genius search done", "found", len(songs))
	return songs, nil
}

// SearchByTerms runs one search per term and merges the results, dropping
// duplicate song ids while preserving first-seen order.
func (c *Client) SearchByTerms(ctx context.Context, terms []string, limitPerTerm int) ([]*core.Song, error) {
	seen := make(map[string]struct{})
	var all []*core.Song

	for _, term := range terms {
		songs, err := c.Search(ctx, term, limitPerTerm)
		if err != nil {
			return nil, err
		}
		for _, song := range songs {
			if _, dup := seen[song.Id]; dup {
				continue
			}
			seen[song.Id] = struct{}{}
			all = append(all, song)
		}
	}
	return all, nil
}

// GetSongsWithLyrics searches and then fetches lyrics, returning up to
// limit songs that actually have a text. It over-fetches the search to
// compensate for pages where scraping fails.
func (c *Client) GetSongsWithLyrics(ctx context.Context, query string, limit int) ([]*core.Song, error) {
	if limit <= 0 {
		limit = 5
	}

	songs, err := c.Search(ctx, query, limit*2)
	if err != nil {
		return nil, err
	}

	var withLyrics []*core.Song
	for _, song := range songs {
		if len(withLyrics) >= limit {
			break
		}
		if err := c.FetchLyrics(ctx, song); err != nil {
			c.logger.Warn("lyrics fetch failed, skipping song", "title", song.Title, "err", err)
			continue
		}
		if song.Lyrics != "" {
			withLyrics = append(withLyrics, song)
		}
	}
	return withLyrics, nil
}

// get performs a rate-limited, retried GET and returns the response body.
// The API token is attached only for API requests, never for page scrapes.
func (c *Client) get(ctx context.Context, url string, authenticated bool) ([]byte, error) {
	var body []byte

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", userAgent)
		if authenticated {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &statusError{code: resp.StatusCode}
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	err := RetryWithBackoff(ctx, operation, c.maxRetries, c.retryDelay, retryableHTTPError)
	return body, err
}

// statusError carries a non-success HTTP status code. It matches
// ErrUnexpectedStatus under errors.Is.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.code)
}

func (e *statusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// retryableHTTPError retries network errors and server-side statuses, but
// not client errors like 401 or 404.
func retryableHTTPError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}
