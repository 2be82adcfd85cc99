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


// Package config loads application configuration from the environment.
//
// A .env file in the working directory is honored when present. Search
// tunables have defaults; the Genius API token is the one hard requirement
// and its absence is a fatal configuration error.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for search and cache behavior.
const (
	DefaultResultLimit      = 5
	MaxResultLimit          = 50
	DefaultMinRelevance     = 0.3
	DefaultCacheExpiryHours = 24
	DefaultRateLimitCalls   = 10
	DefaultRateLimitPeriod  = 60 * time.Second
	DefaultRequestTimeout   = 30 * time.Second
	DefaultMaxRetries       = 3
	DefaultRetryDelay       = 1 * time.Second
)

// ErrMissingGeniusToken is returned by Validate when no Genius API token
// is configured.
var ErrMissingGeniusToken = errors.New("GENIUS_API_TOKEN is not set; configure the environment or a .env file")

// Config holds all deployment-varying settings.
type Config struct {
	// GeniusAPIToken authenticates against the Genius lyrics API.
	GeniusAPIToken string

	// CacheDir is the directory holding the on-disk embedding cache.
	CacheDir string

	// CacheExpiryHours is the age after which cached embeddings expire.
	CacheExpiryHours int

	// DefaultLimit is the result count used when a caller passes none.
	DefaultLimit int

	// MinRelevanceScore is the global relevance threshold for rankings.
	MinRelevanceScore float64

	// RateLimitCalls / RateLimitPeriod bound Genius API request frequency.
	RateLimitCalls  int
	RateLimitPeriod time.Duration

	// EmbeddingHost and EmbeddingModel select the embedding service.
	EmbeddingHost  string
	EmbeddingModel string

	// RequestTimeout, MaxRetries and RetryDelay govern outbound API calls.
	RequestTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// Load reads configuration from the environment, honoring a .env file in
// the working directory when one exists.
func Load() *Config {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	return &Config{
		GeniusAPIToken:    os.Getenv("GENIUS_API_TOKEN"),
		CacheDir:          envOr("CACHE_DIR", ".cache"),
		CacheExpiryHours:  envIntOr("CACHE_EXPIRY_HOURS", DefaultCacheExpiryHours),
		DefaultLimit:      DefaultResultLimit,
		MinRelevanceScore: DefaultMinRelevance,
		RateLimitCalls:    envIntOr("RATE_LIMIT_CALLS", DefaultRateLimitCalls),
		RateLimitPeriod:   time.Duration(envIntOr("RATE_LIMIT_PERIOD", 60)) * time.Second,
		EmbeddingHost:     envOr("EMBEDDING_HOST", "http://localhost:11434/v1"),
		EmbeddingModel:    envOr("EMBEDDING_MODEL", "paraphrase-multilingual-minilm"),
		RequestTimeout:    DefaultRequestTimeout,
		MaxRetries:        DefaultMaxRetries,
		RetryDelay:        DefaultRetryDelay,
	}
}

// Validate checks that required settings are present. A missing Genius
// token is fatal: the caller must abort initialization rather than degrade.
func (c *Config) Validate() error {
	if c.GeniusAPIToken == "" {
		return ErrMissingGeniusToken
	}
	return nil
}

// CacheExpiry returns the cache entry lifetime as a duration.
func (c *Config) CacheExpiry() time.Duration {
	return time.Duration(c.CacheExpiryHours) * time.Hour
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
