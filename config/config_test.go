package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GENIUS_API_TOKEN", "")
	t.Setenv("CACHE_DIR", "")
	t.Setenv("CACHE_EXPIRY_HOURS", "")

	cfg := Load()
	assert.Equal(t, ".cache", cfg.CacheDir)
	assert.Equal(t, DefaultCacheExpiryHours, cfg.CacheExpiryHours)
	assert.Equal(t, DefaultResultLimit, cfg.DefaultLimit)
	assert.InDelta(t, DefaultMinRelevance, cfg.MinRelevanceScore, 1e-9)
	assert.Equal(t, 24*time.Hour, cfg.CacheExpiry())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GENIUS_API_TOKEN", "tok")
	t.Setenv("CACHE_EXPIRY_HOURS", "6")
	t.Setenv("EMBEDDING_MODEL", "custom-model")

	cfg := Load()
	assert.Equal(t, "tok", cfg.GeniusAPIToken)
	assert.Equal(t, 6, cfg.CacheExpiryHours)
	assert.Equal(t, "custom-model", cfg.EmbeddingModel)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("CACHE_EXPIRY_HOURS", "not-a-number")
	cfg := Load()
	assert.Equal(t, DefaultCacheExpiryHours, cfg.CacheExpiryHours)
}

func TestValidate(t *testing.T) {
	t.Run("missing token is fatal", func(t *testing.T) {
		cfg := &Config{}
		assert.ErrorIs(t, cfg.Validate(), ErrMissingGeniusToken)
	})

	t.Run("token present", func(t *testing.T) {
		cfg := &Config{GeniusAPIToken: "tok"}
		require.NoError(t, cfg.Validate())
	})
}
