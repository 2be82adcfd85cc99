package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewMemoryStore(24 * time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreGetSet(t *testing.T) {
	store := newTestStore(t)

	t.Run("miss on empty store", func(t *testing.T) {
		_, ok := store.Get("nothing here")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set("k", []float32{1, 2, 3}))
		got, ok := store.Get("k")
		require.True(t, ok)
		assert.Equal(t, []float32{1, 2, 3}, got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set("k", []float32{4, 5}))
		got, ok := store.Get("k")
		require.True(t, ok)
		assert.Equal(t, []float32{4, 5}, got)
	})
}

func TestStoreKeyPrefixCollision(t *testing.T) {
	store := newTestStore(t)

	// Keys hash only the first 100 characters, so two texts sharing that
	// prefix share a slot. Documented behavior, not a bug.
	prefix := strings.Repeat("a", 100)
	require.NoError(t, store.Set(prefix+"first tail", []float32{1}))

	got, ok := store.Get(prefix + "second tail")
	require.True(t, ok)
	assert.Equal(t, []float32{1}, got)
}

func TestStoreExpiry(t *testing.T) {
	now := time.Now()
	clock := &now
	store, err := NewMemoryStore(24*time.Hour, WithClock(func() time.Time { return *clock }))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", []float32{1, 2, 3}))

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, got)

	// Jump past the expiry window: the entry reads as absent and is purged.
	later := now.Add(25 * time.Hour)
	clock = &later
	_, ok = store.Get("k")
	assert.False(t, ok)

	// Still absent after winding the clock back: the purge was physical.
	clock = &now
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestStoreCleanupExpired(t *testing.T) {
	now := time.Now()
	clock := &now
	store, err := NewMemoryStore(time.Hour, WithClock(func() time.Time { return *clock }))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("old one", []float32{1}))
	require.NoError(t, store.Set("old two", []float32{2}))

	later := now.Add(2 * time.Hour)
	clock = &later
	require.NoError(t, store.Set("fresh", []float32{3}))

	removed, err := store.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, ok := store.Get("fresh")
	assert.True(t, ok)

	removed, err = store.CleanupExpired()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("a", []float32{1}))
	require.NoError(t, store.Set("b", []float32{2}))
	require.NoError(t, store.Clear())

	_, ok := store.Get("a")
	assert.False(t, ok)
	_, ok = store.Get("b")
	assert.False(t, ok)
}

func TestStoreDiskRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenStore(dir, 24*time.Hour, false)
	require.NoError(t, err)
	require.NoError(t, store.Set("persisted", []float32{7, 8, 9}))
	require.NoError(t, store.Close())

	reopened, err := OpenStore(dir, 24*time.Hour, false)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Get("persisted")
	require.True(t, ok)
	assert.Equal(t, []float32{7, 8, 9}, got)
}
